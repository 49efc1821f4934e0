package tabulae

import (
	"context"
	"fmt"
	"strconv"

	"github.com/duquediazn/tabulae-client/internal/domain/models"
)

// UsersClient covers /users administration. Most of these endpoints require
// the admin role server-side.
type UsersClient struct {
	c *Client
}

// List returns a page of user accounts.
func (u *UsersClient) List(ctx context.Context, filters models.UserFilters, limit, offset int) (models.Paginated[models.User], error) {
	result := new(models.Paginated[models.User])
	apiErr := new(apiErrorBody)

	req := u.c.request().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetQueryParam("offset", strconv.Itoa(offset)).
		SetResult(result).
		SetError(apiErr)

	if filters.Search != "" {
		req.SetQueryParam("search", filters.Search)
	}
	if filters.IsActive != nil {
		req.SetQueryParam("is_active", strconv.FormatBool(*filters.IsActive))
	}

	resp, err := req.Get("/users")
	if err != nil {
		return models.Paginated[models.User]{}, fmt.Errorf("list users: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.Paginated[models.User]{}, err
	}

	return *result, nil
}

// Get fetches a single user by id.
func (u *UsersClient) Get(ctx context.Context, id int) (models.User, error) {
	result := new(models.User)
	apiErr := new(apiErrorBody)

	resp, err := u.c.request().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get(fmt.Sprintf("/users/%d", id))
	if err != nil {
		return models.User{}, fmt.Errorf("get user %d: %w", id, err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.User{}, err
	}

	return *result, nil
}

// Update modifies a user account.
func (u *UsersClient) Update(ctx context.Context, id int, update models.UserUpdate) (models.User, error) {
	result := new(models.User)
	apiErr := new(apiErrorBody)

	resp, err := u.c.request().
		SetContext(ctx).
		SetBody(update).
		SetResult(result).
		SetError(apiErr).
		Put(fmt.Sprintf("/users/%d", id))
	if err != nil {
		return models.User{}, fmt.Errorf("update user %d: %w", id, err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.User{}, err
	}

	return *result, nil
}

// Delete removes a user account.
func (u *UsersClient) Delete(ctx context.Context, id int) error {
	apiErr := new(apiErrorBody)

	resp, err := u.c.request().
		SetContext(ctx).
		SetError(apiErr).
		Delete(fmt.Sprintf("/users/%d", id))
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return checkResponse(resp, apiErr)
}

// BulkStatus activates or deactivates a batch of user accounts.
func (u *UsersClient) BulkStatus(ctx context.Context, ids []int, isActive bool) (models.BulkStatusResult, error) {
	result := new(models.BulkStatusResult)
	apiErr := new(apiErrorBody)

	resp, err := u.c.request().
		SetContext(ctx).
		SetBody(models.BulkStatusUpdate{IDs: ids, IsActive: isActive}).
		SetResult(result).
		SetError(apiErr).
		Put("/users/bulk-status")
	if err != nil {
		return models.BulkStatusResult{}, fmt.Errorf("bulk user status: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.BulkStatusResult{}, err
	}

	return *result, nil
}
