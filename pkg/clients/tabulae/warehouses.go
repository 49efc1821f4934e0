package tabulae

import (
	"context"
	"fmt"
	"strconv"

	"github.com/duquediazn/tabulae-client/internal/domain/models"
)

// WarehousesClient covers /warehouses.
type WarehousesClient struct {
	c *Client
}

// List returns a page of the warehouse registry.
func (w *WarehousesClient) List(ctx context.Context, filters models.WarehouseFilters, limit, offset int) (models.Paginated[models.Warehouse], error) {
	result := new(models.Paginated[models.Warehouse])
	apiErr := new(apiErrorBody)

	req := w.c.request().
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

	resp, err := req.Get("/warehouses")
	if err != nil {
		return models.Paginated[models.Warehouse]{}, fmt.Errorf("list warehouses: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.Paginated[models.Warehouse]{}, err
	}

	return *result, nil
}

// Get fetches a single warehouse by id.
func (w *WarehousesClient) Get(ctx context.Context, id int) (models.Warehouse, error) {
	result := new(models.Warehouse)
	apiErr := new(apiErrorBody)

	resp, err := w.c.request().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get(fmt.Sprintf("/warehouses/%d", id))
	if err != nil {
		return models.Warehouse{}, fmt.Errorf("get warehouse %d: %w", id, err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.Warehouse{}, err
	}

	return *result, nil
}

// Create registers a new warehouse.
func (w *WarehousesClient) Create(ctx context.Context, create models.WarehouseCreate) (models.Warehouse, error) {
	result := new(models.Warehouse)
	apiErr := new(apiErrorBody)

	resp, err := w.c.request().
		SetContext(ctx).
		SetBody(create).
		SetResult(result).
		SetError(apiErr).
		Post("/warehouses")
	if err != nil {
		return models.Warehouse{}, fmt.Errorf("create warehouse: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.Warehouse{}, err
	}

	return *result, nil
}

// Update modifies a warehouse.
func (w *WarehousesClient) Update(ctx context.Context, id int, update models.WarehouseUpdate) (models.Warehouse, error) {
	result := new(models.Warehouse)
	apiErr := new(apiErrorBody)

	resp, err := w.c.request().
		SetContext(ctx).
		SetBody(update).
		SetResult(result).
		SetError(apiErr).
		Put(fmt.Sprintf("/warehouses/%d", id))
	if err != nil {
		return models.Warehouse{}, fmt.Errorf("update warehouse %d: %w", id, err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.Warehouse{}, err
	}

	return *result, nil
}

// Delete removes a warehouse.
func (w *WarehousesClient) Delete(ctx context.Context, id int) error {
	apiErr := new(apiErrorBody)

	resp, err := w.c.request().
		SetContext(ctx).
		SetError(apiErr).
		Delete(fmt.Sprintf("/warehouses/%d", id))
	if err != nil {
		return fmt.Errorf("delete warehouse %d: %w", id, err)
	}
	return checkResponse(resp, apiErr)
}

// BulkStatus activates or deactivates a batch of warehouses.
func (w *WarehousesClient) BulkStatus(ctx context.Context, ids []int, isActive bool) (models.BulkStatusResult, error) {
	result := new(models.BulkStatusResult)
	apiErr := new(apiErrorBody)

	resp, err := w.c.request().
		SetContext(ctx).
		SetBody(models.BulkStatusUpdate{IDs: ids, IsActive: isActive}).
		SetResult(result).
		SetError(apiErr).
		Put("/warehouses/bulk-status")
	if err != nil {
		return models.BulkStatusResult{}, fmt.Errorf("bulk warehouse status: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.BulkStatusResult{}, err
	}

	return *result, nil
}
