package tabulae

import (
	"context"
	"fmt"
	"strconv"

	"github.com/duquediazn/tabulae-client/internal/domain/models"
)

// MovementsClient covers the /stock-movements ledger.
type MovementsClient struct {
	c *Client
}

// List returns a page of movements matching the filters.
func (m *MovementsClient) List(ctx context.Context, filters models.MovementFilters, limit, offset int) (models.Paginated[models.StockMove], error) {
	result := new(models.Paginated[models.StockMove])
	apiErr := new(apiErrorBody)

	req := m.c.request().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetQueryParam("offset", strconv.Itoa(offset)).
		SetResult(result).
		SetError(apiErr)

	if filters.Search != "" {
		req.SetQueryParam("search", filters.Search)
	}
	if filters.MoveType != "" {
		req.SetQueryParam("move_type", filters.MoveType)
	}
	if filters.DateFrom != "" {
		req.SetQueryParam("date_from", filters.DateFrom)
	}
	if filters.DateTo != "" {
		req.SetQueryParam("date_to", filters.DateTo)
	}
	if filters.UserID > 0 {
		req.SetQueryParam("user_id", strconv.Itoa(filters.UserID))
	}

	resp, err := req.Get("/stock-movements")
	if err != nil {
		return models.Paginated[models.StockMove]{}, fmt.Errorf("list movements: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.Paginated[models.StockMove]{}, err
	}

	return *result, nil
}

// Get fetches a single movement by id.
func (m *MovementsClient) Get(ctx context.Context, id int) (models.StockMove, error) {
	result := new(models.StockMove)
	apiErr := new(apiErrorBody)

	resp, err := m.c.request().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get(fmt.Sprintf("/stock-movements/%d", id))
	if err != nil {
		return models.StockMove{}, fmt.Errorf("get movement %d: %w", id, err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.StockMove{}, err
	}

	return *result, nil
}

// Lines returns a page of the lines belonging to one movement.
func (m *MovementsClient) Lines(ctx context.Context, id, limit, offset int) (models.Paginated[models.StockMoveLine], error) {
	result := new(models.Paginated[models.StockMoveLine])
	apiErr := new(apiErrorBody)

	resp, err := m.c.request().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetQueryParam("offset", strconv.Itoa(offset)).
		SetResult(result).
		SetError(apiErr).
		Get(fmt.Sprintf("/stock-movements/%d/lines", id))
	if err != nil {
		return models.Paginated[models.StockMoveLine]{}, fmt.Errorf("movement %d lines: %w", id, err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.Paginated[models.StockMoveLine]{}, err
	}

	return *result, nil
}

// Create registers a new movement with its lines.
func (m *MovementsClient) Create(ctx context.Context, create models.StockMoveCreate) (models.StockMove, error) {
	result := new(models.StockMove)
	apiErr := new(apiErrorBody)

	resp, err := m.c.request().
		SetContext(ctx).
		SetBody(create).
		SetResult(result).
		SetError(apiErr).
		Post("/stock-movements")
	if err != nil {
		return models.StockMove{}, fmt.Errorf("create movement: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.StockMove{}, err
	}

	return *result, nil
}

// SummaryByType returns the aggregate quantities per move type.
func (m *MovementsClient) SummaryByType(ctx context.Context) ([]models.StockMoveSummary, error) {
	result := new([]models.StockMoveSummary)
	apiErr := new(apiErrorBody)

	resp, err := m.c.request().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get("/stock-movements/summary/move-type")
	if err != nil {
		return nil, fmt.Errorf("movement summary: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return nil, err
	}

	return *result, nil
}

// LastYear returns the movements of the last twelve months for charting.
func (m *MovementsClient) LastYear(ctx context.Context) ([]models.StockMove, error) {
	result := new([]models.StockMove)
	apiErr := new(apiErrorBody)

	resp, err := m.c.request().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get("/stock-movements/last-year")
	if err != nil {
		return nil, fmt.Errorf("movements last year: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return nil, err
	}

	return *result, nil
}
