package tabulae

import (
	"context"
	"fmt"
	"strconv"

	"github.com/duquediazn/tabulae-client/internal/domain/models"
)

// StockClient covers the read-only /stock query surface.
type StockClient struct {
	c *Client
}

// Semaphore returns the expiration traffic light counts.
func (s *StockClient) Semaphore(ctx context.Context) (models.StockSemaphore, error) {
	result := new(models.StockSemaphore)
	apiErr := new(apiErrorBody)

	resp, err := s.c.request().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get("/stock/semaphore")
	if err != nil {
		return models.StockSemaphore{}, fmt.Errorf("stock semaphore: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.StockSemaphore{}, err
	}

	return *result, nil
}

// WarehousesDetail returns total stock per warehouse.
func (s *StockClient) WarehousesDetail(ctx context.Context) ([]models.StockByWarehouse, error) {
	result := new([]models.StockByWarehouse)
	apiErr := new(apiErrorBody)

	resp, err := s.c.request().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get("/stock/warehouses/detail")
	if err != nil {
		return nil, fmt.Errorf("warehouses detail: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return nil, err
	}

	return *result, nil
}

// WarehouseDetail returns per-product stock inside one warehouse.
func (s *StockClient) WarehouseDetail(ctx context.Context, warehouseID int) ([]models.StockByProduct, error) {
	result := new([]models.StockByProduct)
	apiErr := new(apiErrorBody)

	resp, err := s.c.request().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get(fmt.Sprintf("/stock/warehouse/%d/detail", warehouseID))
	if err != nil {
		return nil, fmt.Errorf("warehouse %d detail: %w", warehouseID, err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return nil, err
	}

	return *result, nil
}

// ByCategory returns total stock grouped by product category.
func (s *StockClient) ByCategory(ctx context.Context) ([]models.StockByCategory, error) {
	result := new([]models.StockByCategory)
	apiErr := new(apiErrorBody)

	resp, err := s.c.request().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get("/stock/product-categories")
	if err != nil {
		return nil, fmt.Errorf("stock by category: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return nil, err
	}

	return *result, nil
}

// CategoryProducts returns per-product stock of one category.
func (s *StockClient) CategoryProducts(ctx context.Context, categoryID int) ([]models.StockByProduct, error) {
	result := new([]models.StockByProduct)
	apiErr := new(apiErrorBody)

	resp, err := s.c.request().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get(fmt.Sprintf("/stock/category/%d/products", categoryID))
	if err != nil {
		return nil, fmt.Errorf("category %d products: %w", categoryID, err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return nil, err
	}

	return *result, nil
}

// ByProduct returns the paginated per-warehouse totals for a product.
func (s *StockClient) ByProduct(ctx context.Context, productID, limit, offset int) (models.Paginated[models.StockSummary], error) {
	result := new(models.Paginated[models.StockSummary])
	apiErr := new(apiErrorBody)

	resp, err := s.c.request().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetQueryParam("offset", strconv.Itoa(offset)).
		SetResult(result).
		SetError(apiErr).
		Get(fmt.Sprintf("/stock/product/%d", productID))
	if err != nil {
		return models.Paginated[models.StockSummary]{}, fmt.Errorf("stock by product %d: %w", productID, err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.Paginated[models.StockSummary]{}, err
	}

	return *result, nil
}

// ByWarehouse returns the paginated lot-level stock of a warehouse.
func (s *StockClient) ByWarehouse(ctx context.Context, warehouseID, limit, offset int) (models.Paginated[models.StockRecord], error) {
	result := new(models.Paginated[models.StockRecord])
	apiErr := new(apiErrorBody)

	resp, err := s.c.request().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetQueryParam("offset", strconv.Itoa(offset)).
		SetResult(result).
		SetError(apiErr).
		Get(fmt.Sprintf("/stock/warehouse/%d", warehouseID))
	if err != nil {
		return models.Paginated[models.StockRecord]{}, fmt.Errorf("stock by warehouse %d: %w", warehouseID, err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.Paginated[models.StockRecord]{}, err
	}

	return *result, nil
}

// ProductInWarehouse returns the lot-level stock of one product in one warehouse.
func (s *StockClient) ProductInWarehouse(ctx context.Context, warehouseID, productID, limit, offset int) (models.Paginated[models.StockRecord], error) {
	result := new(models.Paginated[models.StockRecord])
	apiErr := new(apiErrorBody)

	resp, err := s.c.request().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetQueryParam("offset", strconv.Itoa(offset)).
		SetResult(result).
		SetError(apiErr).
		Get(fmt.Sprintf("/stock/warehouse/%d/product/%d", warehouseID, productID))
	if err != nil {
		return models.Paginated[models.StockRecord]{}, fmt.Errorf("stock of product %d in warehouse %d: %w", productID, warehouseID, err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.Paginated[models.StockRecord]{}, err
	}

	return *result, nil
}

// ProductHistory returns the paginated movement history of a product.
func (s *StockClient) ProductHistory(ctx context.Context, productID, limit, offset int) (models.Paginated[models.StockHistory], error) {
	return s.history(ctx, fmt.Sprintf("/stock/product/%d/history", productID), limit, offset)
}

// WarehouseHistory returns the paginated movement history of a warehouse.
func (s *StockClient) WarehouseHistory(ctx context.Context, warehouseID, limit, offset int) (models.Paginated[models.StockHistory], error) {
	return s.history(ctx, fmt.Sprintf("/stock/warehouse/%d/history", warehouseID), limit, offset)
}

// ProductHistoryByWarehouse returns the movement history of one product in one warehouse.
func (s *StockClient) ProductHistoryByWarehouse(ctx context.Context, warehouseID, productID, limit, offset int) (models.Paginated[models.StockHistory], error) {
	return s.history(ctx, fmt.Sprintf("/stock/warehouse/%d/product/%d/history", warehouseID, productID), limit, offset)
}

func (s *StockClient) history(ctx context.Context, path string, limit, offset int) (models.Paginated[models.StockHistory], error) {
	result := new(models.Paginated[models.StockHistory])
	apiErr := new(apiErrorBody)

	resp, err := s.c.request().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetQueryParam("offset", strconv.Itoa(offset)).
		SetResult(result).
		SetError(apiErr).
		Get(path)
	if err != nil {
		return models.Paginated[models.StockHistory]{}, fmt.Errorf("stock history %s: %w", path, err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.Paginated[models.StockHistory]{}, err
	}

	return *result, nil
}

// AvailableLots returns the pickable lots for a product/warehouse pair.
func (s *StockClient) AvailableLots(ctx context.Context, productID, warehouseID int) ([]models.AvailableLot, error) {
	result := new([]models.AvailableLot)
	apiErr := new(apiErrorBody)

	resp, err := s.c.request().
		SetContext(ctx).
		SetQueryParam("product", strconv.Itoa(productID)).
		SetQueryParam("warehouse", strconv.Itoa(warehouseID)).
		SetResult(result).
		SetError(apiErr).
		Get("/stock/available-lots")
	if err != nil {
		return nil, fmt.Errorf("available lots: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return nil, err
	}

	return *result, nil
}

// Expiration returns the paginated stock lines filtered by expiration window.
// Preset takes precedence over the explicit date range, matching the server.
func (s *StockClient) Expiration(ctx context.Context, filters models.ExpirationFilters, limit, offset int) (models.Paginated[models.StockRecord], error) {
	result := new(models.Paginated[models.StockRecord])
	apiErr := new(apiErrorBody)

	req := s.c.request().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetQueryParam("offset", strconv.Itoa(offset)).
		SetResult(result).
		SetError(apiErr)

	if filters.Preset != "" {
		req.SetQueryParam("preset", filters.Preset)
	} else {
		if filters.FromDate != "" {
			req.SetQueryParam("from_date", filters.FromDate)
		}
		if filters.ToDate != "" {
			req.SetQueryParam("to_date", filters.ToDate)
		}
	}

	resp, err := req.Get("/stock/product/expiration")
	if err != nil {
		return models.Paginated[models.StockRecord]{}, fmt.Errorf("stock expiration: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.Paginated[models.StockRecord]{}, err
	}

	return *result, nil
}
