package tabulae

import (
	"context"
	"fmt"
	"strconv"

	"github.com/duquediazn/tabulae-client/internal/domain/models"
)

// ProductsClient covers /products and /categories.
type ProductsClient struct {
	c *Client
}

// List returns a page of the product catalog.
func (p *ProductsClient) List(ctx context.Context, filters models.ProductFilters, limit, offset int) (models.Paginated[models.Product], error) {
	result := new(models.Paginated[models.Product])
	apiErr := new(apiErrorBody)

	req := p.c.request().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetQueryParam("offset", strconv.Itoa(offset)).
		SetResult(result).
		SetError(apiErr)

	if filters.Search != "" {
		req.SetQueryParam("search", filters.Search)
	}
	if filters.CategoryID > 0 {
		req.SetQueryParam("category_id", strconv.Itoa(filters.CategoryID))
	}
	if filters.IsActive != nil {
		req.SetQueryParam("is_active", strconv.FormatBool(*filters.IsActive))
	}

	resp, err := req.Get("/products")
	if err != nil {
		return models.Paginated[models.Product]{}, fmt.Errorf("list products: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.Paginated[models.Product]{}, err
	}

	return *result, nil
}

// Get fetches a single product by id.
func (p *ProductsClient) Get(ctx context.Context, id int) (models.Product, error) {
	result := new(models.Product)
	apiErr := new(apiErrorBody)

	resp, err := p.c.request().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return models.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.Product{}, err
	}

	return *result, nil
}

// Create registers a new product.
func (p *ProductsClient) Create(ctx context.Context, create models.ProductCreate) (models.Product, error) {
	result := new(models.Product)
	apiErr := new(apiErrorBody)

	resp, err := p.c.request().
		SetContext(ctx).
		SetBody(create).
		SetResult(result).
		SetError(apiErr).
		Post("/products")
	if err != nil {
		return models.Product{}, fmt.Errorf("create product: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.Product{}, err
	}

	return *result, nil
}

// Update modifies a product.
func (p *ProductsClient) Update(ctx context.Context, id int, update models.ProductUpdate) (models.Product, error) {
	result := new(models.Product)
	apiErr := new(apiErrorBody)

	resp, err := p.c.request().
		SetContext(ctx).
		SetBody(update).
		SetResult(result).
		SetError(apiErr).
		Put(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return models.Product{}, fmt.Errorf("update product %d: %w", id, err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.Product{}, err
	}

	return *result, nil
}

// Delete removes a product.
func (p *ProductsClient) Delete(ctx context.Context, id int) error {
	apiErr := new(apiErrorBody)

	resp, err := p.c.request().
		SetContext(ctx).
		SetError(apiErr).
		Delete(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return checkResponse(resp, apiErr)
}

// BulkStatus activates or deactivates a batch of products.
func (p *ProductsClient) BulkStatus(ctx context.Context, ids []int, isActive bool) (models.BulkStatusResult, error) {
	result := new(models.BulkStatusResult)
	apiErr := new(apiErrorBody)

	resp, err := p.c.request().
		SetContext(ctx).
		SetBody(models.BulkStatusUpdate{IDs: ids, IsActive: isActive}).
		SetResult(result).
		SetError(apiErr).
		Put("/products/bulk-status")
	if err != nil {
		return models.BulkStatusResult{}, fmt.Errorf("bulk product status: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.BulkStatusResult{}, err
	}

	return *result, nil
}

// Categories returns a page of product categories.
func (p *ProductsClient) Categories(ctx context.Context, limit, offset int) (models.Paginated[models.Category], error) {
	result := new(models.Paginated[models.Category])
	apiErr := new(apiErrorBody)

	resp, err := p.c.request().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetQueryParam("offset", strconv.Itoa(offset)).
		SetResult(result).
		SetError(apiErr).
		Get("/categories")
	if err != nil {
		return models.Paginated[models.Category]{}, fmt.Errorf("list categories: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.Paginated[models.Category]{}, err
	}

	return *result, nil
}

// CreateCategory adds a new category.
func (p *ProductsClient) CreateCategory(ctx context.Context, name string) (models.Category, error) {
	result := new(models.Category)
	apiErr := new(apiErrorBody)

	resp, err := p.c.request().
		SetContext(ctx).
		SetBody(map[string]string{"name": name}).
		SetResult(result).
		SetError(apiErr).
		Post("/categories")
	if err != nil {
		return models.Category{}, fmt.Errorf("create category: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.Category{}, err
	}

	return *result, nil
}

// UpdateCategory renames a category.
func (p *ProductsClient) UpdateCategory(ctx context.Context, id int, name string) (models.Category, error) {
	result := new(models.Category)
	apiErr := new(apiErrorBody)

	resp, err := p.c.request().
		SetContext(ctx).
		SetBody(map[string]string{"name": name}).
		SetResult(result).
		SetError(apiErr).
		Put(fmt.Sprintf("/categories/%d", id))
	if err != nil {
		return models.Category{}, fmt.Errorf("update category %d: %w", id, err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.Category{}, err
	}

	return *result, nil
}

// DeleteCategory removes a category.
func (p *ProductsClient) DeleteCategory(ctx context.Context, id int) error {
	apiErr := new(apiErrorBody)

	resp, err := p.c.request().
		SetContext(ctx).
		SetError(apiErr).
		Delete(fmt.Sprintf("/categories/%d", id))
	if err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	return checkResponse(resp, apiErr)
}
