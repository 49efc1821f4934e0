package models

// Product mirrors the catalog entries returned by /products.
type Product struct {
	ID           int    `json:"id"`
	SKU          string `json:"sku"`
	ShortName    string `json:"short_name"`
	Description  string `json:"description,omitempty"`
	CategoryID   int    `json:"category_id"`
	CategoryName string `json:"category_name"`
	IsActive     bool   `json:"is_active"`
}

// ProductCreate is the body for creating a product. Active defaults to true
// server-side.
type ProductCreate struct {
	SKU         string `json:"sku"`
	ShortName   string `json:"short_name"`
	Description string `json:"description,omitempty"`
	CategoryID  int    `json:"category_id"`
}

// ProductUpdate carries the optional fields for PUT /products/{id}.
type ProductUpdate struct {
	SKU         *string `json:"sku,omitempty"`
	ShortName   *string `json:"short_name,omitempty"`
	Description *string `json:"description,omitempty"`
	CategoryID  *int    `json:"category_id,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// ProductFilters narrows /products listings. Zero values are omitted from the
// query string.
type ProductFilters struct {
	Search     string
	CategoryID int
	IsActive   *bool
}

// Category is a product category.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
