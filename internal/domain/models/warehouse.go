package models

// Warehouse mirrors the registry entries returned by /warehouses.
type Warehouse struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

// WarehouseCreate is the body for creating a warehouse.
type WarehouseCreate struct {
	Description string `json:"description"`
}

// WarehouseUpdate carries the optional fields for PUT /warehouses/{id}.
type WarehouseUpdate struct {
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// WarehouseFilters narrows /warehouses listings.
type WarehouseFilters struct {
	Search   string
	IsActive *bool
}
