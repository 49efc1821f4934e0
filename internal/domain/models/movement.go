package models

import "time"

// Move type values expected by the ledger. The API stores move_type as free
// text, so readers normalize before comparing.
const (
	MoveIncoming = "incoming"
	MoveOutgoing = "outgoing"
)

// StockMove is one ledger entry returned by /stock-movements.
type StockMove struct {
	MoveID    int             `json:"move_id"`
	MoveType  string          `json:"move_type"`
	UserID    int             `json:"user_id"`
	UserName  string          `json:"user_name,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Lines     []StockMoveLine `json:"lines,omitempty"`
}

// StockMoveLine is one product/warehouse line inside a movement.
type StockMoveLine struct {
	MoveID         int    `json:"move_id"`
	LineID         int    `json:"line_id"`
	WarehouseID    int    `json:"warehouse_id"`
	ProductID      int    `json:"product_id"`
	Lot            string `json:"lot"`
	ExpirationDate string `json:"expiration_date,omitempty"`
	Quantity       int    `json:"quantity"`
}

// StockMoveCreate is the body for registering a movement.
type StockMoveCreate struct {
	MoveType string                `json:"move_type"`
	UserID   int                   `json:"user_id"`
	Lines    []StockMoveLineCreate `json:"lines"`
}

// StockMoveLineCreate is one line of a movement being registered.
type StockMoveLineCreate struct {
	WarehouseID    int    `json:"warehouse_id"`
	ProductID      int    `json:"product_id"`
	Lot            string `json:"lot,omitempty"`
	ExpirationDate string `json:"expiration_date,omitempty"`
	Quantity       int    `json:"quantity"`
}

// StockMoveSummary is one row of the per-type movement totals.
type StockMoveSummary struct {
	MoveType string `json:"move_type"`
	Quantity int    `json:"quantity"`
}

// MovementFilters narrows /stock-movements listings.
type MovementFilters struct {
	Search   string
	MoveType string
	DateFrom string
	DateTo   string
	UserID   int
}
