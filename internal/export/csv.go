package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/duquediazn/tabulae-client/internal/domain/models"
	"github.com/duquediazn/tabulae-client/pkg/clients/tabulae"
)

// exportLimit caps how many rows a single export pulls, matching the UI's
// historical behavior.
const exportLimit = 1000

const dayLayout = "2006-01-02"

// WriteCSV renders a header plus rows using a semicolon delimiter, which
// spreadsheets in comma-decimal locales open cleanly.
func WriteCSV(w io.Writer, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Exporter fetches filtered datasets from the API and renders them as CSV.
type Exporter struct {
	api    *tabulae.Client
	logger *zap.Logger
}

// NewExporter wires an exporter against the API client.
func NewExporter(api *tabulae.Client, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{api: api, logger: logger}
}

// Movements exports the filtered movement ledger.
func (e *Exporter) Movements(ctx context.Context, filters models.MovementFilters, w io.Writer) error {
	page, err := e.api.Movements.List(ctx, filters, exportLimit, 0)
	if err != nil {
		return fmt.Errorf("export movements: %w", err)
	}

	rows := make([][]string, 0, len(page.Data))
	for _, m := range page.Data {
		rows = append(rows, []string{
			strconv.Itoa(m.MoveID),
			m.MoveType,
			m.UserName,
			m.CreatedAt.Format(dayLayout),
			strconv.Itoa(len(m.Lines)),
		})
	}

	e.logger.Info("movements exported", zap.Int("rows", len(rows)))
	return WriteCSV(w, []string{"ID", "Type", "User", "Date", "Lines"}, rows)
}

// Products exports the filtered product catalog.
func (e *Exporter) Products(ctx context.Context, filters models.ProductFilters, w io.Writer) error {
	page, err := e.api.Products.List(ctx, filters, exportLimit, 0)
	if err != nil {
		return fmt.Errorf("export products: %w", err)
	}

	rows := make([][]string, 0, len(page.Data))
	for _, p := range page.Data {
		rows = append(rows, []string{p.SKU, p.ShortName, p.CategoryName, statusLabel(p.IsActive)})
	}

	e.logger.Info("products exported", zap.Int("rows", len(rows)))
	return WriteCSV(w, []string{"SKU", "Name", "Category", "Status"}, rows)
}

// Warehouses exports the filtered warehouse registry.
func (e *Exporter) Warehouses(ctx context.Context, filters models.WarehouseFilters, w io.Writer) error {
	page, err := e.api.Warehouses.List(ctx, filters, exportLimit, 0)
	if err != nil {
		return fmt.Errorf("export warehouses: %w", err)
	}

	rows := make([][]string, 0, len(page.Data))
	for _, wh := range page.Data {
		rows = append(rows, []string{strconv.Itoa(wh.ID), wh.Description, statusLabel(wh.IsActive)})
	}

	e.logger.Info("warehouses exported", zap.Int("rows", len(rows)))
	return WriteCSV(w, []string{"ID", "Description", "Status"}, rows)
}

// Users exports the filtered user accounts.
func (e *Exporter) Users(ctx context.Context, filters models.UserFilters, w io.Writer) error {
	page, err := e.api.Users.List(ctx, filters, exportLimit, 0)
	if err != nil {
		return fmt.Errorf("export users: %w", err)
	}

	rows := make([][]string, 0, len(page.Data))
	for _, u := range page.Data {
		rows = append(rows, []string{strconv.Itoa(u.ID), u.Name, u.Email, u.Role, statusLabel(u.IsActive)})
	}

	e.logger.Info("users exported", zap.Int("rows", len(rows)))
	return WriteCSV(w, []string{"ID", "Name", "Email", "Role", "Status"}, rows)
}

func statusLabel(isActive bool) string {
	if isActive {
		return "Active"
	}
	return "Inactive"
}
