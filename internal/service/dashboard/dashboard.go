package dashboard

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/duquediazn/tabulae-client/internal/domain/models"
	"github.com/duquediazn/tabulae-client/internal/history"
	"github.com/duquediazn/tabulae-client/pkg/clients/tabulae"
)

// Overview aggregates everything the landing dashboard shows: the expiration
// semaphore, per-type movement totals, the last year of monthly activity and
// total stock per warehouse.
type Overview struct {
	Semaphore       models.StockSemaphore     `json:"semaphore"`
	MoveTotals      []models.StockMoveSummary `json:"move_totals"`
	MonthlyActivity []history.MonthlyCount    `json:"monthly_activity"`
	WarehouseStock  []models.StockByWarehouse `json:"warehouse_stock"`
}

// Service builds dashboard aggregates from the API.
type Service struct {
	api    *tabulae.Client
	logger *zap.Logger
}

// NewService wires a dashboard service instance.
func NewService(api *tabulae.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, logger: logger}
}

// Overview fetches and assembles the dashboard aggregate.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	semaphore, err := s.api.Stock.Semaphore(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("load semaphore: %w", err)
	}

	totals, err := s.api.Movements.SummaryByType(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("load movement totals: %w", err)
	}

	lastYear, err := s.api.Movements.LastYear(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("load last-year movements: %w", err)
	}

	warehouseStock, err := s.api.Stock.WarehousesDetail(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("load warehouse stock: %w", err)
	}

	return Overview{
		Semaphore:       semaphore,
		MoveTotals:      totals,
		MonthlyActivity: history.MonthlyCounts(s.logger, lastYear),
		WarehouseStock:  warehouseStock,
	}, nil
}
