package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/duquediazn/tabulae-client/internal/config"
	"github.com/duquediazn/tabulae-client/internal/domain/models"
	"github.com/duquediazn/tabulae-client/internal/export"
	"github.com/duquediazn/tabulae-client/internal/service/dashboard"
)

// Scheduler runs the periodic inventory snapshot: a dashboard overview in the
// logs plus a movements CSV in the export directory.
type Scheduler struct {
	cron         *cron.Cron
	dashboardSvc *dashboard.Service
	exporter     *export.Exporter
	cfg          config.SnapshotConfig
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance. The timezone from the
// snapshot config drives the cron clock; an invalid one falls back to local.
func NewScheduler(cfg config.SnapshotConfig, dashboardSvc *dashboard.Service, exporter *export.Exporter, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("invalid timezone, using local", zap.String("timezone", cfg.Timezone), zap.Error(err))
		loc = time.Local
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(loc)),
		dashboardSvc: dashboardSvc,
		exporter:     exporter,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start registers the snapshot job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runSnapshot); err != nil {
		s.logger.Error("failed to schedule snapshot", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the cron loop.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	overview, err := s.dashboardSvc.Overview(ctx)
	if err != nil {
		s.logger.Error("snapshot overview failed", zap.Error(err))
		return
	}

	s.logger.Info("inventory snapshot",
		zap.Int("no_expiration", overview.Semaphore.NoExpiration),
		zap.Int("expiring_soon", overview.Semaphore.ExpiringSoon),
		zap.Int("expired", overview.Semaphore.Expired),
		zap.Int("warehouses", len(overview.WarehouseStock)))

	if err := s.exportMovements(ctx); err != nil {
		s.logger.Error("snapshot export failed", zap.Error(err))
	}
}

func (s *Scheduler) exportMovements(ctx context.Context) error {
	name := fmt.Sprintf("stock-movements-%s.csv", time.Now().Format("2006-01-02"))
	path := filepath.Join(s.cfg.ExportDir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := s.exporter.Movements(ctx, models.MovementFilters{}, f); err != nil {
		return err
	}

	s.logger.Info("snapshot export written", zap.String("path", path))
	return nil
}
