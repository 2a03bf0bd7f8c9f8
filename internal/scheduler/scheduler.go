package scheduler

import (
	"context"
	"time"

	"github.com/nsien-prestige/Eventful-Backend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reconcileSweeper interface {
	Sweep(ctx context.Context) (*domain.ReconcileReport, error)
}

type Scheduler struct {
	reconciler reconcileSweeper
	interval   time.Duration
	logger     logger.Logger
}

func New(
	reconciler reconcileSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reconciler: reconciler,
		interval:   interval,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	report, err := s.reconciler.Sweep(ctx)
	if err != nil {
		s.logger.Error("reconciliation sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}
	if report == nil {
		return
	}

	if report.Resumed+report.Settled+report.Failed+report.Unadmitted+report.IntegrityFaults+report.Errors == 0 {
		s.logger.Debug("reconciliation sweep finished, nothing to do")
		return
	}

	level := logger.InfoLevel
	if report.Unadmitted > 0 || report.IntegrityFaults > 0 || report.Errors > 0 {
		level = logger.WarnLevel
	}
	s.logger.LogAttrs(ctx, level, "reconciliation sweep finished",
		logger.Int("resumed", report.Resumed),
		logger.Int("settled", report.Settled),
		logger.Int("failed", report.Failed),
		logger.Int("unadmitted", report.Unadmitted),
		logger.Int("integrity_faults", report.IntegrityFaults),
		logger.Int("errors", report.Errors),
	)
}
