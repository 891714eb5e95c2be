// Package cron contains the background maintenance delivery. It runs
// scheduled jobs inside the main process, next to the HTTP server.
package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"coursebridge/config"
	"coursebridge/internal/delivery"
	"coursebridge/internal/domain/repository"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const (
	// defaultRefreshTokenSweep runs the expired session sweep hourly.
	defaultRefreshTokenSweep = "0 * * * *"

	// sweepTimeout bounds a single sweep run.
	sweepTimeout = time.Minute
)

// cronDelivery schedules the maintenance jobs and satisfies the delivery
// contract so the fx graph runs it like any other inbound adapter.
type cronDelivery struct {
	cfg              *config.Config
	logger           *slog.Logger
	refreshTokenRepo repository.RefreshTokenRepository
	scheduler        *cron.Cron
	done             chan struct{}
	stopOnce         sync.Once
}

// Params holds dependencies for the cron delivery, injected by Fx.
type Params struct {
	fx.In

	Lc               fx.Lifecycle
	Cfg              *config.Config
	Logger           *slog.Logger
	RefreshTokenRepo repository.RefreshTokenRepository
}

// NewDelivery is the constructor for the cron delivery.
func NewDelivery(params Params) (delivery.Delivery, error) {
	runner := &cronDelivery{
		cfg:              params.Cfg,
		logger:           params.Logger,
		refreshTokenRepo: params.RefreshTokenRepo,
		scheduler:        cron.New(),
		done:             make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return runner.stop(ctx)
		},
	})

	return runner, nil
}

// Serve registers the maintenance jobs and runs the scheduler until the
// context is cancelled or the delivery is stopped.
func (d *cronDelivery) Serve(ctx context.Context) error {
	if d.cfg.Cron == nil || !d.cfg.Cron.Enabled {
		d.logger.Info("Cron delivery disabled")

		return nil
	}

	sweepSpec := d.cfg.Cron.RefreshTokenSweep
	if sweepSpec == "" {
		sweepSpec = defaultRefreshTokenSweep
	}

	if _, err := d.scheduler.AddFunc(sweepSpec, d.sweepExpiredSessions); err != nil {
		return err
	}

	d.scheduler.Start()
	d.logger.Info("Cron delivery started", slog.String("refreshTokenSweep", sweepSpec))

	select {
	case <-ctx.Done():
	case <-d.done:
	}

	return nil
}

// stop halts the scheduler and waits for running jobs, bounded by the
// shutdown context.
func (d *cronDelivery) stop(ctx context.Context) error {
	d.stopOnce.Do(func() { close(d.done) })

	jobsDone := d.scheduler.Stop()
	select {
	case <-jobsDone.Done():
	case <-ctx.Done():
	}

	d.logger.Info("Cron delivery stopped")

	return nil
}

// sweepExpiredSessions deletes refresh tokens past their expiry so dead
// sessions do not pile up in the table.
func (d *cronDelivery) sweepExpiredSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	deleted, err := d.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		d.logger.Error("Expired session sweep failed", slog.Any("error", err))

		return
	}

	if deleted > 0 {
		d.logger.Info("Expired sessions swept", slog.Int64("deleted", deleted))
	}
}
