// Package poller drives the fixed-interval refresh cycles. There is no
// push channel from the backend; everything the dashboard shows comes from
// these polls.
package poller

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Ayash-Bera/L1Beat-frontend/internal/store"
)

// refreshTimeout bounds one full refresh cycle so a wedged backend cannot
// pile up overlapping cycles.
const refreshTimeout = 2 * time.Minute

type Poller struct {
	cron           *cron.Cron
	store          *store.Store
	logger         *zap.Logger
	dataInterval   time.Duration
	healthInterval time.Duration
}

func New(st *store.Store, logger *zap.Logger, dataInterval, healthInterval time.Duration) *Poller {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dataInterval <= 0 {
		dataInterval = 15 * time.Minute
	}
	if healthInterval <= 0 {
		healthInterval = 5 * time.Minute
	}
	return &Poller{
		cron:           cron.New(),
		store:          st,
		logger:         logger,
		dataInterval:   dataInterval,
		healthInterval: healthInterval,
	}
}

func (p *Poller) Start() error {
	_, err := p.cron.AddFunc(fmt.Sprintf("@every %s", p.dataInterval), func() {
		p.logger.Info("starting scheduled dataset refresh")
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		p.store.RefreshDatasets(ctx)
	})
	if err != nil {
		return err
	}

	_, err = p.cron.AddFunc(fmt.Sprintf("@every %s", p.healthInterval), func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		p.store.RefreshHealth(ctx)
	})
	if err != nil {
		return err
	}

	p.cron.Start()
	p.logger.Info("poller started",
		zap.Duration("data_interval", p.dataInterval),
		zap.Duration("health_interval", p.healthInterval),
	)

	return nil
}

// Stop clears the schedule so no timer keeps mutating the store after the
// consumer is gone. Blocks until in-flight refreshes finish.
func (p *Poller) Stop() {
	ctx := p.cron.Stop()
	<-ctx.Done()
	p.logger.Info("poller stopped")
}

// RunNow performs one full refresh immediately, used at startup so the
// first page load has data.
func (p *Poller) RunNow(ctx context.Context) {
	p.store.RefreshAll(ctx)
}
