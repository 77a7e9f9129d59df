// Package store holds the latest fetched dashboard data. Refresh actions
// call the backend client and replace whole values; the view layer reads
// copies through the snapshot getters. Writes are last-write-wins, which is
// acceptable for read-mostly dashboard data.
package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Ayash-Bera/L1Beat-frontend/internal/models"
)

// Fetcher is what the store needs from the backend client. All methods are
// total: they return fallback values instead of errors.
type Fetcher interface {
	GetChains(ctx context.Context) []models.Chain
	GetTVLHistory(ctx context.Context, days int) []models.TimeSeriesPoint
	GetTVLHealth(ctx context.Context) models.TVLHealth
	GetTPSHistory(ctx context.Context, chainID string, days int) []models.TimeSeriesPoint
	GetNetworkTPS(ctx context.Context) models.NetworkTPS
	GetHealth(ctx context.Context) models.HealthStatus
	GetTeleporterMessages(ctx context.Context) models.TeleporterData
}

type Store struct {
	client  Fetcher
	logger  *zap.Logger
	tvlDays int
	tpsDays int

	mu                sync.RWMutex
	chains            []models.Chain
	tvlHistory        []models.TimeSeriesPoint
	tvlHealth         models.TVLHealth
	tpsHistory        map[string][]models.TimeSeriesPoint
	networkTPS        models.NetworkTPS
	networkTPSHistory []models.TimeSeriesPoint
	health            models.HealthStatus
	teleporter        models.TeleporterData
}

type Option func(*Store)

// WithHistoryDays sets the day windows requested for TVL and TPS series.
func WithHistoryDays(tvlDays, tpsDays int) Option {
	return func(s *Store) {
		if tvlDays > 0 {
			s.tvlDays = tvlDays
		}
		if tpsDays > 0 {
			s.tpsDays = tpsDays
		}
	}
}

func New(client Fetcher, logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		client:     client,
		logger:     logger,
		tvlDays:    30,
		tpsDays:    30,
		tpsHistory: make(map[string][]models.TimeSeriesPoint),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// === Refresh actions ===

// RefreshChains replaces the chain list and the per-chain TPS series for
// every chain in it.
func (s *Store) RefreshChains(ctx context.Context) {
	chains := s.client.GetChains(ctx)

	history := make(map[string][]models.TimeSeriesPoint, len(chains))
	for _, chain := range chains {
		history[chain.ID] = s.client.GetTPSHistory(ctx, chain.ID, s.tpsDays)
	}

	s.mu.Lock()
	s.chains = chains
	s.tpsHistory = history
	s.mu.Unlock()

	s.logger.Info("chains refreshed", zap.Int("count", len(chains)))
}

func (s *Store) RefreshTVL(ctx context.Context) {
	history := s.client.GetTVLHistory(ctx, s.tvlDays)
	health := s.client.GetTVLHealth(ctx)

	s.mu.Lock()
	s.tvlHistory = history
	s.tvlHealth = health
	s.mu.Unlock()

	s.logger.Info("TVL refreshed",
		zap.Int("points", len(history)),
		zap.String("status", health.Status),
	)
}

// RefreshNetworkTPS replaces the latest aggregate snapshot and the
// network-wide throughput series.
func (s *Store) RefreshNetworkTPS(ctx context.Context) {
	snapshot := s.client.GetNetworkTPS(ctx)
	history := s.client.GetTPSHistory(ctx, "", s.tpsDays)

	s.mu.Lock()
	s.networkTPS = snapshot
	s.networkTPSHistory = history
	s.mu.Unlock()
}

func (s *Store) RefreshTeleporter(ctx context.Context) {
	data := s.client.GetTeleporterMessages(ctx)

	s.mu.Lock()
	s.teleporter = data
	s.mu.Unlock()

	s.logger.Info("teleporter data refreshed", zap.Int("edges", len(data.Edges)))
}

func (s *Store) RefreshHealth(ctx context.Context) {
	health := s.client.GetHealth(ctx)

	s.mu.Lock()
	s.health = health
	s.mu.Unlock()

	if !health.IsHealthy() {
		s.logger.Warn("backend reports unhealthy status", zap.String("status", health.Status))
	}
}

// RefreshDatasets runs the slow-cadence refreshes (everything except the
// health probe).
func (s *Store) RefreshDatasets(ctx context.Context) {
	s.RefreshChains(ctx)
	s.RefreshTVL(ctx)
	s.RefreshNetworkTPS(ctx)
	s.RefreshTeleporter(ctx)
}

// RefreshAll refreshes every dataset including health.
func (s *Store) RefreshAll(ctx context.Context) {
	s.RefreshDatasets(ctx)
	s.RefreshHealth(ctx)
}

// === Snapshot getters ===

func (s *Store) Chains() []models.Chain {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chains := make([]models.Chain, len(s.chains))
	copy(chains, s.chains)
	return chains
}

// Chain looks up one chain by ID.
func (s *Store) Chain(id string) (models.Chain, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, chain := range s.chains {
		if chain.ID == id {
			return chain, true
		}
	}
	return models.Chain{}, false
}

func (s *Store) TVLHistory() []models.TimeSeriesPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := make([]models.TimeSeriesPoint, len(s.tvlHistory))
	copy(history, s.tvlHistory)
	return history
}

func (s *Store) TVLHealth() models.TVLHealth {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tvlHealth
}

func (s *Store) TPSHistory(chainID string) []models.TimeSeriesPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := make([]models.TimeSeriesPoint, len(s.tpsHistory[chainID]))
	copy(history, s.tpsHistory[chainID])
	return history
}

func (s *Store) NetworkTPS() models.NetworkTPS {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.networkTPS
}

func (s *Store) NetworkTPSHistory() []models.TimeSeriesPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := make([]models.TimeSeriesPoint, len(s.networkTPSHistory))
	copy(history, s.networkTPSHistory)
	return history
}

func (s *Store) Health() models.HealthStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.health
}

func (s *Store) Teleporter() models.TeleporterData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data := models.TeleporterData{
		Edges: make([]models.TeleporterEdge, len(s.teleporter.Edges)),
		Meta:  s.teleporter.Meta,
	}
	copy(data.Edges, s.teleporter.Edges)
	return data
}
