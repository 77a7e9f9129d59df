package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ayash-Bera/L1Beat-frontend/internal/models"
)

// fakeClient returns canned data and records which windows were requested.
type fakeClient struct {
	chains       []models.Chain
	tpsRequested map[string]int
}

func newFakeClient(chains []models.Chain) *fakeClient {
	return &fakeClient{chains: chains, tpsRequested: make(map[string]int)}
}

func (f *fakeClient) GetChains(ctx context.Context) []models.Chain {
	return f.chains
}

func (f *fakeClient) GetTVLHistory(ctx context.Context, days int) []models.TimeSeriesPoint {
	return []models.TimeSeriesPoint{{Timestamp: 1700000000, Value: float64(days)}}
}

func (f *fakeClient) GetTVLHealth(ctx context.Context) models.TVLHealth {
	return models.TVLHealth{Status: "ok", TVL: 1000}
}

func (f *fakeClient) GetTPSHistory(ctx context.Context, chainID string, days int) []models.TimeSeriesPoint {
	f.tpsRequested[chainID] = days
	return []models.TimeSeriesPoint{{Timestamp: 1700000000, Value: 5}}
}

func (f *fakeClient) GetNetworkTPS(ctx context.Context) models.NetworkTPS {
	return models.NetworkTPS{Total: 57.3, ChainCount: len(f.chains)}
}

func (f *fakeClient) GetHealth(ctx context.Context) models.HealthStatus {
	return models.HealthStatus{Status: "healthy", Timestamp: 1700000000000}
}

func (f *fakeClient) GetTeleporterMessages(ctx context.Context) models.TeleporterData {
	return models.TeleporterData{
		Edges: []models.TeleporterEdge{{Source: "A", Target: "B", Count: 3}},
	}
}

func testChains() []models.Chain {
	return []models.Chain{
		{ID: "A", Name: "Chain A"},
		{ID: "B", Name: "Chain B"},
	}
}

func TestRefreshChainsReplacesStateAndFetchesTPS(t *testing.T) {
	client := newFakeClient(testChains())
	s := New(client, nil, WithHistoryDays(30, 7))

	s.RefreshChains(context.Background())

	chains := s.Chains()
	require.Len(t, chains, 2)
	assert.Equal(t, "Chain A", chains[0].Name)

	// Per-chain TPS history fetched for every chain with the configured window.
	assert.Equal(t, 7, client.tpsRequested["A"])
	assert.Equal(t, 7, client.tpsRequested["B"])
	assert.Len(t, s.TPSHistory("A"), 1)

	// The next refresh fully replaces the previous value.
	client.chains = []models.Chain{{ID: "C", Name: "Chain C"}}
	s.RefreshChains(context.Background())
	chains = s.Chains()
	require.Len(t, chains, 1)
	assert.Equal(t, "C", chains[0].ID)
	assert.Empty(t, s.TPSHistory("A"))
}

func TestRefreshAll(t *testing.T) {
	client := newFakeClient(testChains())
	s := New(client, nil)

	s.RefreshAll(context.Background())

	assert.Len(t, s.TVLHistory(), 1)
	assert.Equal(t, "ok", s.TVLHealth().Status)
	assert.Equal(t, 57.3, s.NetworkTPS().Total)
	assert.Len(t, s.NetworkTPSHistory(), 1)
	assert.Equal(t, 30, client.tpsRequested[""], "network-wide series uses the configured window")
	assert.True(t, s.Health().IsHealthy())
	assert.Len(t, s.Teleporter().Edges, 1)
}

func TestChainLookup(t *testing.T) {
	s := New(newFakeClient(testChains()), nil)
	s.RefreshChains(context.Background())

	chain, ok := s.Chain("B")
	require.True(t, ok)
	assert.Equal(t, "Chain B", chain.Name)

	_, ok = s.Chain("missing")
	assert.False(t, ok)
}

func TestSnapshotGettersReturnCopies(t *testing.T) {
	s := New(newFakeClient(testChains()), nil)
	s.RefreshAll(context.Background())

	chains := s.Chains()
	chains[0].Name = "mutated"
	assert.Equal(t, "Chain A", s.Chains()[0].Name)

	edges := s.Teleporter().Edges
	edges[0].Count = 999
	assert.Equal(t, 3, s.Teleporter().Edges[0].Count)
}

func TestEmptyStoreIsUsable(t *testing.T) {
	s := New(newFakeClient(nil), nil)

	// Before any refresh the view layer sees empty data, not nil panics.
	assert.Empty(t, s.Chains())
	assert.Empty(t, s.TVLHistory())
	assert.Empty(t, s.TPSHistory("anything"))
	assert.False(t, s.Health().IsHealthy())
}
