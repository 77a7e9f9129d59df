package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Ayash-Bera/L1Beat-frontend/internal/stats"
)

func (s *Server) handleChains(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Chains())
}

func (s *Server) handleChain(w http.ResponseWriter, r *http.Request) {
	chain, ok := s.store.Chain(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "chain not found")
		return
	}
	writeJSON(w, http.StatusOK, chain)
}

func (s *Server) handleStakeDistribution(w http.ResponseWriter, r *http.Request) {
	chain, ok := s.store.Chain(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "chain not found")
		return
	}
	writeJSON(w, http.StatusOK, stats.StakeDistribution(chain.Validators))
}

func (s *Server) handleChainScore(w http.ResponseWriter, r *http.Request) {
	chain, ok := s.store.Chain(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "chain not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"chainId": chain.ID,
		"score":   stats.ChainScore(chain.Validators),
	})
}

func (s *Server) handleChainTPSHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.TPSHistory(mux.Vars(r)["id"]))
}

func (s *Server) handleTVLHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.TVLHistory())
}

func (s *Server) handleTVLHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.TVLHealth())
}

func (s *Server) handleNetworkTPS(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.NetworkTPS())
}

func (s *Server) handleNetworkTPSHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.NetworkTPSHistory())
}

func (s *Server) handleTeleporter(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Teleporter())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	backend := s.store.Health()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "healthy",
		"version":        version,
		"uptime":         time.Since(s.startTime).String(),
		"backend":        backend,
		"backendHealthy": backend.IsHealthy(),
		"timestamp":      time.Now().UnixMilli(),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
