package models

// Chain is one blockchain network tracked by the dashboard.
type Chain struct {
	ID              string        `json:"chainId"`
	Name            string        `json:"chainName"`
	LogoURI         string        `json:"chainLogoUri,omitempty"`
	Description     string        `json:"description,omitempty"`
	ExplorerURL     string        `json:"explorerUrl,omitempty"`
	SubnetID        string        `json:"subnetId,omitempty"`
	PlatformChainID string        `json:"platformChainId,omitempty"`
	Validators      []Validator   `json:"validators"`
	NetworkToken    *NetworkToken `json:"networkToken,omitempty"`
	TPS             *TPSSample    `json:"tps,omitempty"`
}

// Validator secures a chain with staked weight. Active is derived from the
// backend status enumeration: exactly "active" counts, anything else does
// not.
type Validator struct {
	Address     string  `json:"address"`
	Active      bool    `json:"active"`
	Uptime      float64 `json:"uptime"`
	Weight      float64 `json:"weight"`
	ExplorerURL string  `json:"explorerUrl,omitempty"`
}

type NetworkToken struct {
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
	LogoURI string `json:"logoUri,omitempty"`
}

// TPSSample is the most recent throughput reading for a single chain.
type TPSSample struct {
	Value     float64 `json:"value"`
	Timestamp int64   `json:"timestamp"` // unix seconds
}
