package models

// TimeSeriesPoint is one TVL or TPS sample. Series handed to consumers are
// always sorted ascending by timestamp.
type TimeSeriesPoint struct {
	Timestamp int64   `json:"timestamp"` // unix seconds
	Value     float64 `json:"value"`
}

// TVLHealth reports how fresh the backend's TVL aggregation is.
type TVLHealth struct {
	LastUpdate int64   `json:"lastUpdate"` // unix millis
	AgeHours   float64 `json:"ageInHours"`
	TVL        float64 `json:"tvl"`
	Status     string  `json:"status"`
}

// NetworkTPS is the aggregate throughput snapshot across all chains.
type NetworkTPS struct {
	Total      float64 `json:"total"`
	ChainCount int     `json:"chainCount"`
	Timestamp  int64   `json:"timestamp"` // unix seconds
	Age        float64 `json:"age"`
	AgeUnit    string  `json:"ageUnit"` // "minutes" or "hours"
}
