package l1beat

import (
	"strconv"
	"strings"
)

// The backend is inconsistent about numeric fields: the same value can
// arrive as a number, a quoted string, or null depending on the indexer
// run. flexFloat and flexInt coerce all of those, and anything malformed,
// to zero so NaN never leaks into the data model.

type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(v)
	return nil
}

// Raw backend shapes, renamed and normalized into internal/models before
// anything downstream sees them.

type rawValidator struct {
	NodeID            string    `json:"nodeId"`
	ValidationStatus  string    `json:"validationStatus"`
	UptimePerformance flexFloat `json:"uptimePerformance"`
	AmountStaked      flexFloat `json:"amountStaked"`
}

type rawNetworkToken struct {
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
	LogoURI string `json:"logoUri"`
}

type rawTPSSample struct {
	Value     flexFloat `json:"value"`
	Timestamp flexInt   `json:"timestamp"`
}

type rawChain struct {
	ChainID         string           `json:"chainId"`
	ChainName       string           `json:"chainName"`
	ChainLogoURI    string           `json:"chainLogoUri"`
	Description     string           `json:"description"`
	ExplorerURL     string           `json:"explorerUrl"`
	SubnetID        string           `json:"subnetId"`
	PlatformChainID string           `json:"platformChainId"`
	Validators      []rawValidator   `json:"validators"`
	NetworkToken    *rawNetworkToken `json:"networkToken"`
	TPS             *rawTPSSample    `json:"tps"`
}

type tvlHistoryEnvelope struct {
	Data []rawTVLPoint `json:"data"`
}

type rawTVLPoint struct {
	Date flexInt   `json:"date"` // unix seconds
	TVL  flexFloat `json:"tvl"`
}

type tvlHealthEnvelope struct {
	LastUpdate flexInt   `json:"lastUpdate"` // unix millis
	AgeInHours flexFloat `json:"ageInHours"`
	TVL        flexFloat `json:"tvl"`
	Status     string    `json:"status"`
}

type tpsHistoryEnvelope struct {
	Success bool          `json:"success"`
	Data    []rawTPSPoint `json:"data"`
}

type rawTPSPoint struct {
	Timestamp flexInt   `json:"timestamp"` // unix seconds
	Value     flexFloat `json:"value"`
}

type networkTPSEnvelope struct {
	Success bool          `json:"success"`
	Data    rawNetworkTPS `json:"data"`
}

type rawNetworkTPS struct {
	TotalTPS   flexFloat `json:"totalTps"`
	ChainCount flexInt   `json:"chainCount"`
	Timestamp  flexInt   `json:"timestamp"` // unix seconds
}

type healthEnvelope struct {
	Status      string `json:"status"`
	CurrentTime string `json:"currentTime"` // RFC 3339, optional
}

type teleporterEnvelope struct {
	Messages []rawTeleporterEdge `json:"messages"`
	Metadata rawTeleporterMeta   `json:"metadata"`
}

type rawTeleporterEdge struct {
	SourceChain string  `json:"sourceChain"`
	TargetChain string  `json:"targetChain"`
	Count       flexInt `json:"messageCount"`
}

type rawTeleporterMeta struct {
	TotalMessages flexInt `json:"totalMessages"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	UpdatedAt     string  `json:"updatedAt"`
}
