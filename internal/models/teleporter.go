package models

// TeleporterEdge counts cross-chain messages between one pair of chains.
type TeleporterEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Count  int    `json:"count"`
}

type TeleporterMeta struct {
	TotalMessages int    `json:"totalMessages"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	UpdatedAt     string `json:"updatedAt"`
}

// TeleporterData is the full message-flow dataset behind the interchain
// diagram.
type TeleporterData struct {
	Edges []TeleporterEdge `json:"messages"`
	Meta  TeleporterMeta   `json:"metadata"`
}
