package models

// SeasonalityStatus classifies how an ingredient's market price compares
// with the previous event's shopping run.
type SeasonalityStatus string

const (
	SeasonBestTime   SeasonalityStatus = "best_time"
	SeasonNormal     SeasonalityStatus = "normal"
	SeasonExpensive  SeasonalityStatus = "expensive"
	SeasonBanned     SeasonalityStatus = "banned"
	SeasonOutOfStock SeasonalityStatus = "out_of_stock"
)

// HistoricPrice is last-event reference pricing for an ingredient, used to
// annotate the savings opportunity report.
type HistoricPrice struct {
	Name           string            `json:"name"`
	LastPrice      float64           `json:"lastPrice"`
	Seasonality    SeasonalityStatus `json:"seasonality"`
	SeasonalityMsg string            `json:"seasonalityMsg,omitempty"`
}
