package dto

// TickerRequest is the query of the search and consensus fragments.
type TickerRequest struct {
	Ticker string `query:"ticker" validate:"required,ticker"`
}

type TabRequest struct {
	Timeframe string `param:"timeframe" validate:"required,oneof=short mid long"`
}

type PanelRequest struct {
	ID string `param:"id" validate:"required,oneof=consensus-details fingpt-details finbert-details finllm-details finma-details"`
}
