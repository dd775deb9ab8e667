package dto

type ConsolidatedSummary struct {
	OverallVerdict  string   `json:"overall_verdict"`
	Recommendation  Text     `json:"recommendation"`
	Confidence      Text     `json:"confidence"`
	PositiveSignals *float64 `json:"positive_signals"`
	NegativeSignals *float64 `json:"negative_signals"`
	PriceOutlook    Text     `json:"price_outlook"`
	ActionStatement Text     `json:"action_statement"`
	Summary         string   `json:"summary"`
}

// SentimentModelOutput is the sentiment model's view of the ticker.
type SentimentModelOutput struct {
	Sentiment       string   `json:"sentiment"`
	Confidence      *float64 `json:"confidence"`
	PricePrediction Text     `json:"price_prediction"`
	Summary         Text     `json:"summary"`
}

// NewsModelOutput is the news classification model's view of the ticker.
type NewsModelOutput struct {
	Sentiment string   `json:"sentiment"`
	Score     *float64 `json:"score"`
	Impact    Text     `json:"impact"`
	Findings  Text     `json:"findings"`
}

// DecisionModelOutput is the investment decision model's recommendation.
type DecisionModelOutput struct {
	Recommendation string `json:"recommendation"`
	Confidence     Text   `json:"confidence"`
	Rationale      Text   `json:"rationale"`
	Risks          Text   `json:"risks"`
	TimeHorizon    Text   `json:"time_horizon"`
}

// MovementModelOutput is the price movement model's prediction.
type MovementModelOutput struct {
	MovementDirection    string   `json:"movement_direction"`
	ConfidenceScore      *float64 `json:"confidence_score"`
	Timeframe            Text     `json:"timeframe"`
	PriceTargetLow       *float64 `json:"price_target_low"`
	PriceTargetHigh      *float64 `json:"price_target_high"`
	KeyFactors           Text     `json:"key_factors"`
	VolatilityAssessment Text     `json:"volatility_assessment"`
}

type ConsensusResult struct {
	Ticker              string               `json:"ticker"`
	CompanyName         string               `json:"company_name"`
	CurrentPrice        *float64             `json:"current_price"`
	LastUpdated         string               `json:"last_updated"`
	ConsolidatedSummary ConsolidatedSummary  `json:"consolidated_summary"`
	SentimentModel      SentimentModelOutput `json:"fingpt_analysis"`
	NewsModel           NewsModelOutput      `json:"finbert_analysis"`
	DecisionModel       DecisionModelOutput  `json:"finllm_decision"`
	MovementModel       MovementModelOutput  `json:"finma_prediction"`
}
