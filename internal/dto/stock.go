package dto

type Prediction struct {
	Timeframe      string   `json:"timeframe"`
	PredictedPrice *float64 `json:"predicted_price"`
	Score          *float64 `json:"score"`
}

type StockSummary struct {
	Ticker          string      `json:"ticker"`
	CompanyName     string      `json:"company_name"`
	Sector          string      `json:"sector"`
	Industry        string      `json:"industry"`
	CurrentPrice    *float64    `json:"current_price"`
	PriceLabel      string      `json:"price_label"`
	ShortTerm       *Prediction `json:"short_term"`
	MidTerm         *Prediction `json:"mid_term"`
	LongTerm        *Prediction `json:"long_term"`
	PredictionScore *float64    `json:"prediction_score"`
	Reasons         string      `json:"reasons"`
	LastUpdated     string      `json:"last_updated"`
}

// Prediction returns the block for tf, falling back to the short term
// block when the backend omitted it.
func (s StockSummary) Prediction(tf Timeframe) Prediction {
	var p *Prediction
	switch tf {
	case TimeframeMid:
		p = s.MidTerm
	case TimeframeLong:
		p = s.LongTerm
	default:
		p = s.ShortTerm
	}
	if p == nil {
		p = s.ShortTerm
	}
	if p == nil {
		return Prediction{}
	}
	return *p
}

type TopStocks struct {
	ShortTerm   []StockSummary `json:"short_term"`
	MidTerm     []StockSummary `json:"mid_term"`
	LongTerm    []StockSummary `json:"long_term"`
	GeneratedAt string         `json:"generated_at"`
}

func (t *TopStocks) ByTimeframe(tf Timeframe) []StockSummary {
	if t == nil {
		return nil
	}
	switch tf {
	case TimeframeShort:
		return t.ShortTerm
	case TimeframeMid:
		return t.MidTerm
	case TimeframeLong:
		return t.LongTerm
	default:
		return nil
	}
}

type AIAnalysis struct {
	Outlook    string `json:"outlook"`
	Confidence string `json:"confidence"`
	Summary    string `json:"summary"`
}

type MarketSentiment struct {
	Sentiment   string   `json:"sentiment"`
	SPYChange   *float64 `json:"spy_change"`
	Description string   `json:"description"`
}

type SectorAnalysis struct {
	Sector      string   `json:"sector"`
	Performance *float64 `json:"performance"`
	Trend       string   `json:"trend"`
	Description string   `json:"description"`
}

type InterestRateEnvironment struct {
	CurrentYield *float64 `json:"current_yield"`
	Impact       string   `json:"impact"`
	Description  string   `json:"description"`
}

type EconomicIndicator struct {
	Status      string `json:"status"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

type EconomicIndicators struct {
	Inflation    *EconomicIndicator `json:"inflation"`
	GDPGrowth    *EconomicIndicator `json:"gdp_growth"`
	Unemployment *EconomicIndicator `json:"unemployment"`
}

type GeopoliticalContext struct {
	RiskLevel      string   `json:"risk_level"`
	Factors        []string `json:"factors"`
	Recommendation string   `json:"recommendation"`
}

type MarketContext struct {
	MarketSentiment         *MarketSentiment         `json:"market_sentiment"`
	SectorAnalysis          *SectorAnalysis          `json:"sector_analysis"`
	InterestRateEnvironment *InterestRateEnvironment `json:"interest_rate_environment"`
	EconomicIndicators      *EconomicIndicators      `json:"economic_indicators"`
	GeopoliticalContext     *GeopoliticalContext     `json:"geopolitical_context"`
}

// IsEmpty reports whether no sub-panel is present.
func (m *MarketContext) IsEmpty() bool {
	return m == nil || (m.MarketSentiment == nil && m.SectorAnalysis == nil &&
		m.InterestRateEnvironment == nil && m.EconomicIndicators == nil &&
		m.GeopoliticalContext == nil)
}

type Recommendations struct {
	ShortTerm string `json:"short_term"`
	MidTerm   string `json:"mid_term"`
	LongTerm  string `json:"long_term"`
}

func (r *Recommendations) ByTimeframe(tf Timeframe) string {
	if r == nil {
		return ""
	}
	switch tf {
	case TimeframeShort:
		return r.ShortTerm
	case TimeframeMid:
		return r.MidTerm
	case TimeframeLong:
		return r.LongTerm
	default:
		return ""
	}
}

type ScoreBreakdown struct {
	Baseline       *float64 `json:"baseline"`
	Technical      *float64 `json:"technical"`
	Fundamental    *float64 `json:"fundamental"`
	BaselinePct    *float64 `json:"baseline_pct"`
	TechnicalPct   *float64 `json:"technical_pct"`
	FundamentalPct *float64 `json:"fundamental_pct"`
	Total          *float64 `json:"total"`
}

type StockDetail struct {
	StockSummary
	AIAnalysis      *AIAnalysis      `json:"ai_analysis"`
	MarketContext   *MarketContext   `json:"market_context"`
	Recommendations *Recommendations `json:"recommendations"`
	ScoreBreakdown  *ScoreBreakdown  `json:"score_breakdown"`
}
