package dto

type Timeframe string

const (
	TimeframeShort Timeframe = "short"
	TimeframeMid   Timeframe = "mid"
	TimeframeLong  Timeframe = "long"
)

// Timeframes returns the timeframes in tab order.
func Timeframes() []Timeframe {
	return []Timeframe{TimeframeShort, TimeframeMid, TimeframeLong}
}

func ParseTimeframe(val string) (Timeframe, bool) {
	switch Timeframe(val) {
	case TimeframeShort, TimeframeMid, TimeframeLong:
		return Timeframe(val), true
	default:
		return "", false
	}
}

func (t Timeframe) Label() string {
	switch t {
	case TimeframeShort:
		return "Short Term"
	case TimeframeMid:
		return "Mid Term"
	case TimeframeLong:
		return "Long Term"
	default:
		return "Unknown"
	}
}

const (
	VerdictBullish = "BULLISH"
	VerdictBearish = "BEARISH"
	VerdictNeutral = "NEUTRAL"

	DecisionBuy  = "BUY"
	DecisionSell = "SELL"
	DecisionHold = "HOLD"

	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"

	MovementUpward   = "Upward"
	MovementDownward = "Downward"
)
