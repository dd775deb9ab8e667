package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockSummary_Prediction(t *testing.T) {
	price := func(v float64) *float64 { return &v }
	s := StockSummary{
		ShortTerm: &Prediction{PredictedPrice: price(110)},
		LongTerm:  &Prediction{PredictedPrice: price(150)},
	}

	assert.Equal(t, 110.0, *s.Prediction(TimeframeShort).PredictedPrice)
	assert.Equal(t, 150.0, *s.Prediction(TimeframeLong).PredictedPrice)
	assert.Equal(t, 110.0, *s.Prediction(TimeframeMid).PredictedPrice, "missing block falls back to short term")
	assert.Nil(t, StockSummary{}.Prediction(TimeframeMid).PredictedPrice)
}

func TestTopStocks_ByTimeframe(t *testing.T) {
	var nilStocks *TopStocks
	assert.Nil(t, nilStocks.ByTimeframe(TimeframeShort))

	ts := &TopStocks{MidTerm: []StockSummary{{Ticker: "MID"}}}
	assert.Equal(t, "MID", ts.ByTimeframe(TimeframeMid)[0].Ticker)
	assert.Empty(t, ts.ByTimeframe(TimeframeLong))
}

func TestParseTimeframe(t *testing.T) {
	tests := []struct {
		in    string
		want  Timeframe
		ok    bool
		label string
	}{
		{in: "short", want: TimeframeShort, ok: true, label: "Short Term"},
		{in: "mid", want: TimeframeMid, ok: true, label: "Mid Term"},
		{in: "long", want: TimeframeLong, ok: true, label: "Long Term"},
		{in: "weekly", ok: false, label: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseTimeframe(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.label, got.Label())
		})
	}
}
