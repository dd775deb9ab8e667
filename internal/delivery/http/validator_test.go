package http

import (
	"testing"

	"stock-dashboard/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidator_Ticker(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	for _, ticker := range []string{"AAPL", "BRK.B", "BTC-USD", "^GSPC", "ES=F"} {
		assert.NoError(t, v.Struct(dto.TickerRequest{Ticker: ticker}), ticker)
	}
	for _, ticker := range []string{"", "aapl", "<B>", "A B", "TOOLONGTICKER1234"} {
		assert.Error(t, v.Struct(dto.TickerRequest{Ticker: ticker}), ticker)
	}
}

func TestNewValidator_Panel(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Struct(dto.PanelRequest{ID: "finma-details"}))
	assert.Error(t, v.Struct(dto.PanelRequest{ID: "sidebar"}))
}
