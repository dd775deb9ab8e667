package http

import (
	"fmt"
	"regexp"

	goValidator "github.com/go-playground/validator/v10"
)

// tickerPattern accepts exchange symbols such as AAPL, BRK.B, BTC-USD or ^GSPC.
var tickerPattern = regexp.MustCompile(`^[A-Z0-9^][A-Z0-9.\-=^]{0,14}$`)

// NewValidator returns a validator with the dashboard specific tags registered.
func NewValidator() (*goValidator.Validate, error) {
	v := goValidator.New()
	if err := v.RegisterValidation("ticker", func(fl goValidator.FieldLevel) bool {
		return tickerPattern.MatchString(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("register ticker validation: %w", err)
	}
	return v, nil
}
