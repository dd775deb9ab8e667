package dto

import (
	"encoding/json"
	"fmt"
)

// Envelope is the response wrapper returned by the analysis backend.
type Envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// DecodeEnvelope unwraps body into out. Bodies without a success flag are
// treated as bare payloads, which is how the methodology endpoint responds.
func DecodeEnvelope(body []byte, out interface{}) error {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if env.Success == nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode payload: %w", err)
		}
		return nil
	}

	if !*env.Success {
		return &APIError{Message: env.Error}
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("failed to decode payload: empty data")
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}
