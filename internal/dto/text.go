package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Text is free-form text from a model output. The backend does not always
// send strings here, so numbers, booleans and lists are accepted and kept
// in their textual form.
type Text string

func (t Text) String() string {
	return string(t)
}

func (t *Text) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	*t = Text(textOf(raw))
	return nil
}

func textOf(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := textOf(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		out, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(out)
	}
}
