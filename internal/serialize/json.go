package serialize

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON encodes data without HTML escaping and without a trailing newline.
func MarshalJSON(data any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

func UnmarshalJSON(data []byte, dest any) error {
	return json.Unmarshal(data, dest)
}
