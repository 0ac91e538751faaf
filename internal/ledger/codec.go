package ledger

import (
	"encoding/json"
	"fmt"
)

// Encode serializes the ledger for the persistence backend. Blank fields
// are stored as JSON null so a decoded ledger is indistinguishable from
// the original.
func Encode(l Ledger) (string, error) {
	raw, err := json.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("encode ledger: %w", err)
	}
	return string(raw), nil
}

// Decode parses a stored ledger blob. Callers treat a decode failure the
// same as absent state.
func Decode(blob string) (Ledger, error) {
	var l Ledger
	if err := json.Unmarshal([]byte(blob), &l); err != nil {
		return nil, fmt.Errorf("decode ledger: %w", err)
	}
	return l, nil
}
