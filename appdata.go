package orderbook

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSON keys carrying app data inside an order creation payload
const (
	FieldAppData     = "appData"
	FieldAppDataHash = "appDataHash"
)

// AppDataKind identifies which encoding an OrderCreationAppData holds
type AppDataKind int

const (
	// AppDataHashOnly is the backward compatible form: only a precomputed hash is given
	AppDataHashOnly AppDataKind = iota
	// AppDataBoth carries the full app data and the hash it must produce
	AppDataBoth
	// AppDataFullOnly carries the full app data; the hash is derived from it
	AppDataFullOnly
)

func (k AppDataKind) String() string {
	switch k {
	case AppDataHashOnly:
		return "hash"
	case AppDataBoth:
		return "both"
	case AppDataFullOnly:
		return "full"
	default:
		return fmt.Sprintf("AppDataKind(%d)", int(k))
	}
}

// OrderCreationAppData is the string encoding of a JSON object representing some app data.
//
// The zero value is the hash-only variant with an empty hash.
type OrderCreationAppData struct {
	kind     AppDataKind
	full     string
	expected string
	hash     string
}

// DefaultAppData returns the default encoding, HashOnly("")
func DefaultAppData() OrderCreationAppData {
	return OrderCreationAppData{}
}

// NewAppDataBoth creates app data whose hash is inferred from full and validated against expected
func NewAppDataBoth(full, expected string) OrderCreationAppData {
	return OrderCreationAppData{kind: AppDataBoth, full: full, expected: expected}
}

// NewAppDataHash creates backward compatible hash-only app data
func NewAppDataHash(hash string) OrderCreationAppData {
	return OrderCreationAppData{kind: AppDataHashOnly, hash: hash}
}

// NewAppDataFull creates app data whose hash is inferred from full
func NewAppDataFull(full string) OrderCreationAppData {
	return OrderCreationAppData{kind: AppDataFullOnly, full: full}
}

func (a OrderCreationAppData) Kind() AppDataKind {
	return a.kind
}

// Full returns the full app data for the Both and FullOnly variants
func (a OrderCreationAppData) Full() (string, bool) {
	if a.kind == AppDataBoth || a.kind == AppDataFullOnly {
		return a.full, true
	}
	return "", false
}

// Expected returns the declared hash of the Both variant
func (a OrderCreationAppData) Expected() (string, bool) {
	if a.kind == AppDataBoth {
		return a.expected, true
	}
	return "", false
}

// Hash returns the precomputed hash of the HashOnly variant
func (a OrderCreationAppData) Hash() (string, bool) {
	if a.kind == AppDataHashOnly {
		return a.hash, true
	}
	return "", false
}

// IsZero reports whether a equals the default HashOnly("")
func (a OrderCreationAppData) IsZero() bool {
	return a == OrderCreationAppData{}
}

func (a OrderCreationAppData) Equal(other OrderCreationAppData) bool {
	return a == other
}

func (a OrderCreationAppData) String() string {
	switch a.kind {
	case AppDataBoth:
		return fmt.Sprintf("Both{full: %q, expected: %q}", a.full, a.expected)
	case AppDataFullOnly:
		return fmt.Sprintf("Full{full: %q}", a.full)
	default:
		return fmt.Sprintf("Hash{hash: %q}", a.hash)
	}
}

// ResolveAppData picks the app data encoding from the flattened fields of a JSON object.
//
// Shapes are tried in order and the first match wins:
//   - appData and appDataHash both present: Both
//   - only appData present: FullOnly
//   - anything else: HashOnly, carrying appDataHash when present
//
// A JSON null counts as absent. Keys other than the two app data keys are ignored.
func ResolveAppData(fields map[string]json.RawMessage) (OrderCreationAppData, error) {
	full, hasFull, err := stringField(fields, FieldAppData)
	if err != nil {
		return OrderCreationAppData{}, err
	}
	hash, hasHash, err := stringField(fields, FieldAppDataHash)
	if err != nil {
		return OrderCreationAppData{}, err
	}

	switch {
	case hasFull && hasHash:
		return NewAppDataBoth(full, hash), nil
	case hasFull:
		return NewAppDataFull(full), nil
	default:
		// hash is "" when appDataHash is absent
		return NewAppDataHash(hash), nil
	}
}

// appDataFields is the wire form of the app data keys
type appDataFields struct {
	AppData     *string `json:"appData,omitempty"`
	AppDataHash *string `json:"appDataHash,omitempty"`
}

func (a OrderCreationAppData) fields() appDataFields {
	switch a.kind {
	case AppDataBoth:
		full, expected := a.full, a.expected
		return appDataFields{AppData: &full, AppDataHash: &expected}
	case AppDataFullOnly:
		full := a.full
		return appDataFields{AppData: &full}
	default:
		if a.hash == "" {
			return appDataFields{}
		}
		hash := a.hash
		return appDataFields{AppDataHash: &hash}
	}
}

// MarshalJSON encodes the app data keys as a standalone object
func (a OrderCreationAppData) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.fields())
}

// UnmarshalJSON decodes a standalone object holding only app data keys.
// Unknown keys are rejected.
func (a *OrderCreationAppData) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}
	for key := range fields {
		if key != FieldAppData && key != FieldAppDataHash {
			return malformed("unknown field %q", key)
		}
	}
	resolved, err := ResolveAppData(fields)
	if err != nil {
		return err
	}
	*a = resolved
	return nil
}

func stringField(fields map[string]json.RawMessage, key string) (string, bool, error) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return "", false, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false, &MalformedAppDataError{Message: fmt.Sprintf("field %q must be a string", key), Err: err}
	}
	return s, true, nil
}

func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, malformed("expected a JSON object")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, &MalformedAppDataError{Message: "decode object", Err: err}
	}
	return fields, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
