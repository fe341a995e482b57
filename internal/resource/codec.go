package resource

import (
	"encoding/json"
	"errors"
	"math"
	"time"
)

// Timestamp formats accepted on the wire, tried in order.
const (
	timeLayout      = "2006-01-02 15:04:05"
	timeLayoutMicro = "2006-01-02 15:04:05.999999"
)

// Mode selects the identity rules Decode applies.
type Mode int

const (
	// ModeCreate decodes a payload for a new resource; no id is expected.
	ModeCreate Mode = iota
	// ModeUpdate decodes a payload against an existing resource; the payload
	// must claim the same id and type.
	ModeUpdate
)

type envelopeDoc struct {
	ID         *int64                     `json:"id"`
	Type       *string                    `json:"type"`
	Attributes map[string]json.RawMessage `json:"attributes"`
}

// Decode parses raw into a map of domain attribute name to coerced value,
// validating it against the schema. Reference attributes are resolved against
// st; a reference that does not point at a live row is rejected. Decode never
// writes to the store.
//
// Attribute keys the schema does not declare are silently dropped, so newer
// clients can send attributes an older server does not know about.
func Decode(raw []byte, sc *Schema, st Store, mode Mode, existingID uint) (map[string]any, error) {
	var doc envelopeDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, newError(KindMalformedPayload, "", "Not a JSON object")
	}

	if mode == ModeUpdate {
		if doc.ID == nil || *doc.ID != int64(existingID) {
			return nil, newError(KindIdentityMismatch, "", "ID mismatch")
		}
	}

	if doc.Type == nil || *doc.Type != sc.TypeTag {
		return nil, newError(KindTypeMismatch, "", "Type mismatch")
	}

	if doc.Attributes == nil {
		return nil, newError(KindMissingAttributes, "", "Missing 'attributes' property")
	}

	attrs := make(map[string]any, len(doc.Attributes))
	for wireName, rawVal := range doc.Attributes {
		name := ToDomainName(wireName)
		attr, ok := sc.Attr(name)
		if !ok {
			continue
		}

		val, err := coerce(attr, rawVal, st)
		if err != nil {
			return nil, err
		}
		attrs[name] = val
	}

	return attrs, nil
}

func coerce(attr Attribute, raw json.RawMessage, st Store) (any, error) {
	switch attr.Kind {
	case Timestamp:
		return coerceTimestamp(attr, raw)
	case Enum:
		return coerceEnum(attr, raw)
	case Reference:
		return coerceReference(attr, raw, st)
	default:
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, newError(KindMalformedPayload, wire(attr), "'%s' is not a valid JSON value", wire(attr))
		}
		return v, nil
	}
}

func coerceTimestamp(attr Attribute, raw json.RawMessage) (any, error) {
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || (s == nil && !attr.Nullable) {
		return nil, timestampError(attr)
	}
	if s == nil {
		return nil, nil
	}

	if t, err := time.Parse(timeLayout, *s); err == nil {
		return t, nil
	}
	t, err := time.Parse(timeLayoutMicro, *s)
	if err != nil {
		return nil, timestampError(attr)
	}
	return t, nil
}

func timestampError(attr Attribute) error {
	return newError(KindInvalidTimestamp, wire(attr),
		"'%s' should be a date string formatted thus: '%s'", wire(attr), timeLayoutMicro)
}

func coerceEnum(attr Attribute, raw json.RawMessage) (any, error) {
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, enumError(attr)
	}
	if s == nil {
		return nil, nil
	}
	for _, allowed := range attr.Enum {
		if *s == allowed {
			return *s, nil
		}
	}
	return nil, enumError(attr)
}

func enumError(attr Attribute) error {
	return newError(KindInvalidEnumValue, wire(attr),
		"'%s' must be one of %v or null", wire(attr), attr.Enum)
}

func coerceReference(attr Attribute, raw json.RawMessage, st Store) (any, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, newError(KindInvalidReference, wire(attr),
			"'%s' must be set to null or an integer", wire(attr))
	}
	if v == nil {
		return nil, nil
	}

	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || f < 0 {
		return nil, newError(KindInvalidReference, wire(attr),
			"'%s' must be set to null or an integer", wire(attr))
	}
	id := uint(f)

	if _, err := st.Get(attr.Target, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, newError(KindDanglingReference, wire(attr),
				"'%s' must be set to null or to the id of an existing %s", wire(attr), attr.Target)
		}
		return nil, err
	}
	return id, nil
}

func wire(attr Attribute) string {
	return ToWireName(attr.Name)
}
