package resource

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Envelope is the wire representation of one entity instance:
// {"id": ..., "type": ..., "attributes": {...}}. Attributes marshal in schema
// declaration order so responses are byte-stable.
type Envelope struct {
	ID     uint
	Type   string
	schema *Schema
	attrs  map[string]any
}

// Encode builds the wire envelope for an entity, translating attribute names
// back to their dash-case wire form.
func Encode(sc *Schema, e Entity) Envelope {
	return Envelope{ID: e.ID, Type: sc.TypeTag, schema: sc, attrs: e.Attrs}
}

// EncodeAll builds an array of envelopes. It never returns nil, so an empty
// collection marshals as [] rather than null.
func EncodeAll(sc *Schema, es []Entity) []Envelope {
	out := make([]Envelope, 0, len(es))
	for _, e := range es {
		out = append(out, Encode(sc, e))
	}
	return out
}

// MarshalJSON writes the envelope with attributes in schema order.
func (env Envelope) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"id":`)
	buf.WriteString(strconv.FormatUint(uint64(env.ID), 10))
	buf.WriteString(`,"type":`)
	typeTag, err := json.Marshal(env.Type)
	if err != nil {
		return nil, err
	}
	buf.Write(typeTag)
	buf.WriteString(`,"attributes":{`)

	for i, attr := range env.schema.Attributes {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ToWireName(attr.Name))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(wireValue(env.attrs[attr.Name]))
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}

	buf.WriteString("}}")
	return buf.Bytes(), nil
}

// wireValue renders coerced attribute values in their wire form. Timestamps
// print as "2006-01-02 15:04:05" with a six-digit fraction when the instant
// has sub-second precision, so a created resource echoes the timestamp it was
// given.
func wireValue(v any) any {
	switch t := v.(type) {
	case time.Time:
		return formatTimestamp(t)
	case *time.Time:
		if t == nil {
			return nil
		}
		return formatTimestamp(*t)
	case *uint:
		if t == nil {
			return nil
		}
		return *t
	default:
		return v
	}
}

func formatTimestamp(t time.Time) string {
	base := t.Format(timeLayout)
	if micro := t.Nanosecond() / 1000; micro != 0 {
		return fmt.Sprintf("%s.%06d", base, micro)
	}
	return base
}
