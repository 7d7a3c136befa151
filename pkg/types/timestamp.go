package types

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Timestamp is a tolerant point in time. Marketplace records were written by
// several clients over the years, so dates arrive as BSON dates, ISO strings,
// bare calendar dates or epoch milliseconds. Anything that cannot be read
// leaves Valid false instead of failing the whole decode.
type Timestamp struct {
	Time  time.Time
	Valid bool
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	time.RFC1123Z,
	time.RFC1123,
}

// NewTimestamp wraps t as a valid UTC timestamp.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC(), Valid: true}
}

// ParseTimestamp reads value with the accepted layouts. The bool is false when
// nothing matched.
func ParseTimestamp(value string) (Timestamp, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Timestamp{}, false
	}
	// Date.prototype.toString appends a zone name in parentheses.
	if idx := strings.Index(trimmed, " ("); idx > 0 {
		trimmed = trimmed[:idx]
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return NewTimestamp(parsed), true
		}
	}
	return Timestamp{}, false
}

// Ptr returns the time as a pointer, nil when invalid.
func (t Timestamp) Ptr() *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (t *Timestamp) UnmarshalBSONValue(kind bsontype.Type, data []byte) error {
	*t = Timestamp{}
	raw := bson.RawValue{Type: kind, Value: data}
	switch kind {
	case bsontype.DateTime:
		if ms, ok := raw.DateTimeOK(); ok {
			*t = NewTimestamp(time.UnixMilli(ms))
		}
	case bsontype.String:
		if s, ok := raw.StringValueOK(); ok {
			*t, _ = ParseTimestamp(s)
		}
	case bsontype.Timestamp:
		if secs, _, ok := raw.TimestampOK(); ok {
			*t = NewTimestamp(time.Unix(int64(secs), 0))
		}
	case bsontype.Int64:
		if ms, ok := raw.Int64OK(); ok {
			*t = NewTimestamp(time.UnixMilli(ms))
		}
	case bsontype.Double:
		if ms, ok := raw.DoubleOK(); ok {
			*t = NewTimestamp(time.UnixMilli(int64(ms)))
		}
	}
	return nil
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (t Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !t.Valid {
		return bsontype.Null, nil, nil
	}
	return bson.MarshalValue(t.Time.UTC())
}

// IsZero reports whether the timestamp is unset, so omitempty drops it.
func (t Timestamp) IsZero() bool {
	return !t.Valid
}

// Scan implements sql.Scanner.
func (t *Timestamp) Scan(src any) error {
	*t = Timestamp{}
	switch v := src.(type) {
	case nil:
		return nil
	case time.Time:
		*t = NewTimestamp(v)
	case string:
		*t, _ = ParseTimestamp(v)
	case []byte:
		*t, _ = ParseTimestamp(string(v))
	default:
		return fmt.Errorf("timestamp: unsupported scan type %T", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (t Timestamp) Value() (driver.Value, error) {
	if !t.Valid {
		return nil, nil
	}
	return t.Time.UTC(), nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.UTC().Format(time.RFC3339Nano))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	*t = Timestamp{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		var ms int64
		if numErr := json.Unmarshal(trimmed, &ms); numErr != nil {
			return err
		}
		*t = NewTimestamp(time.UnixMilli(ms))
		return nil
	}
	*t, _ = ParseTimestamp(s)
	return nil
}
