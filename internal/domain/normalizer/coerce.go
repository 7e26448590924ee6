package normalizer

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/fng-app/fng-sales-api/internal/domain/entity"
)

// timeLayouts are tried in order for string timestamps. RFC3339 also accepts a
// fractional second, which covers JavaScript's toISOString output.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// String renders v as trimmed text. Nil and unsupported values give "".
func String(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case fmt.Stringer:
		return strings.TrimSpace(t.String())
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int, int32, int64, uint, uint32, uint64:
		return fmt.Sprint(t)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// Float coerces v to a finite number. Strings are parsed; ok is false when v
// holds nothing usable, in which case the returned value is 0.
func Float(v interface{}) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint:
		f = float64(t)
	case uint32:
		f = float64(t)
	case uint64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Int coerces v to an integer, truncating any fraction. ok is false when v is
// not a number or is not a whole number.
func Int(v interface{}) (int, bool) {
	f, ok := Float(v)
	if !ok {
		return 0, false
	}
	whole := math.Trunc(f)
	return int(whole), whole == f
}

// Time coerces v to a UTC instant. Numbers, including numeric strings, are read
// as milliseconds since the Unix epoch.
func Time(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return time.Time{}, false
		}
		return t.UTC(), true
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, false
		}
		return t.UTC(), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed.UTC(), true
			}
		}
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.UnixMilli(ms).UTC(), true
		}
		return time.Time{}, false
	}
	if ms, ok := Float(v); ok && ms > 0 {
		return time.UnixMilli(int64(ms)).UTC(), true
	}
	return time.Time{}, false
}

// Sub returns the nested record under key, or nil.
func Sub(r entity.Record, key string) entity.Record {
	return AsRecord(r[key])
}

// AsRecord returns v as a record when it is an object, or nil.
func AsRecord(v interface{}) entity.Record {
	switch t := v.(type) {
	case entity.Record:
		return t
	case map[string]interface{}:
		return entity.Record(t)
	}
	return nil
}

func listOf(v interface{}) []entity.Record {
	var out []entity.Record
	switch t := v.(type) {
	case []interface{}:
		for _, e := range t {
			if r := AsRecord(e); r != nil {
				out = append(out, r)
			}
		}
	case []entity.Record:
		out = append(out, t...)
	case []map[string]interface{}:
		for _, e := range t {
			out = append(out, entity.Record(e))
		}
	}
	return out
}

// firstString returns the first non-empty string found under keys
func firstString(r entity.Record, keys ...string) string {
	for _, k := range keys {
		if s := String(r[k]); s != "" {
			return s
		}
	}
	return ""
}

func firstFloat(r entity.Record, keys ...string) float64 {
	for _, k := range keys {
		if f, ok := Float(r[k]); ok {
			return f
		}
	}
	return 0
}

func firstTime(r entity.Record, keys ...string) time.Time {
	for _, k := range keys {
		if t, ok := Time(r[k]); ok {
			return t
		}
	}
	return time.Time{}
}
