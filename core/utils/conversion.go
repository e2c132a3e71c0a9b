package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt64 converts a loosely typed request value to int64. Ids arrive as
// JSON numbers, json.Number or strings such as " 12" or "3.0". Fractions are
// truncated; anything unparseable is 0.
func ToInt64(val any) int64 {
	switch v := val.(type) {
	case nil:
		return 0
	case int:
		return int64(v)
	case int64:
		return v
	case int32:
		return int64(v)
	case int16:
		return int64(v)
	case int8:
		return int64(v)
	case uint:
		return int64(v)
	case uint64:
		return int64(v)
	case uint32:
		return int64(v)
	case uint16:
		return int64(v)
	case uint8:
		return int64(v)
	case float64:
		return truncate(v)
	case float32:
		return truncate(float64(v))
	case json.Number:
		return parseInt64(v.String())
	case string:
		return parseInt64(v)
	case []byte:
		return parseInt64(string(v))
	default:
		return parseInt64(fmt.Sprintf("%v", v))
	}
}

// ToInt is ToInt64 for positions and other small values.
func ToInt(val any) int {
	return int(ToInt64(val))
}

// ToString converts a request value to string. nil becomes "".
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts a request flag to bool. Numbers are true when equal to 1,
// strings when "1" or "true" in any case.
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case string:
		return isTrue(v)
	case []byte:
		return isTrue(string(v))
	case json.Number:
		return ToInt64(v) == 1
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8, float64, float32:
		return ToInt64(v) == 1
	default:
		return false
	}
}

func parseInt64(s string) int64 {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return truncate(f)
	}
	return 0
}

func truncate(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int64(f)
}

func isTrue(s string) bool {
	s = strings.TrimSpace(s)
	return s == "1" || strings.EqualFold(s, "true")
}
