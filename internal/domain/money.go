package domain

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ToAmount coerces a decimal-like value to a plain float64. Sources disagree
// about how money travels: NUMERIC columns scan as decimal.Decimal, gateway
// metadata carries JSON numbers or strings, older rows plain floats. An
// unparseable value means "unknown amount" and normalizes to 0 — money
// coercion must never abort a lookup.
func ToAmount(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case decimal.Decimal:
		f, _ := x.Float64()
		return f
	case *decimal.Decimal:
		if x == nil {
			return 0
		}
		f, _ := x.Float64()
		return f
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
