package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestToAmount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{name: "decimal value", in: decimal.NewFromFloat(42.5), want: 42.5},
		{name: "decimal pointer", in: decimalPtr(42.5), want: 42.5},
		{name: "nil decimal pointer", in: (*decimal.Decimal)(nil), want: 0},
		{name: "numeric string", in: "42.50", want: 42.5},
		{name: "numeric string with spaces", in: "  42.50 ", want: 42.5},
		{name: "plain float", in: 42.5, want: 42.5},
		{name: "int", in: 42, want: 42},
		{name: "json number", in: json.Number("42.50"), want: 42.5},
		{name: "unparseable string", in: "abc", want: 0},
		{name: "empty string", in: "", want: 0},
		{name: "nil", in: nil, want: 0},
		{name: "unsupported type", in: struct{}{}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToAmount(tt.in); got != tt.want {
				t.Fatalf("ToAmount(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func decimalPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}
