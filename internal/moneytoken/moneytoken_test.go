package moneytoken

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		span string
		want []struct {
			raw      string
			value    string
			negative bool
		}
	}{
		{
			name: "plain amount",
			span: "DEPOSIT 100.00",
			want: []struct {
				raw      string
				value    string
				negative bool
			}{
				{"100.00", "100.00", false},
			},
		},
		{
			name: "thousands separators",
			span: "STORE 1,234.56 9,876.54",
			want: []struct {
				raw      string
				value    string
				negative bool
			}{
				{"1,234.56", "1234.56", false},
				{"9,876.54", "9876.54", false},
			},
		},
		{
			name: "trailing minus",
			span: "FEE 271.84-",
			want: []struct {
				raw      string
				value    string
				negative bool
			}{
				{"271.84-", "271.84", true},
			},
		},
		{
			name: "mixed signs keep source order",
			span: "CHECK 25.00- then 1,000,000.00",
			want: []struct {
				raw      string
				value    string
				negative bool
			}{
				{"25.00-", "25.00", true},
				{"1,000,000.00", "1000000.00", false},
			},
		},
		{
			name: "integers and one-decimal numbers are not tokens",
			span: "CHECK #102 ref 5551212 rate 3.5",
			want: nil,
		},
		{
			name: "empty span",
			span: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Extract(tt.span)
			require.Len(t, tokens, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want.raw, tokens[i].Raw)
				assert.True(t, tokens[i].Magnitude.Equal(decimal.RequireFromString(want.value)),
					"magnitude %s != %s", tokens[i].Magnitude, want.value)
				assert.Equal(t, want.negative, tokens[i].Negative)
			}
		})
	}
}

func TestExtractMagnitudeNeverNegative(t *testing.T) {
	for _, token := range Extract("150.25- 3,000.00- 12.00") {
		assert.False(t, token.Magnitude.IsNegative())
	}
}

func TestSigned(t *testing.T) {
	tokens := Extract("42.50-")
	require.Len(t, tokens, 1)
	assert.True(t, tokens[0].Signed().Equal(decimal.RequireFromString("-42.50")))

	tokens = Extract("42.50")
	require.Len(t, tokens, 1)
	assert.True(t, tokens[0].Signed().Equal(decimal.RequireFromString("42.50")))
}

func TestContainsDigit(t *testing.T) {
	assert.True(t, ContainsDigit("CHECK #102"))
	assert.False(t, ContainsDigit("TRANSFER TO SAVINGS"))
	assert.False(t, ContainsDigit(""))
}
