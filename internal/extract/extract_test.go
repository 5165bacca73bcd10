package extract

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/pattern"
)

func groupsFor(t *testing.T, expr, text string) []string {
	t.Helper()
	re := regexp.MustCompile(expr)
	m := re.FindStringSubmatch(text)
	require.NotNil(t, m, "expression %q must match %q", expr, text)
	return m
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		captured string
		want     string
		wantOK   bool
	}{
		{name: "plain decimal", captured: "50.00", want: "50", wantOK: true},
		{name: "thousands separators", captured: "1,234.50", want: "1234.5", wantOK: true},
		{name: "indian grouping", captured: "1,00,000.00", want: "100000", wantOK: true},
		{name: "currency prefix", captured: "Rs. 1,234.50", want: "1234.5", wantOK: true},
		{name: "inr token", captured: "INR 232.42", want: "232.42", wantOK: true},
		{name: "rupee sign", captured: "₹1,00,000.00", want: "100000", wantOK: true},
		{name: "all fractional digits kept", captured: "1234.567", want: "1234.567", wantOK: true},
		{name: "garbage", captured: "abc", wantOK: false},
		{name: "empty after stripping", captured: "Rs.", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := []string{"", tt.captured}
			got, ok := Amount(groups, pattern.CaptureGroup(1))
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				want, err := decimal.NewFromString(tt.want)
				require.NoError(t, err)
				assert.True(t, got.Equal(want), "got %s want %s", got, want)
			}
		})
	}
}

func TestAmountExactness(t *testing.T) {
	groups := []string{"", "Rs 1,234.50"}
	got, ok := Amount(groups, pattern.CaptureGroup(1))
	require.True(t, ok)
	// Exact decimal, not a rounded binary float.
	assert.Equal(t, "1234.50", got.StringFixed(2))
	assert.True(t, got.Mul(decimal.NewFromInt(100)).Equal(decimal.NewFromInt(123450)))
}

func TestAmountAbsent(t *testing.T) {
	_, ok := Amount([]string{"whole match"}, pattern.Absent)
	assert.False(t, ok)
}

func TestMerchantCaptured(t *testing.T) {
	got := Merchant([]string{"", "  LANKADA NAGAMANI  "}, pattern.CaptureGroup(1), "")
	assert.Equal(t, "LANKADA NAGAMANI", got)
}

func TestMerchantHeuristic(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "at-on shape",
			text: "Spent Rs.500 at BIG BAZAAR on 18-10-25",
			want: "BIG BAZAAR",
		},
		{
			name: "to-on shape",
			text: "Rs.50 sent to RAMESH KIRANA on 18-10-25",
			want: "RAMESH KIRANA",
		},
		{
			name: "upi handle stripped",
			text: "Rs.50 sent to ramesh.kirana@okhdfcbank on 18-10-25",
			want: FallbackMerchantName,
		},
		{
			name: "paid-to shape",
			text: "You have paid to SANGEETHA MOBILES",
			want: "SANGEETHA MOBILES",
		},
		{
			name: "nothing recoverable",
			text: "completely unrelated text",
			want: FallbackMerchantName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merchant([]string{tt.text}, pattern.Heuristic(), tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMerchantAbsent(t *testing.T) {
	got := Merchant([]string{"whatever"}, pattern.Absent, "whatever")
	assert.Equal(t, FallbackMerchantName, got)
}

func TestReference(t *testing.T) {
	t.Run("captured", func(t *testing.T) {
		got, ok := Reference([]string{"", "415806086780"}, pattern.CaptureGroup(1))
		assert.True(t, ok)
		assert.Equal(t, "415806086780", got)
	})

	t.Run("synthesized ids are fresh and unique", func(t *testing.T) {
		a, ok := Reference([]string{""}, pattern.Synthesize())
		require.True(t, ok)
		b, ok := Reference([]string{""}, pattern.Synthesize())
		require.True(t, ok)
		assert.NotEmpty(t, a)
		assert.NotEqual(t, a, b)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := Reference([]string{""}, pattern.Absent)
		assert.False(t, ok)
	})
}

func TestAccountNumber(t *testing.T) {
	tests := []struct {
		name     string
		captured string
		want     string
		wantOK   bool
	}{
		{name: "masked upper", captured: "XX750", want: "750", wantOK: true},
		{name: "masked lower", captured: "xx0450", want: "0450", wantOK: true},
		{name: "mixed mask", captured: "XxX8696", want: "8696", wantOK: true},
		{name: "unmasked", captured: "8696", want: "8696", wantOK: true},
		{name: "only mask", captured: "XXXX", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AccountNumber([]string{"", tt.captured}, pattern.CaptureGroup(1))
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDate(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		captured string
		want     time.Time
	}{
		{
			name:     "dd-MMM-yy",
			captured: "18-Oct-25",
			want:     time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "dd/MM/yy",
			captured: "01/09/25",
			want:     time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "dd-MM-yy at start of day",
			captured: "22-08-25",
			want:     time.Date(2025, 8, 22, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "iso local date-time",
			captured: "2025-08-30T20:41:47",
			want:     time.Date(2025, 8, 30, 20, 41, 47, 0, time.UTC),
		},
		{
			name:     "sbi compact",
			captured: "18Oct25",
			want:     time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "unparseable falls back to now",
			captured: "sometime last week",
			want:     now,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Date([]string{"", tt.captured}, pattern.CaptureGroup(1), now)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}

	t.Run("absent group falls back to now", func(t *testing.T) {
		got := Date([]string{"text"}, pattern.Absent, now)
		assert.True(t, got.Equal(now))
	})
}

func TestBankName(t *testing.T) {
	got, ok := BankName([]string{"", " HDFC Bank "}, pattern.CaptureGroup(1))
	assert.True(t, ok)
	assert.Equal(t, "HDFC Bank", got)

	_, ok = BankName([]string{"text"}, pattern.Absent)
	assert.False(t, ok)
}

func TestCapturedOutOfRange(t *testing.T) {
	// A capture reference past the group list must degrade, not panic.
	groups := groupsFor(t, `(\d+)`, "abc 123")
	_, ok := Amount(groups, pattern.CaptureGroup(1))
	assert.True(t, ok)
	_, ok = Reference(groups, pattern.CaptureGroup(5))
	assert.False(t, ok)
}
