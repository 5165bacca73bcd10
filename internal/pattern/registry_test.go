package pattern

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/model"
)

func testPattern(id, issuer string, confidence float64) TransactionPattern {
	return TransactionPattern{
		ID:             id,
		Issuer:         issuer,
		Regexp:         regexp.MustCompile(`(\d+)`),
		Amount:         CaptureGroup(1),
		BaseConfidence: confidence,
	}
}

func receiptPattern(id, issuer string, confidence float64) TransactionPattern {
	p := testPattern(id, issuer, confidence)
	p.Receipt = true
	return p
}

func TestNewRegistryValidates(t *testing.T) {
	tests := []struct {
		name    string
		pattern TransactionPattern
		wantErr bool
	}{
		{
			name:    "valid",
			pattern: testPattern("ok_v1", IssuerUPI, 0.8),
		},
		{
			name: "group index beyond capture count",
			pattern: TransactionPattern{
				ID:             "bad_group_v1",
				Issuer:         IssuerUPI,
				Regexp:         regexp.MustCompile(`(\d+)`),
				Amount:         CaptureGroup(3),
				BaseConfidence: 0.8,
			},
			wantErr: true,
		},
		{
			name:    "zero confidence",
			pattern: testPattern("zero_conf_v1", IssuerUPI, 0),
			wantErr: true,
		},
		{
			name:    "confidence above one",
			pattern: testPattern("high_conf_v1", IssuerUPI, 1.5),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry([]TransactionPattern{tt.pattern})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCandidatesBankTierBeforeGeneric(t *testing.T) {
	reg, err := NewRegistry([]TransactionPattern{
		testPattern("upi_a_v1", IssuerUPI, 0.99),
		testPattern("hdfc_a_v1", IssuerHDFC, 0.70),
	})
	require.NoError(t, err)

	got := reg.Candidates("VM-HDFCBK", model.ChannelNone)
	require.Len(t, got, 2)
	// Bank-specific patterns come first even with a lower prior.
	assert.Equal(t, "hdfc_a_v1", got[0].ID)
	assert.Equal(t, "upi_a_v1", got[1].ID)
}

func TestCandidatesSortedByConfidenceWithinTier(t *testing.T) {
	reg, err := NewRegistry([]TransactionPattern{
		testPattern("hdfc_low_v1", IssuerHDFC, 0.70),
		testPattern("hdfc_high_v1", IssuerHDFC, 0.95),
		testPattern("hdfc_mid_v1", IssuerHDFC, 0.80),
	})
	require.NoError(t, err)

	got := reg.Candidates("HDFC-Bank", model.ChannelNone)
	require.Len(t, got, 3)
	assert.Equal(t, "hdfc_high_v1", got[0].ID)
	assert.Equal(t, "hdfc_mid_v1", got[1].ID)
	assert.Equal(t, "hdfc_low_v1", got[2].ID)
}

func TestCandidatesEqualConfidenceKeepsCatalogOrder(t *testing.T) {
	reg, err := NewRegistry([]TransactionPattern{
		testPattern("first_v1", IssuerUPI, 0.85),
		testPattern("second_v1", IssuerUPI, 0.85),
	})
	require.NoError(t, err)

	got := reg.Candidates("unknown-sender", model.ChannelNone)
	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, "first_v1", got[0].ID)
	assert.Equal(t, "second_v1", got[1].ID)
}

func TestCandidatesSenderCaseInsensitive(t *testing.T) {
	reg, err := NewRegistry([]TransactionPattern{
		testPattern("icici_a_v1", IssuerICICI, 0.9),
		testPattern("upi_a_v1", IssuerUPI, 0.8),
	})
	require.NoError(t, err)

	got := reg.Candidates("ad-icicib", model.ChannelNone)
	require.NotEmpty(t, got)
	assert.Equal(t, "icici_a_v1", got[0].ID)
}

func TestCandidatesAppTier(t *testing.T) {
	reg, err := NewRegistry([]TransactionPattern{
		testPattern("gpay_a_v1", IssuerGPay, 0.9),
		testPattern("upi_a_v1", IssuerUPI, 0.8),
		testPattern("atm_a_v1", IssuerATM, 0.9),
	})
	require.NoError(t, err)

	got := reg.Candidates("VM-NOTIFY", model.ChannelGPay)
	require.Len(t, got, 1)
	assert.Equal(t, "gpay_a_v1", got[0].ID)
}

func TestCandidatesAppWithoutPatternsFallsBackToUPI(t *testing.T) {
	reg, err := NewRegistry([]TransactionPattern{
		testPattern("upi_a_v1", IssuerUPI, 0.8),
	})
	require.NoError(t, err)

	got := reg.Candidates("VM-NOTIFY", model.ChannelPhonePe)
	require.Len(t, got, 1)
	assert.Equal(t, "upi_a_v1", got[0].ID)
}

func TestCandidatesDefaultTier(t *testing.T) {
	reg, err := NewRegistry([]TransactionPattern{
		testPattern("hdfc_a_v1", IssuerHDFC, 0.95),
		testPattern("upi_a_v1", IssuerUPI, 0.8),
		testPattern("atm_a_v1", IssuerATM, 0.9),
	})
	require.NoError(t, err)

	got := reg.Candidates("AX-UNKNWN", model.ChannelNone)
	require.Len(t, got, 2)
	assert.Equal(t, "upi_a_v1", got[0].ID)
	assert.Equal(t, "atm_a_v1", got[1].ID)
}

func TestChannelCandidates(t *testing.T) {
	reg, err := NewRegistry([]TransactionPattern{
		receiptPattern("gpay_a_v1", IssuerGPay, 0.9),
		testPattern("upi_a_v1", IssuerUPI, 0.8),
	})
	require.NoError(t, err)

	got := reg.ChannelCandidates(model.ChannelGPay)
	require.Len(t, got, 1)
	assert.Equal(t, "gpay_a_v1", got[0].ID)

	// No generic fallback for receipts.
	assert.Empty(t, reg.ChannelCandidates(model.ChannelPhonePe))
	assert.Empty(t, reg.ChannelCandidates(model.ChannelNone))
}

func TestChannelCandidatesExcludeMessagePatterns(t *testing.T) {
	reg, err := NewRegistry([]TransactionPattern{
		testPattern("gpay_sms_v1", IssuerGPay, 0.9),
	})
	require.NoError(t, err)

	assert.Empty(t, reg.ChannelCandidates(model.ChannelGPay))
}

func TestCandidatesAppTierExcludesReceiptPatterns(t *testing.T) {
	// An app tier holding only receipt shapes must fall through to the
	// generic UPI tier for message text.
	reg, err := NewRegistry([]TransactionPattern{
		receiptPattern("paytm_receipt_a_v1", IssuerPaytm, 0.9),
		testPattern("upi_a_v1", IssuerUPI, 0.8),
	})
	require.NoError(t, err)

	got := reg.Candidates("VM-NOTIFY", model.ChannelPaytm)
	require.Len(t, got, 1)
	assert.Equal(t, "upi_a_v1", got[0].ID)
}

func TestCatalogIsValid(t *testing.T) {
	reg, err := NewDefaultRegistry()
	require.NoError(t, err)
	assert.Equal(t, len(Catalog()), reg.Len())

	seen := make(map[string]bool)
	for _, p := range Catalog() {
		assert.False(t, seen[p.ID], "duplicate pattern id %s", p.ID)
		seen[p.ID] = true
		assert.NoError(t, p.Validate())
	}
}
