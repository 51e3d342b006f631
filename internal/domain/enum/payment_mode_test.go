package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMode_String(t *testing.T) {
	assert.Equal(t, "Cash", PaymentModeCash.String())
	assert.Equal(t, "Card", PaymentModeCard.String())
	assert.Equal(t, "Mobile", PaymentModeMobile.String())
	assert.Equal(t, "Cash", PaymentMode(99).String())
}

func TestParsePaymentMode(t *testing.T) {
	mode, err := ParsePaymentMode("Card")
	require.NoError(t, err)
	assert.Equal(t, PaymentModeCard, mode)

	_, err = ParsePaymentMode("Cheque")
	assert.Error(t, err)
}

func TestPaymentMode_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(PaymentModeMobile)
	require.NoError(t, err)
	assert.Equal(t, `"Mobile"`, string(data))

	var mode PaymentMode
	require.NoError(t, json.Unmarshal([]byte(`"Card"`), &mode))
	assert.Equal(t, PaymentModeCard, mode)

	// Numeric form is accepted for stored rows.
	require.NoError(t, json.Unmarshal([]byte(`2`), &mode))
	assert.Equal(t, PaymentModeMobile, mode)
}

func TestRateKind_Parse(t *testing.T) {
	for name, want := range map[string]RateKind{
		"discount": RateKindDiscount,
		"vat":      RateKindVat,
		"sd":       RateKindSd,
	} {
		kind, err := ParseRateKind(name)
		require.NoError(t, err)
		assert.Equal(t, want, kind)
	}

	_, err := ParseRateKind("tip")
	assert.Error(t, err)
}
