package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindSigns(t *testing.T) {
	cases := []struct {
		kind Kind
		sign int
	}{
		{KindExpense, -1},
		{KindIncome, +1},
		{KindTransfer, 0},
		{KindCardUsage, 0},
		{KindCardPayment, -1},
		{KindCarryOver, +1},
		{KindBalance, +1},
	}
	for _, c := range cases {
		assert.Equal(t, c.sign, c.kind.Info().CashflowSign, "kind %s", c.kind)
	}
}

func TestOnlyCardUsageAffectsCreditUsage(t *testing.T) {
	for _, k := range Kinds() {
		if k == KindCardUsage {
			assert.True(t, k.Info().AffectsCreditUsage)
		} else {
			assert.False(t, k.Info().AffectsCreditUsage, "kind %s", k)
		}
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("cardPayment")
	require.NoError(t, err)
	assert.Equal(t, KindCardPayment, k)

	_, err = ParseKind("loan")
	require.Error(t, err)
}

func TestKindsCoversTable(t *testing.T) {
	ks := Kinds()
	require.Len(t, ks, len(kindTable))
	for _, k := range ks {
		assert.True(t, k.Valid())
	}
}
