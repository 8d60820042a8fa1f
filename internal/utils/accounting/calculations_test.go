package accounting_test

import (
	"testing"

	"github.com/aminfam/family_wallet_app/internal/core/domain"
	"github.com/aminfam/family_wallet_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		name      string
		kind      domain.Kind
		magnitude string
		want      string
	}{
		{name: "expense forced negative", kind: domain.KindExpense, magnitude: "50", want: "-50"},
		{name: "expense ignores negative input", kind: domain.KindExpense, magnitude: "-50", want: "-50"},
		{name: "income forced positive", kind: domain.KindIncome, magnitude: "-1000", want: "1000"},
		{name: "lend is an outflow", kind: domain.KindLend, magnitude: "30", want: "-30"},
		{name: "repay_in is an inflow", kind: domain.KindRepayIn, magnitude: "-20", want: "20"},
		{name: "borrow is an inflow", kind: domain.KindBorrow, magnitude: "40", want: "40"},
		{name: "repay_out is an outflow", kind: domain.KindRepayOut, magnitude: "40", want: "-40"},
		{name: "transfer_out is an outflow", kind: domain.KindTransferOut, magnitude: "200", want: "-200"},
		{name: "transfer_in is an inflow", kind: domain.KindTransferIn, magnitude: "200", want: "200"},
		{name: "zero stays zero", kind: domain.KindExpense, magnitude: "0", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			magnitude, err := decimal.NewFromString(tt.magnitude)
			require.NoError(t, err)
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)

			got, err := accounting.SignedAmount(tt.kind, magnitude)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "SignedAmount(%s, %s) = %s, want %s", tt.kind, tt.magnitude, got, want)
		})
	}
}

func TestSignedAmount_UnknownKind(t *testing.T) {
	_, err := accounting.SignedAmount(domain.Kind("donation"), decimal.NewFromInt(10))
	assert.Error(t, err)
}

func TestDebtDeltas(t *testing.T) {
	entries := []domain.Entry{
		{Kind: domain.KindLend, Amount: decimal.NewFromInt(-50)},
		{Kind: domain.KindRepayIn, Amount: decimal.NewFromInt(20)},
		{Kind: domain.KindBorrow, Amount: decimal.NewFromInt(40)},
		{Kind: domain.KindRepayOut, Amount: decimal.NewFromInt(-40)},
		{Kind: domain.KindExpense, Amount: decimal.NewFromInt(-99)},
		{Kind: domain.KindTransferOut, Amount: decimal.NewFromInt(-10)},
	}

	assets := decimal.Zero
	liabilities := decimal.Zero
	for _, e := range entries {
		assets = assets.Add(accounting.DebtAssetDelta(e))
		liabilities = liabilities.Add(accounting.DebtLiabilityDelta(e))
	}

	assert.True(t, assets.Equal(decimal.NewFromInt(30)), "assets = %s", assets)
	assert.True(t, liabilities.IsZero(), "liabilities = %s", liabilities)
}
