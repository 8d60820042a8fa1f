package accounting

import (
	"fmt"

	"github.com/aminfam/family_wallet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the ledger sign convention for a stored kind to a
// magnitude. Outflow kinds (expense, lend, repay_out, transfer_out) are forced
// negative; inflow kinds (income, repay_in, borrow, transfer_in) are forced
// positive. The input sign is ignored: classifiers are inconsistent about it.
// This is used by the recorder at write time and must never be re-applied to
// stored amounts, which already carry their sign.
func SignedAmount(kind domain.Kind, magnitude decimal.Decimal) (decimal.Decimal, error) {
	abs := magnitude.Abs()
	switch kind {
	case domain.KindExpense, domain.KindLend, domain.KindRepayOut, domain.KindTransferOut:
		return abs.Neg(), nil
	case domain.KindIncome, domain.KindRepayIn, domain.KindBorrow, domain.KindTransferIn:
		return abs, nil
	default:
		return decimal.Zero, fmt.Errorf("unknown entry kind %q", kind)
	}
}

// DebtAssetDelta returns the contribution of an entry to money owed TO the
// owner: lends increase it, inbound repayments decrease it, every other kind
// leaves it untouched.
func DebtAssetDelta(e domain.Entry) decimal.Decimal {
	switch e.Kind {
	case domain.KindLend:
		return e.Amount.Abs()
	case domain.KindRepayIn:
		return e.Amount.Abs().Neg()
	default:
		return decimal.Zero
	}
}

// DebtLiabilityDelta returns the contribution of an entry to money owed BY the
// owner: borrows increase it, outbound repayments decrease it.
func DebtLiabilityDelta(e domain.Entry) decimal.Decimal {
	switch e.Kind {
	case domain.KindBorrow:
		return e.Amount.Abs()
	case domain.KindRepayOut:
		return e.Amount.Abs().Neg()
	default:
		return decimal.Zero
	}
}
