package categories_test

import (
	"testing"

	"github.com/aminfam/family_wallet_app/internal/utils/categories"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty defaults to general", raw: "", want: "general"},
		{name: "whitespace only defaults to general", raw: "   ", want: "general"},
		{name: "canonical name maps to itself", raw: "food", want: "food"},
		{name: "case insensitive", raw: "FOOD", want: "food"},
		{name: "surrounding whitespace trimmed", raw: "  Food ", want: "food"},
		{name: "substring match", raw: "grocery shopping at the market", want: "food"},
		{name: "arabic food label", raw: "مطعم", want: "food"},
		{name: "arabic transport label", raw: "بنزين", want: "transport"},
		{name: "arabic transfer label", raw: "تحويل بنكي", want: "transfers"},
		{name: "arabic salary label", raw: "راتب الشهر", want: "work"},
		{name: "transfer wins over embedded words", raw: "transfer to savings", want: "transfers"},
		{name: "repayment maps to debt", raw: "repayment", want: "debt"},
		{name: "utilities fragment", raw: "electricity bill", want: "utilities"},
		{name: "unknown label passes through lowercased", raw: "Subscriptions", want: "subscriptions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, categories.Normalize(tt.raw))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := append(categories.All(), "مطعم", "grocery run", "Subscriptions", "", "  transfer  ")
	for _, raw := range inputs {
		once := categories.Normalize(raw)
		assert.Equal(t, once, categories.Normalize(once), "normalizing %q twice changed the result", raw)
	}
}

func TestAll_CoversEveryCanonicalName(t *testing.T) {
	all := categories.All()
	assert.Len(t, all, 10)
	for _, name := range all {
		assert.Equal(t, name, categories.Normalize(name))
	}
}
