// Package categories maps free-text category labels, often Arabic, onto the
// canonical category set used throughout the ledger.
package categories

import "strings"

// Canonical category names. The classifier is prompted to use these, but
// normalization is still applied on every write and every read because
// historical entries may predate table updates.
const (
	CategoryGeneral   = "general"
	CategoryFood      = "food"
	CategoryTransport = "transport"
	CategoryUtilities = "utilities"
	CategoryHealth    = "health"
	CategoryShopping  = "shopping"
	CategoryFamily    = "family"
	CategoryWork      = "work"
	CategoryDebt      = "debt"
	CategoryTransfers = "transfers"
)

// rule pairs a lowercase substring pattern with its canonical category.
type rule struct {
	pattern   string
	canonical string
}

// rules is evaluated top to bottom and the first matching pattern wins, so
// more specific patterns must come before broader ones (e.g. "fuel" before
// "food" would not matter, but "repay" before "pay" would). The order below
// is: transfers and debt first since their labels embed other words, then the
// spending categories grouped by domain.
var rules = []rule{
	{"تحويل", CategoryTransfers},
	{"transfer", CategoryTransfers},
	{"دين", CategoryDebt},
	{"سلف", CategoryDebt},
	{"قرض", CategoryDebt},
	{"debt", CategoryDebt},
	{"loan", CategoryDebt},
	{"lend", CategoryDebt},
	{"borrow", CategoryDebt},
	{"repay", CategoryDebt},
	{"أكل", CategoryFood},
	{"اكل", CategoryFood},
	{"طعام", CategoryFood},
	{"غداء", CategoryFood},
	{"عشاء", CategoryFood},
	{"فطور", CategoryFood},
	{"مطعم", CategoryFood},
	{"قهوة", CategoryFood},
	{"food", CategoryFood},
	{"grocer", CategoryFood},
	{"restaurant", CategoryFood},
	{"coffee", CategoryFood},
	{"بنزين", CategoryTransport},
	{"وقود", CategoryTransport},
	{"مواصلات", CategoryTransport},
	{"تاكسي", CategoryTransport},
	{"سيارة", CategoryTransport},
	{"fuel", CategoryTransport},
	{"taxi", CategoryTransport},
	{"transport", CategoryTransport},
	{"car", CategoryTransport},
	{"كهرباء", CategoryUtilities},
	{"ماء", CategoryUtilities},
	{"انترنت", CategoryUtilities},
	{"إنترنت", CategoryUtilities},
	{"هاتف", CategoryUtilities},
	{"فواتير", CategoryUtilities},
	{"electric", CategoryUtilities},
	{"internet", CategoryUtilities},
	{"phone", CategoryUtilities},
	{"bill", CategoryUtilities},
	{"utilit", CategoryUtilities},
	{"صيدلية", CategoryHealth},
	{"دواء", CategoryHealth},
	{"طبيب", CategoryHealth},
	{"مستشفى", CategoryHealth},
	{"pharma", CategoryHealth},
	{"doctor", CategoryHealth},
	{"health", CategoryHealth},
	{"medic", CategoryHealth},
	{"ملابس", CategoryShopping},
	{"تسوق", CategoryShopping},
	{"هدية", CategoryShopping},
	{"shopping", CategoryShopping},
	{"clothes", CategoryShopping},
	{"gift", CategoryShopping},
	{"عائلة", CategoryFamily},
	{"عيلة", CategoryFamily},
	{"بيت", CategoryFamily},
	{"family", CategoryFamily},
	{"home", CategoryFamily},
	{"شغل", CategoryWork},
	{"عمل", CategoryWork},
	{"مرتب", CategoryWork},
	{"راتب", CategoryWork},
	{"salary", CategoryWork},
	{"work", CategoryWork},
	{"متفرقات", CategoryGeneral},
	{"عام", CategoryGeneral},
	{"general", CategoryGeneral},
	{"misc", CategoryGeneral},
	{"other", CategoryGeneral},
}

// Normalize maps a raw category label to a canonical category. It is total
// and idempotent: empty input yields CategoryGeneral, a matching label yields
// its canonical category (canonical names match themselves), and an unknown
// non-empty label passes through unchanged so user-supplied categories not yet
// in the table are preserved.
func Normalize(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return CategoryGeneral
	}
	for _, r := range rules {
		if strings.Contains(trimmed, r.pattern) {
			return r.canonical
		}
	}
	return trimmed
}

// All returns the canonical category names in a stable order, for prompt
// construction and display.
func All() []string {
	return []string{
		CategoryGeneral, CategoryFood, CategoryTransport, CategoryUtilities,
		CategoryHealth, CategoryShopping, CategoryFamily, CategoryWork,
		CategoryDebt, CategoryTransfers,
	}
}
