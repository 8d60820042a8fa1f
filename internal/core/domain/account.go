package domain

// Account identifies one of the wallet's money pots.
type Account string

const (
	AccountCash  Account = "Cash"  // physical cash, the default account
	AccountWahda Account = "Wahda" // Wahda bank
	AccountNAB   Account = "NAB"   // North Africa Bank
)

// FixedAccounts is the closed set of accounts that participate in balance
// totals. Entries against any other account string stay in the log and in
// exports but are excluded from balances and aggregate liquidity.
var FixedAccounts = []Account{AccountCash, AccountWahda, AccountNAB}

// IsFixed reports whether a belongs to the closed account set.
func (a Account) IsFixed() bool {
	for _, fixed := range FixedAccounts {
		if a == fixed {
			return true
		}
	}
	return false
}
