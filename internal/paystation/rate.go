package paystation

import "github.com/temoto/paystation/currency"

// Rate converts money into parking minutes: Minutes per each full Unit.
// Partial unit buys nothing.
type Rate struct {
	Unit    currency.Amount
	Minutes int
}

// DefaultRate is 2 minutes per 5 cents.
var DefaultRate = Rate{Unit: 5, Minutes: 2}

func (self Rate) Time(a currency.Amount) int {
	if self.Unit == 0 {
		return 0
	}
	return int(a/self.Unit) * self.Minutes
}
