package paystation

import (
	"fmt"
	"time"

	"github.com/temoto/paystation/currency"
)

// Receipt is immutable record of purchased parking time.
type Receipt struct {
	minutes int
	amount  currency.Amount
	issued  time.Time
	seq     uint32
}

func NewReceipt(minutes int, amount currency.Amount, issued time.Time, seq uint32) Receipt {
	return Receipt{minutes: minutes, amount: amount, issued: issued, seq: seq}
}

func (self Receipt) Minutes() int            { return self.minutes }
func (self Receipt) Amount() currency.Amount { return self.amount }
func (self Receipt) Issued() time.Time       { return self.issued }
func (self Receipt) Seq() uint32             { return self.seq }
func (self Receipt) Duration() time.Duration { return time.Duration(self.minutes) * time.Minute }
func (self Receipt) ValidUntil() time.Time   { return self.issued.Add(self.Duration()) }
func (self Receipt) String() string {
	return fmt.Sprintf("receipt seq=%d minutes=%d amount=%s", self.seq, self.minutes, self.amount.Format100I())
}
