// Package paystation is parking pay station transaction accumulator.
// Overview:
// - coin mechanism -> AddPayment(nominal) per accepted coin
// - display <- ReadDisplay() parking minutes bought so far
// - Buy() finalizes transaction into Receipt and earnings
// - Cancel() returns inserted coins per nominal, earnings untouched
// - Empty() drains earnings collected since previous Empty()
package paystation

import (
	"sync"
	"time"

	"github.com/temoto/paystation/currency"
	"github.com/temoto/paystation/log2"
)

// Reporter receives completed operations, called outside of station lock.
type Reporter interface {
	Purchase(Receipt)
	Cancel(CoinCounts)
	Drain(currency.Amount)
}

type PayStation struct {
	Log      *log2.Log
	lk       sync.Mutex
	rate     Rate
	clock    func() time.Time
	reporter Reporter

	// transaction, reset by Buy and Cancel
	inserted   currency.Amount
	timeBought int
	coins      CoinCounts

	// reset only by Empty
	earnings currency.Amount
	seq      uint32
}

type Option func(*PayStation)

func WithClock(f func() time.Time) Option { return func(ps *PayStation) { ps.clock = f } }
func WithReporter(r Reporter) Option      { return func(ps *PayStation) { ps.reporter = r } }

func New(log *log2.Log, opts ...Option) *PayStation {
	self := &PayStation{
		Log:   log,
		rate:  DefaultRate,
		clock: time.Now,
	}
	for _, o := range opts {
		o(self)
	}
	return self
}

// SetReporter replaces reporter, nil disables reporting.
func (self *PayStation) SetReporter(r Reporter) {
	self.lk.Lock()
	self.reporter = r
	self.lk.Unlock()
}

func (self *PayStation) AddPayment(coinValue int) error {
	const tag = "paystation.add-payment"

	if !IsValidCoin(coinValue) {
		self.Log.Debugf("%s rejected value=%d", tag, coinValue)
		return InvalidCoinError{Value: coinValue}
	}
	n := currency.Nominal(coinValue)

	self.lk.Lock()
	defer self.lk.Unlock()
	*self.coins.ref(n)++
	self.inserted += currency.Amount(n)
	self.timeBought = self.rate.Time(self.inserted)
	self.Log.Debugf("%s n=%s inserted=%s time=%d", tag, n, self.inserted.Format100I(), self.timeBought)
	return nil
}

func (self *PayStation) ReadDisplay() int {
	self.lk.Lock()
	defer self.lk.Unlock()
	return self.timeBought
}

func (self *PayStation) Buy() Receipt {
	const tag = "paystation.buy"

	self.lk.Lock()
	self.seq++
	r := NewReceipt(self.timeBought, self.inserted, self.clock(), self.seq)
	self.earnings += self.inserted
	earnings := self.earnings
	self.locked_reset()
	reporter := self.reporter
	self.lk.Unlock()

	self.Log.Infof("%s %s earnings=%s", tag, r.String(), earnings.Format100I())
	if reporter != nil {
		reporter.Purchase(r)
	}
	return r
}

func (self *PayStation) Cancel() CoinCounts {
	const tag = "paystation.cancel"

	self.lk.Lock()
	coins := self.coins
	self.locked_reset()
	reporter := self.reporter
	self.lk.Unlock()

	self.Log.Infof("%s return coins=%s", tag, coins.String())
	if reporter != nil {
		reporter.Cancel(coins)
	}
	return coins
}

func (self *PayStation) Empty() currency.Amount {
	const tag = "paystation.empty"

	self.lk.Lock()
	total := self.earnings
	self.earnings = 0
	reporter := self.reporter
	self.lk.Unlock()

	self.Log.Infof("%s total=%s", tag, total.Format100I())
	if reporter != nil {
		reporter.Drain(total)
	}
	return total
}

// Inserted is money accepted in current transaction.
func (self *PayStation) Inserted() currency.Amount {
	self.lk.Lock()
	defer self.lk.Unlock()
	return self.inserted
}

// Earnings is money from completed purchases since last Empty.
func (self *PayStation) Earnings() currency.Amount {
	self.lk.Lock()
	defer self.lk.Unlock()
	return self.earnings
}

func (self *PayStation) Counts() CoinCounts {
	self.lk.Lock()
	defer self.lk.Unlock()
	return self.coins
}

func (self *PayStation) locked_reset() {
	self.inserted = 0
	self.timeBought = 0
	self.coins = CoinCounts{}
}
