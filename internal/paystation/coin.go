package paystation

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/temoto/paystation/currency"
)

const (
	Coin5  currency.Nominal = 5
	Coin10 currency.Nominal = 10
	Coin25 currency.Nominal = 25
)

// ValidNominals lists accepted coins in ascending order.
func ValidNominals() []currency.Nominal {
	return []currency.Nominal{Coin5, Coin10, Coin25}
}

func IsValidCoin(value int) bool {
	switch value {
	case int(Coin5), int(Coin10), int(Coin25):
		return true
	}
	return false
}

type InvalidCoinError struct {
	Value int
}

func (self InvalidCoinError) Error() string {
	return fmt.Sprintf("invalid coin: %d", self.Value)
}

// IsInvalidCoin reports whether err, possibly annotated, is InvalidCoinError.
func IsInvalidCoin(err error) bool {
	_, ok := errors.Cause(err).(InvalidCoinError)
	return ok
}

// CoinCounts is number of coins per accepted nominal.
// Fixed fields, so every nominal is always present.
type CoinCounts struct {
	Five       uint
	Ten        uint
	TwentyFive uint
}

func (self *CoinCounts) ref(n currency.Nominal) *uint {
	switch n {
	case Coin5:
		return &self.Five
	case Coin10:
		return &self.Ten
	case Coin25:
		return &self.TwentyFive
	}
	return nil
}

func (self CoinCounts) Get(n currency.Nominal) (uint, error) {
	p := self.ref(n)
	if p == nil {
		return 0, InvalidCoinError{Value: int(n)}
	}
	return *p, nil
}

func (self CoinCounts) Total() currency.Amount {
	return Coin5.Times(self.Five) + Coin10.Times(self.Ten) + Coin25.Times(self.TwentyFive)
}

func (self CoinCounts) IsZero() bool { return self == CoinCounts{} }

// Map always contains key for each of ValidNominals, zero count included.
func (self CoinCounts) Map() map[currency.Nominal]uint {
	return map[currency.Nominal]uint{
		Coin5:  self.Five,
		Coin10: self.Ten,
		Coin25: self.TwentyFive,
	}
}

func (self CoinCounts) String() string {
	return fmt.Sprintf("5:%d,10:%d,25:%d,total:%s",
		self.Five, self.Ten, self.TwentyFive, self.Total().Format100I())
}
