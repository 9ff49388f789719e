package currency

import (
	"fmt"
	"strconv"
)

// Amount is integer counting lowest currency unit, e.g. $1.20 = 120
type Amount uint32

func (self Amount) Format100I() string { return fmt.Sprint(float32(self) / 100) }

// FormatCents renders dollars with exactly two decimals, for printed slips.
func (self Amount) FormatCents() string {
	return strconv.FormatUint(uint64(self/100), 10) + "." + fmt.Sprintf("%02d", uint32(self%100))
}

func (self Amount) String() string { return strconv.FormatUint(uint64(self), 10) }

// Nominal is value of one coin
type Nominal Amount

func (self Nominal) String() string { return Amount(self).String() }

// Times returns total value of count coins of this nominal.
func (self Nominal) Times(count uint) Amount { return Amount(self) * Amount(count) }
