package tele_api

import (
	"context"

	"github.com/temoto/paystation/currency"
	"github.com/temoto/paystation/internal/paystation"
	tele_config "github.com/temoto/paystation/internal/tele/config"
	"github.com/temoto/paystation/log2"
)

// Teler is telemetry client, station side.
// Implements paystation.Reporter.
type Teler interface {
	Init(context.Context, *log2.Log, tele_config.Config) error
	Close()
	Error(error)
	Purchase(paystation.Receipt)
	Cancel(paystation.CoinCounts)
	Drain(currency.Amount)
}

var _ paystation.Reporter = Teler(nil)

type stub struct{}

func NewStub() Teler { return stub{} }

func (stub) Init(context.Context, *log2.Log, tele_config.Config) error { return nil }
func (stub) Close()                                                    {}
func (stub) Error(error)                                               {}
func (stub) Purchase(paystation.Receipt)                               {}
func (stub) Cancel(paystation.CoinCounts)                              {}
func (stub) Drain(currency.Amount)                                     {}
