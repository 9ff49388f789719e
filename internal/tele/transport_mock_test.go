package tele

import (
	"context"
	"testing"
	"time"

	tele_config "github.com/temoto/paystation/internal/tele/config"
	"github.com/temoto/paystation/log2"
)

type transportMock struct {
	t              testing.TB
	networkTimeout time.Duration
	outBuffer      int
	outTelemetry   chan []byte
	// first N sends fail
	fail   int
	closed bool
}

func (self *transportMock) Init(ctx context.Context, log *log2.Log, teleConfig tele_config.Config) error {
	if self.networkTimeout == 0 {
		self.networkTimeout = 5 * time.Second
	}
	self.outTelemetry = make(chan []byte, self.outBuffer)
	return nil
}

func (self *transportMock) SendTelemetry(payload []byte) bool {
	if self.fail > 0 {
		self.fail--
		self.t.Logf("mock network failure")
		return false
	}
	select {
	case self.outTelemetry <- payload:
		self.t.Logf("mock delivered telemetry=%x", payload)
	case <-time.After(self.networkTimeout):
		self.t.Logf("mock network timeout")
		return false
	}
	return true
}

func (self *transportMock) Close() { self.closed = true }
