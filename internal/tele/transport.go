package tele

import (
	"context"

	tele_config "github.com/temoto/paystation/internal/tele/config"
	"github.com/temoto/paystation/log2"
)

// Tele transport contract:
// - Init fails only with invalid config, ignores network errors
// - SendTelemetry delivers within timeout or fails, caller retries
// - application may start without network available
type Transporter interface {
	Init(ctx context.Context, log *log2.Log, teleConfig tele_config.Config) error
	SendTelemetry(payload []byte) bool
	Close()
}
