package state

import (
	"context"
	"testing"

	tele_api "github.com/temoto/paystation/internal/tele/api"
	"github.com/temoto/paystation/log2"
)

func NewTestContext(t testing.TB, confString string) (context.Context, *Global) {
	fs := NewMockFullReader(map[string]string{
		"test-inline": confString,
	})

	log := log2.NewTest(t, log2.LDebug)
	// log := log2.NewStderr(log2.LDebug) // useful with panics
	ctx, g := NewContext(log, tele_api.NewStub())
	g.MustInit(ctx, MustReadConfig(log, fs, "test-inline"))
	return ctx, g
}
