package console

import (
	"bytes"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/paystation/currency"
	"github.com/temoto/paystation/helpers/cli"
	"github.com/temoto/paystation/internal/paystation"
	"github.com/temoto/paystation/internal/state"
)

func TestExec(t *testing.T) {
	t.Parallel()

	type Case struct {
		name      string
		line      string
		expect    string
		expectErr string
	}
	cases := []Case{
		{"blank", "   ", "", ""},
		{"display", "display", "display: 0 min\n", ""},
		{"coin", "coin 25", "display: 10 min\n", ""},
		{"coin-invalid", "coin 17", "", "coin: invalid coin: 17"},
		{"coin-nan", "coin five", "", "coin value=five"},
		{"coin-noarg", "coin", "", "coin: expected one argument not valid"},
		{"cancel", "cancel", "returned coins: 5:0 10:0 25:0 total=0.00\n", ""},
		{"empty", "empty", "collected: 0.00\n", ""},
		{"status", "status", "inserted=0.00 display=0 coins=(5:0,10:0,25:0,total:0) earnings=0.00\n", ""},
		{"unknown", "launch", "", "command=launch not supported"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			ctx, _ := state.NewTestContext(t, `station { name = "lot-7" }`)
			buf := bytes.NewBuffer(nil)
			err := Exec(ctx, buf, c.line)
			if c.expectErr == "" {
				require.NoError(t, err, errors.ErrorStack(err))
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), c.expectErr)
			}
			assert.Equal(t, c.expect, buf.String())
		})
	}
}

func TestSession(t *testing.T) {
	t.Parallel()

	ctx, g := state.NewTestContext(t, `station { name = "lot-7" receipt_qr = true }`)
	buf := bytes.NewBuffer(nil)
	script := `
coin 5
coin 25
coin 10
buy
coin 5
coin 3
cancel
empty
empty
help
`
	exec := newExecutor(ctx, buf)
	require.NoError(t, cli.ReadLines(bytes.NewBufferString(script), exec))

	out := buf.String()
	assert.Contains(t, out, "display: 16 min\n")
	assert.Contains(t, out, "minutes     16\n")
	assert.Contains(t, out, "station     lot-7\n")
	assert.Contains(t, out, "██")
	assert.Contains(t, out, "returned coins: 5:1 10:0 25:0 total=0.05\n")
	assert.Contains(t, out, "collected: 0.40\ncollected: 0.00\n")
	assert.Contains(t, out, "- coin N")
	assert.Equal(t, 0, g.Station.ReadDisplay())
	assert.Equal(t, currency.Amount(0), g.Station.Earnings())
	assert.Equal(t, paystation.CoinCounts{}, g.Station.Counts())
}

func TestExecAfterClose(t *testing.T) {
	t.Parallel()

	ctx, g := state.NewTestContext(t, "")
	g.Close()
	buf := bytes.NewBuffer(nil)
	err := Exec(ctx, buf, "coin 5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "console stopping")
	assert.Equal(t, "", buf.String())
	assert.Equal(t, 0, g.Station.ReadDisplay())
}
