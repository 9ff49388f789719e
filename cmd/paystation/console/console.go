// Operator console: drive pay station by text commands.
package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/juju/errors"
	"github.com/temoto/paystation/cmd/paystation/subcmd"
	"github.com/temoto/paystation/helpers/cli"
	"github.com/temoto/paystation/internal/paystation"
	"github.com/temoto/paystation/internal/receipt"
	"github.com/temoto/paystation/internal/state"
)

const modName = "console"

var Mod = subcmd.Mod{Name: modName, Main: Main}

const usage = `commands:
- coin N   insert coin, N = 5|10|25
- display  show parking minutes bought so far
- buy      finish transaction, print receipt
- cancel   abort transaction, return coins
- empty    collect earnings
- status   show transaction and earnings
- help     this text
`

var commands = []prompt.Suggest{
	{Text: "coin", Description: "insert coin 5|10|25"},
	{Text: "display", Description: "parking minutes"},
	{Text: "buy", Description: "finish and print receipt"},
	{Text: "cancel", Description: "return coins"},
	{Text: "empty", Description: "collect earnings"},
	{Text: "status", Description: "transaction and earnings"},
	{Text: "help", Description: "usage"},
}

func Main(ctx context.Context, config *state.Config) error {
	g := state.GetGlobal(ctx)
	if err := g.Init(ctx, config); err != nil {
		return errors.Annotate(err, "console init")
	}
	defer g.Close()

	g.Log.Debugf("console init complete, running")
	return cli.MainLoop(modName, newExecutor(ctx, os.Stdout), cli.Completer(commands), g.Close)
}

func newExecutor(ctx context.Context, w io.Writer) cli.ExecFunc {
	g := state.GetGlobal(ctx)
	return func(line string) {
		if err := Exec(ctx, w, line); err != nil {
			g.Log.Errorf("%s", err.Error())
		}
	}
}

// Exec runs one console command line, output goes to w.
func Exec(ctx context.Context, w io.Writer, line string) error {
	g := state.GetGlobal(ctx)
	ps := g.Station
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	if !g.Alive.Add(1) {
		return errors.Errorf("console stopping, command=%s ignored", parts[0])
	}
	defer g.Alive.Done()
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "coin":
		if len(args) != 1 {
			return errors.NotValidf("coin: expected one argument")
		}
		value, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Annotatef(err, "coin value=%s", args[0])
		}
		if err := ps.AddPayment(value); err != nil {
			return errors.Annotate(err, "coin")
		}
		fmt.Fprintf(w, "display: %d min\n", ps.ReadDisplay())

	case "display":
		fmt.Fprintf(w, "display: %d min\n", ps.ReadDisplay())

	case "buy":
		r := ps.Buy()
		return receipt.Format(w, r, g.ReceiptOptions())

	case "cancel":
		coins := ps.Cancel()
		m := coins.Map()
		out := make([]string, 0, len(m))
		for _, n := range paystation.ValidNominals() {
			out = append(out, fmt.Sprintf("%s:%d", n.String(), m[n]))
		}
		fmt.Fprintf(w, "returned coins: %s total=%s\n", strings.Join(out, " "), coins.Total().FormatCents())

	case "empty":
		fmt.Fprintf(w, "collected: %s\n", ps.Empty().FormatCents())

	case "status":
		fmt.Fprintf(w, "inserted=%s display=%d coins=(%s) earnings=%s\n",
			ps.Inserted().FormatCents(), ps.ReadDisplay(), ps.Counts().String(), ps.Earnings().FormatCents())

	case "help", "?":
		io.WriteString(w, usage)

	default:
		return errors.NotSupportedf("command=%s", cmd)
	}
	return nil
}
