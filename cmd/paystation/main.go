package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/coreos/go-systemd/daemon"
	"github.com/juju/errors"
	"github.com/temoto/paystation/cmd/paystation/console"
	"github.com/temoto/paystation/cmd/paystation/subcmd"
	"github.com/temoto/paystation/internal/state"
	"github.com/temoto/paystation/internal/tele"
	"github.com/temoto/paystation/log2"
)

var BuildVersion string = "unknown" // set by ldflags -X

var log = log2.NewStderr(log2.LDebug)
var modules = []subcmd.Mod{
	console.Mod,
	{Name: "version", Main: versionMain},
}

func main() {
	flags := flag.NewFlagSet("paystation", flag.ContinueOnError)
	flagConfig := flags.String("config", "paystation.hcl", "")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: paystation [-config=paystation.hcl] COMMAND\nCommands: %s\n", subcmd.Names(modules))
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		log.Fatal(err)
	}

	mod, err := subcmd.Parse(flags.Arg(0), modules)
	if err != nil {
		flags.Usage()
		log.Fatal(err)
	}

	if subcmd.SdNotify("start") {
		// under systemd assume journal logging, remove timestamp
		log.SetFlags(log2.LServiceFlags)
	} else {
		log.SetFlags(log2.LInteractiveFlags)
	}

	ctx, g := state.NewContext(log, tele.New())
	g.BuildVersion = BuildVersion

	var config *state.Config
	if mod.Name != "version" {
		config = state.MustReadConfig(log, state.NewOsFullReader(), *flagConfig)
	}

	subcmd.SdNotify(daemon.SdNotifyReady)
	log.Debugf("paystation version=%s starting %s", BuildVersion, mod.Name)
	if err := mod.Main(ctx, config); err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
}

func versionMain(ctx context.Context, config *state.Config) error {
	g := state.GetGlobal(ctx)
	fmt.Printf("paystation %s\n", g.BuildVersion)
	return nil
}
