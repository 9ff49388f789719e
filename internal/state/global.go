package state

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"
	_ "time/tzdata" // zoneinfo for station.timezone

	"github.com/juju/errors"
	"github.com/temoto/alive/v2"
	"github.com/temoto/paystation/helpers"
	"github.com/temoto/paystation/internal/paystation"
	"github.com/temoto/paystation/internal/receipt"
	tele_api "github.com/temoto/paystation/internal/tele/api"
	"github.com/temoto/paystation/log2"
)

type Global struct {
	Alive        *alive.Alive
	BuildVersion string
	Config       *Config
	Log          *log2.Log
	Station      *paystation.PayStation
	Tele         tele_api.Teler

	location  *time.Location
	closeOnce sync.Once
}

const ContextKey = "run/state-global"

func NewContext(log *log2.Log, teler tele_api.Teler) (context.Context, *Global) {
	if log == nil {
		panic("code error NewContext() log=nil")
	}

	g := &Global{
		Alive: alive.NewAlive(),
		Log:   log,
		Tele:  teler,
	}
	ctx := context.Background()
	ctx = context.WithValue(ctx, log2.ContextKey, log)
	ctx = context.WithValue(ctx, ContextKey, g)

	return ctx, g
}

func GetGlobal(ctx context.Context) *Global {
	v := ctx.Value(ContextKey)
	if v == nil {
		panic(fmt.Sprintf("context['%s'] is nil", ContextKey))
	}
	if g, ok := v.(*Global); ok {
		return g
	}
	panic(fmt.Sprintf("context['%s'] expected type *Global actual=%#v", ContextKey, v))
}

// If `Init` fails, consider `Global` is in broken state.
func (g *Global) Init(ctx context.Context, cfg *Config) error {
	g.Config = cfg

	level := log2.LInfo
	if g.Config.Log.Debug {
		level = log2.LDebug
	}
	g.Log.SetLevel(level)

	if g.Config.Persist.Root == "" {
		g.Config.Persist.Root = "./tmp-paystation-db"
		g.Log.Errorf("config: persist.root=empty changed=%s", g.Config.Persist.Root)
	}
	if g.Config.Tele.PersistPath == "" {
		g.Config.Tele.PersistPath = filepath.Join(g.Config.Persist.Root, "tele")
	}
	if g.Config.Tele.ClientId == "" {
		g.Config.Tele.ClientId = g.Config.Station.Name
	}

	// Since tele is remote error reporting mechanism, it must be inited before anything else.
	// Separate logger, so tele own errors do not loop back into tele.
	if err := g.Tele.Init(ctx, g.Log.Clone(level), g.Config.Tele); err != nil {
		return errors.Annotate(err, "tele init")
	}
	g.Log.SetErrorFunc(g.Tele.Error)

	errs := make([]error, 0)
	if g.Config.Station.Name == "" {
		g.Config.Station.Name = DefaultStationName
	}
	g.location = time.UTC
	if tz := g.Config.Station.Timezone; tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			errs = append(errs, errors.Annotatef(err, "config: station.timezone=%s", tz))
		} else {
			g.location = loc
		}
	}

	g.Station = paystation.New(g.Log, paystation.WithReporter(g.Tele))
	g.Log.Debugf("station=%s init", g.Config.Station.Name)

	return helpers.FoldErrors(errs)
}

func (g *Global) MustInit(ctx context.Context, cfg *Config) {
	err := g.Init(ctx, cfg)
	if err != nil {
		g.Log.Fatal(errors.ErrorStack(err))
	}
}

func (g *Global) ReceiptOptions() receipt.Options {
	return receipt.Options{
		Station:  g.Config.Station.Name,
		QR:       g.Config.Station.ReceiptQR,
		Location: g.location,
	}
}

func (g *Global) Error(err error, args ...interface{}) {
	if err != nil {
		if len(args) != 0 {
			msg := args[0].(string)
			args = args[1:]
			err = errors.Annotatef(err, msg, args...)
		}
		// Log.Errorf forwards to tele via error func
		g.Log.Errorf("%s", errors.ErrorStack(err))
	}
}

// Close waits for running commands and flushes telemetry queue.
// Safe to call more than once.
func (g *Global) Close() {
	g.closeOnce.Do(func() {
		g.Alive.Stop()
		g.Alive.Wait()
		g.Tele.Close()
	})
}
