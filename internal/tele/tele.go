package tele

import (
	"context"
	"sync"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/juju/errors"
	"github.com/temoto/paystation/currency"
	"github.com/temoto/paystation/helpers"
	"github.com/temoto/paystation/internal/paystation"
	tele_api "github.com/temoto/paystation/internal/tele/api"
	tele_config "github.com/temoto/paystation/internal/tele/config"
	"github.com/temoto/paystation/log2"
	"github.com/temoto/spq"
)

const (
	DefaultNetworkTimeout = 30 * time.Second
	defaultRetryDelay     = 5 * time.Second
)

const logMsgDisabled = "tele disabled"

// Tele contract:
//   - Init() fails only with invalid config, network issues ignored
//   - Purchase/Cancel/Drain/Error block at most for disk write,
//     network may be slow or absent, messages are delivered in background
//   - messages delivered at least once, undelivered stay in queue across restarts
type tele struct { //nolint:maligned
	config     tele_config.Config
	log        *log2.Log
	transport  Transporter
	q          *spq.Queue
	retryDelay time.Duration
	backoff    helpers.Backoff
	clock      func() time.Time

	stopCh chan struct{}
	wg     sync.WaitGroup
}

func New() tele_api.Teler {
	return &tele{}
}
func NewWithTransporter(trans Transporter) tele_api.Teler {
	return &tele{transport: trans}
}

func (self *tele) Init(ctx context.Context, log *log2.Log, teleConfig tele_config.Config) error {
	self.config = teleConfig
	self.log = log
	if self.config.LogDebug {
		self.log.SetLevel(log2.LDebug)
	}
	if self.clock == nil {
		self.clock = time.Now
	}
	if !self.config.Enabled {
		self.log.Infof(logMsgDisabled)
		return nil
	}
	if self.config.PersistPath == "" {
		return errors.NotValidf("tele persist_path empty")
	}
	if self.retryDelay == 0 {
		self.retryDelay = helpers.IntSecondDefault(self.config.RetrySec, defaultRetryDelay)
	}

	// test code sets .transport
	if self.transport == nil {
		self.transport = &transportMqtt{}
	}
	if err := self.transport.Init(ctx, log, teleConfig); err != nil {
		return errors.Annotate(err, "tele transport")
	}

	var err error
	self.q, err = spq.Open(self.config.PersistPath)
	if err != nil {
		return errors.Annotate(err, "tele queue")
	}

	self.backoff = helpers.Backoff{Min: self.retryDelay, Max: 30 * self.retryDelay, K: 2}
	self.stopCh = make(chan struct{})
	self.wg.Add(1)
	go self.qworker()
	return nil
}

func (self *tele) Close() {
	if !self.config.Enabled || self.q == nil {
		return
	}
	close(self.stopCh)
	if err := self.q.Close(); err != nil {
		self.log.Errorf("tele queue close err=%v", err)
	}
	self.wg.Wait()
	self.transport.Close()
}

func (self *tele) Error(e error) {
	if !self.config.Enabled {
		self.log.Debugf(logMsgDisabled)
		return
	}
	self.log.Debugf("tele.Error: " + errors.ErrorStack(e))
	self.qpushTelemetry(&tele_api.Telemetry{
		Error: &tele_api.Telemetry_Error{Message: e.Error()},
	})
}

func (self *tele) Purchase(r paystation.Receipt) {
	if !self.config.Enabled {
		self.log.Debugf(logMsgDisabled)
		return
	}
	self.qpushTelemetry(&tele_api.Telemetry{
		Time: r.Issued().UnixNano(),
		Transaction: &tele_api.Telemetry_Transaction{
			Kind:    tele_api.TxPurchase,
			Amount:  uint32(r.Amount()),
			Minutes: int32(r.Minutes()),
			Seq:     r.Seq(),
		},
	})
}

func (self *tele) Cancel(coins paystation.CoinCounts) {
	if !self.config.Enabled {
		self.log.Debugf(logMsgDisabled)
		return
	}
	self.qpushTelemetry(&tele_api.Telemetry{
		Transaction: &tele_api.Telemetry_Transaction{
			Kind:    tele_api.TxCancel,
			Amount:  uint32(coins.Total()),
			Coins5:  uint32(coins.Five),
			Coins10: uint32(coins.Ten),
			Coins25: uint32(coins.TwentyFive),
		},
	})
}

func (self *tele) Drain(total currency.Amount) {
	if !self.config.Enabled {
		self.log.Debugf(logMsgDisabled)
		return
	}
	self.qpushTelemetry(&tele_api.Telemetry{
		Drain: &tele_api.Telemetry_Drain{Amount: uint32(total)},
	})
}

func (self *tele) qworker() {
	defer self.wg.Done()
	for {
		box, err := self.q.Peek()
		switch err {
		case nil:
			b := box.Bytes()
			if self.qsend(b) {
				self.backoff.Reset()
				if err = self.q.Delete(box); err != nil {
					self.log.Errorf("tele queue Delete b=%x err=%v", b, err)
				}
				continue
			}
			// move to tail so one bad message does not block the rest
			if err = self.q.DeletePush(box); err != nil {
				self.log.Errorf("tele queue DeletePush b=%x err=%v", b, err)
			}
			select {
			case <-self.stopCh:
				return
			case <-time.After(self.backoff.Failure()):
			}

		case spq.ErrClosed:
			select {
			case <-self.stopCh: // success path
			default:
				self.log.Errorf("CRITICAL tele queue closed unexpectedly")
			}
			return

		default:
			self.log.Errorf("CRITICAL tele queue err=%v", err)
			select {
			case <-self.stopCh:
				return
			case <-time.After(self.retryDelay):
			}
		}
	}
}

// returns true when message should be removed from queue
func (self *tele) qsend(b []byte) bool {
	if len(b) == 0 {
		self.log.Errorf("tele queue peek=empty")
		return true
	}
	var tm tele_api.Telemetry
	if err := proto.Unmarshal(b, &tm); err != nil {
		self.log.Errorf("CRITICAL tele queue corrupted b=%x err=%v", b, err)
		return true // retry will not help
	}
	self.log.Debugf("tele send %s", tm.String())
	return self.transport.SendTelemetry(b)
}

func (self *tele) qpushTelemetry(tm *tele_api.Telemetry) {
	if tm.StationId == "" {
		tm.StationId = self.config.ClientId
	}
	if tm.Time == 0 {
		tm.Time = self.clock().UnixNano()
	}
	b, err := proto.Marshal(tm)
	if err == nil {
		err = self.q.Push(b)
	}
	if err != nil {
		self.log.Errorf("CRITICAL tele push tm=%s err=%v", tm.String(), err)
	}
}
