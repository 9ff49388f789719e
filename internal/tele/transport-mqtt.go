package tele

import (
	"context"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/juju/errors"
	"github.com/temoto/paystation/helpers"
	tele_config "github.com/temoto/paystation/internal/tele/config"
	"github.com/temoto/paystation/log2"
)

type transportMqtt struct {
	log            *log2.Log
	m              mqtt.Client
	mopt           *mqtt.ClientOptions
	networkTimeout time.Duration

	topicPrefix    string
	topicConnect   string
	topicTelemetry string
}

func (self *transportMqtt) Init(ctx context.Context, log *log2.Log, teleConfig tele_config.Config) error {
	self.log = log
	mqtt.ERROR = log
	mqtt.CRITICAL = log
	if teleConfig.LogDebug {
		mqtt.WARN = log
	}

	if teleConfig.MqttBroker == "" {
		return errors.NotValidf("tele mqtt_broker empty")
	}
	if teleConfig.ClientId == "" {
		return errors.NotValidf("tele client_id empty")
	}

	self.topicPrefix = teleConfig.ClientId
	self.topicConnect = fmt.Sprintf("%s/c", self.topicPrefix)
	self.topicTelemetry = fmt.Sprintf("%s/w/1t", self.topicPrefix)
	keepAlive := helpers.IntSecondDefault(teleConfig.KeepaliveSec, 60*time.Second)
	pingTimeout := helpers.IntSecondDefault(teleConfig.PingTimeoutSec, 30*time.Second)
	self.networkTimeout = helpers.IntSecondDefault(teleConfig.NetworkTimeoutSec, DefaultNetworkTimeout)

	self.mopt = mqtt.NewClientOptions().
		AddBroker(teleConfig.MqttBroker).
		SetBinaryWill(self.topicConnect, []byte{0x00}, 1, true).
		SetCleanSession(false).
		SetClientID(teleConfig.ClientId).
		SetUsername(teleConfig.ClientId).
		SetPassword(teleConfig.MqttPassword).
		SetKeepAlive(keepAlive).
		SetPingTimeout(pingTimeout).
		SetConnectTimeout(self.networkTimeout).
		SetAutoReconnect(true).
		SetOrderMatters(false).
		SetOnConnectHandler(self.onConnectHandler).
		SetConnectionLostHandler(self.connectLostHandler)
	self.m = mqtt.NewClient(self.mopt)
	// network errors are not fatal, SendTelemetry will reconnect
	if token := self.m.Connect(); token.WaitTimeout(self.networkTimeout) && token.Error() != nil {
		self.log.Errorf("tele mqtt connect broker=%s err=%v", teleConfig.MqttBroker, token.Error())
	}
	return nil
}

func (self *transportMqtt) Close() {
	if self.m == nil {
		return
	}
	self.log.Infof("mqtt disconnect")
	self.m.Publish(self.topicConnect, 1, true, []byte{0x00}).WaitTimeout(self.networkTimeout)
	self.m.Disconnect(uint(self.networkTimeout / time.Millisecond))
}

func (self *transportMqtt) SendTelemetry(payload []byte) bool {
	if !self.m.IsConnected() {
		token := self.m.Connect()
		if !token.WaitTimeout(self.networkTimeout) || token.Error() != nil {
			self.log.Debugf("mqtt reconnect failed err=%v", token.Error())
			return false
		}
	}
	token := self.m.Publish(self.topicTelemetry, 1, false, payload)
	if !token.WaitTimeout(self.networkTimeout) {
		self.log.Debugf("mqtt publish timeout")
		return false
	}
	if err := token.Error(); err != nil {
		self.log.Debugf("mqtt publish err=%v", err)
		return false
	}
	return true
}

func (self *transportMqtt) connectLostHandler(c mqtt.Client, err error) {
	self.log.Infof("mqtt connection lost err=%v", err)
}

func (self *transportMqtt) onConnectHandler(c mqtt.Client) {
	self.log.Infof("mqtt connect")
	c.Publish(self.topicConnect, 1, true, []byte{0x01})
}
