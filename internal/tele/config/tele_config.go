package tele_config

type Config struct { //nolint:maligned
	Enabled  bool `hcl:"enable"`
	LogDebug bool `hcl:"log_debug"`

	// MQTT client id, topic prefix and station id in telemetry
	ClientId          string `hcl:"client_id"`
	MqttBroker        string `hcl:"mqtt_broker"`
	MqttPassword      string `hcl:"mqtt_password"`
	KeepaliveSec      int    `hcl:"keepalive_sec"`
	PingTimeoutSec    int    `hcl:"ping_timeout_sec"`
	NetworkTimeoutSec int    `hcl:"network_timeout_sec"`
	RetrySec          int    `hcl:"retry_sec"`

	// outgoing messages wait here until delivered
	PersistPath string `hcl:"persist_path"`
}
