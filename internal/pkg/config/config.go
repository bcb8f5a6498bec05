package config

import "time"

type Config struct {
	GatewayCfg *GatewayConfig
	ServerCfg  *ServerConfig
	LogLevel   string
	// StatePolling reports whether continuous state polling is configured
	// for this deployment. It is fixed at process start and stamped into
	// every capability descriptor as willReportState.
	StatePolling bool
}

type GatewayConfig struct {
	URL            string
	Token          string
	RequestTimeout time.Duration
}

type ServerConfig struct {
	ListenAddress string
	AgentUserID   string
}
