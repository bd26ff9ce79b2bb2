package store

import (
	"time"

	"stockcount/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// boot guard
	ConnectRetries int           // default 20
	PingTimeout    time.Duration // default 3s
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled     bool
	URL         string
	ClientName  string
	ClientTag   string
	DialTimeout time.Duration
}

// FromConf reads SERVICE_PGSQL_* and SERVICE_CLICKHOUSE_* under root
// postgres is required, clickhouse is enabled only when its DBURL is set
func FromConf(root config.Conf, app, role string) Config {
	pg := root.Prefix("SERVICE_PGSQL_")
	ch := root.Prefix("SERVICE_CLICKHOUSE_")
	chURL := ch.MayString("DBURL", "")
	return Config{
		AppName: app,
		PG: PGConfig{
			Enabled:        true,
			URL:            pg.MustString("DBURL"),
			MaxConns:       int32(pg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs:    pg.MayInt("SLOW_MS", 500),
			LogSQL:         pg.MayBool("LOG_SQL", false),
			ConnectRetries: pg.MayInt("CONNECT_RETRIES", 20),
			PingTimeout:    pg.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
		CH: CHConfig{
			Enabled:     chURL != "",
			URL:         chURL,
			ClientName:  app,
			ClientTag:   role,
			DialTimeout: ch.MayDuration("DIAL_TIMEOUT", 5*time.Second),
		},
	}
}
