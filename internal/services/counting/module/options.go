package module

import (
	"time"

	"stockcount/internal/adapters/wms"
	"stockcount/internal/platform/config"
)

// Options controls counting sessions and the optional warehouse backend
type Options struct {
	Cooldown    time.Duration
	TTL         time.Duration
	ReapEvery   time.Duration
	MaxSessions int
	TxTimeout   time.Duration

	// WMS is zero when WMS_BASE_URL is unset
	WMS wms.Options
}

// FromConfig reads COUNTING_* and WMS_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("COUNTING_")
	w := cfg.Prefix("WMS_")
	return Options{
		Cooldown:    c.MayDuration("COOLDOWN", 2*time.Second),
		TTL:         c.MayDuration("SESSION_TTL", 30*time.Minute),
		ReapEvery:   c.MayDuration("REAP_EVERY", time.Minute),
		MaxSessions: c.MayInt("MAX_SESSIONS", 256),
		TxTimeout:   c.MayDuration("TX_TIMEOUT", 5*time.Second),
		WMS: wms.Options{
			BaseURL:    w.MayURL("BASE_URL", ""),
			Token:      w.MayString("TOKEN", ""),
			Timeout:    w.MayDuration("TIMEOUT", 10*time.Second),
			MaxRetries: w.MayInt("MAX_RETRIES", 3),
			PageLimit:  w.MayInt("PAGE_LIMIT", 100),
		},
	}
}
