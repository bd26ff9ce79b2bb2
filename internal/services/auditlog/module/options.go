package module

import (
	"time"

	"stockcount/internal/platform/config"
)

// Options controls the audit writer
type Options struct {
	Buffer     int
	Batch      int
	FlushEvery time.Duration
}

// FromConfig reads AUDIT_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("AUDIT_")
	return Options{
		Buffer:     c.MayInt("BUFFER", 1024),
		Batch:      c.MayInt("BATCH", 200),
		FlushEvery: c.MayDuration("FLUSH_EVERY", 2*time.Second),
	}
}
