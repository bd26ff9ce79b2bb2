package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"stockcount/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	Timeout     time.Duration // default 30s
	SlowRequest time.Duration // access log warns at or above this, 0 disables
	MaxInFlight int           // concurrent request cap answered with 503, 0 disables
}

// CommonStack returns the middleware every versioned api router runs
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	stack := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Timeout(o.Timeout),
	}
	if o.MaxInFlight > 0 {
		stack = append(stack, middleware.Throttle(o.MaxInFlight))
	}
	return stack
}
