package obs

import (
	"context"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID stores the request id used to correlate upstream timings.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the request id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Recorder logs and measures named operations (upstream calls).
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	logger  *zap.Logger
	metrics *Metrics
	clock   clockwork.Clock
}

func NewRecorder(logger *zap.Logger, metrics *Metrics, clock clockwork.Clock) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Recorder{logger: logger, metrics: metrics, clock: clock}
}

// Time starts timing op. Call the returned func with a pointer to the
// operation's named error result:
//
//	defer rec.Time(ctx, "ors.Search")(&err)
func (r *Recorder) Time(ctx context.Context, op string) func(errp *error) {
	if r == nil {
		return func(*error) {}
	}
	start := r.clock.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := r.clock.Since(start)

		outcome := "success"
		if errp != nil && *errp != nil {
			outcome = "error"
		}
		if r.metrics != nil {
			r.metrics.UpstreamRequests.WithLabelValues(op, outcome).Inc()
			r.metrics.UpstreamDuration.WithLabelValues(op).Observe(dur.Seconds())
		}

		fields := []zap.Field{
			zap.String("req_id", reqID),
			zap.String("op", op),
			zap.Int64("dur_ms", dur.Milliseconds()),
		}
		if outcome == "error" {
			r.logger.Warn("upstream call failed", append(fields, zap.Error(*errp))...)
			return
		}
		r.logger.Debug("upstream call", fields...)
	}
}
