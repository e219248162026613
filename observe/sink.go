// sink.go — the bridge from scope hooks to metrics and logs.
package observe

import (
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	xgxdiag "github.com/xgx-io/xgx-diag"
)

// Sink turns scope lifecycle events into metric increments and, optionally,
// structured log lines. Hooks run on the scope's own execution context, so
// the sink does nothing blocking.
type Sink struct {
	cfg     Config
	metrics *Metrics
}

// NewSink builds a sink feeding m under the policy in cfg.
func NewSink(cfg Config, m *Metrics) *Sink {
	return &Sink{cfg: cfg, metrics: m}
}

// ScopeOptions returns the options that instrument a scope with this sink:
//
//	s := xgxdiag.NewScope(sink.ScopeOptions()...)
func (k *Sink) ScopeOptions() []xgxdiag.ScopeOption {
	opts := []xgxdiag.ScopeOption{
		xgxdiag.WithNewErrorHook(k.onNewError),
		xgxdiag.WithUnexpectedHook(k.onUnexpected),
	}
	if k.cfg.Detail {
		if k.cfg.MaxDetailEntries > 0 {
			opts = append(opts, xgxdiag.WithUnexpectedDetailLimit(k.cfg.MaxDetailEntries))
		} else {
			opts = append(opts, xgxdiag.WithUnexpectedDetail())
		}
	}
	return opts
}

func (k *Sink) onNewError(id xgxdiag.ErrorID) {
	k.metrics.MintedTotal.Inc()
}

func (k *Sink) onUnexpected(typeName string, id xgxdiag.ErrorID) {
	k.metrics.UnexpectedTotal.WithLabelValues(typeName).Inc()
	if k.cfg.LogUnexpected {
		logx.Errorw("unexpected diagnostic",
			logx.Field("type", typeName),
			logx.Field("id", id.String()),
		)
	}
}

// LogReport renders the full diagnostic report for id on s and emits it as
// one structured error line. Intended for the outermost handler of a failure
// nothing else consumed.
func LogReport(s *xgxdiag.Scope, id xgxdiag.ErrorID) {
	var sb strings.Builder
	if err := xgxdiag.WriteReport(&sb, s, id); err != nil {
		logx.Errorw("diagnostic report failed",
			logx.Field("id", id.String()),
			logx.Field("error", err.Error()),
		)
		return
	}
	logx.Errorw("failure report",
		logx.Field("id", id.String()),
		logx.Field("report", sb.String()),
	)
}
