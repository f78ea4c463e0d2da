package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/akhilc162005/anti-location-tracker/internal/ports"
)

// Metric names used across the sessions.
const (
	MetricTicks           = "antitrack_ticks_total"
	MetricSignalsDetected = "antitrack_signals_detected_total"
	MetricCountermeasures = "antitrack_countermeasures_total"
	MetricSinkErrors      = "antitrack_sink_errors_total"
	MetricThreatLevel     = "antitrack_threat_level"
	MetricHistoryLength   = "antitrack_history_length"
	MetricDistanceKM      = "antitrack_distance_km"
	MetricTickDuration    = "antitrack_tick_duration_seconds"
)

// ZapProm routes structured logs to zap and metrics to Prometheus behind
// the Observability port.
type ZapProm struct {
	logger   *zap.Logger
	counters map[string]prometheus.Counter
	gauges   map[string]prometheus.Gauge
	histos   map[string]prometheus.Observer
}

// New registers the metric set on the given registerer. Passing a fresh
// prometheus.NewRegistry keeps repeated construction (tests, multiple
// runtimes) from colliding. A nil logger gets zap.NewNop.
func New(logger *zap.Logger, reg prometheus.Registerer) *ZapProm {
	if logger == nil {
		logger = zap.NewNop()
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	ticks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: MetricTicks,
		Help: "Completed sample/classify/respond/log iterations.",
	})
	signals := prometheus.NewCounter(prometheus.CounterOpts{
		Name: MetricSignalsDetected,
		Help: "Total signals that exceeded the detection threshold.",
	})
	countermeasures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: MetricCountermeasures,
		Help: "Countermeasure actions applied.",
	})
	sinkErrors := prometheus.NewCounter(prometheus.CounterOpts{
		Name: MetricSinkErrors,
		Help: "Failed log/archive/publish writes.",
	})
	threat := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: MetricThreatLevel,
		Help: "Current threat severity (0 none to 4 critical).",
	})
	histLen := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: MetricHistoryLength,
		Help: "Fixes currently held in the history buffer.",
	})
	distance := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: MetricDistanceKM,
		Help: "Total distance across the history buffer, in km.",
	})
	tickDur := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    MetricTickDuration,
		Help:    "Wall time of one full tick.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
	})

	reg.MustRegister(ticks, signals, countermeasures, sinkErrors, threat, histLen, distance, tickDur)

	return &ZapProm{
		logger: logger,
		counters: map[string]prometheus.Counter{
			MetricTicks:           ticks,
			MetricSignalsDetected: signals,
			MetricCountermeasures: countermeasures,
			MetricSinkErrors:      sinkErrors,
		},
		gauges: map[string]prometheus.Gauge{
			MetricThreatLevel:   threat,
			MetricHistoryLength: histLen,
			MetricDistanceKM:    distance,
		},
		histos: map[string]prometheus.Observer{
			MetricTickDuration: tickDur,
		},
	}
}

func (z *ZapProm) LogInfo(msg string, fields ...ports.Field) {
	z.logger.Info(msg, zapFields(fields)...)
}

func (z *ZapProm) LogError(msg string, err error, fields ...ports.Field) {
	z.logger.Error(msg, append(zapFields(fields), zap.Error(err))...)
}

func (z *ZapProm) IncCounter(name string, v float64) {
	if c, ok := z.counters[name]; ok {
		c.Add(v)
	}
}

func (z *ZapProm) SetGauge(name string, v float64) {
	if g, ok := z.gauges[name]; ok {
		g.Set(v)
	}
}

func (z *ZapProm) ObserveDuration(name string, seconds float64) {
	if h, ok := z.histos[name]; ok {
		h.Observe(seconds)
	}
}

func zapFields(fields []ports.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields)+1)
	for _, f := range fields {
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}

var _ ports.Observability = (*ZapProm)(nil)
