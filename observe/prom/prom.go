// Package prom provides a Prometheus-backed observer for spawnscope.
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/NetPo4ki/go-spawnscope/spawnscope"
)

// Observer exports scope lifecycle events as Prometheus metrics. Pass it to
// spawnscope.WithObserver after constructing it with the target Registerer.
type Observer struct {
	scopesCreated  prometheus.Counter
	scopesReleased prometheus.Counter
	waitsStarted   prometheus.Counter
	waitsCanceled  prometheus.Counter
	waitsResolved  prometheus.Counter
	pendingWaits   prometheus.Gauge
	waitDuration   prometheus.Histogram
	tasksSpawned   prometheus.Counter
	activeTasks    prometheus.Gauge
	taskDuration   prometheus.Histogram
}

var _ spawnscope.Observer = (*Observer)(nil)

// New builds an Observer with its collectors registered on reg.
func New(reg prometheus.Registerer) *Observer {
	f := promauto.With(reg)
	return &Observer{
		scopesCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "spawnscope_scopes_created_total",
			Help: "Scopes constructed.",
		}),
		scopesReleased: f.NewCounter(prometheus.CounterOpts{
			Name: "spawnscope_scopes_released_total",
			Help: "Scopes released.",
		}),
		waitsStarted: f.NewCounter(prometheus.CounterOpts{
			Name: "spawnscope_waits_started_total",
			Help: "Wait operations started.",
		}),
		waitsCanceled: f.NewCounter(prometheus.CounterOpts{
			Name: "spawnscope_waits_canceled_total",
			Help: "Wait operations abandoned before release.",
		}),
		waitsResolved: f.NewCounter(prometheus.CounterOpts{
			Name: "spawnscope_waits_resolved_total",
			Help: "Wait operations resolved by release.",
		}),
		pendingWaits: f.NewGauge(prometheus.GaugeOpts{
			Name: "spawnscope_pending_waits",
			Help: "Wait operations currently pending.",
		}),
		waitDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "spawnscope_wait_duration_seconds",
			Help:    "Time waiters spent pending before release.",
			Buckets: prometheus.DefBuckets,
		}),
		tasksSpawned: f.NewCounter(prometheus.CounterOpts{
			Name: "spawnscope_tasks_spawned_total",
			Help: "Tasks started through Spawn.",
		}),
		activeTasks: f.NewGauge(prometheus.GaugeOpts{
			Name: "spawnscope_active_tasks",
			Help: "Spawned tasks currently running.",
		}),
		taskDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "spawnscope_task_duration_seconds",
			Help:    "Spawned task run time.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (o *Observer) ScopeCreated() { o.scopesCreated.Inc() }

func (o *Observer) ScopeReleased(int) { o.scopesReleased.Inc() }

func (o *Observer) WaitStarted() {
	o.waitsStarted.Inc()
	o.pendingWaits.Inc()
}

func (o *Observer) WaitResolved(blocked time.Duration) {
	o.waitsResolved.Inc()
	o.pendingWaits.Dec()
	o.waitDuration.Observe(blocked.Seconds())
}

func (o *Observer) WaitCanceled() {
	o.waitsCanceled.Inc()
	o.pendingWaits.Dec()
}

func (o *Observer) TaskSpawned() {
	o.tasksSpawned.Inc()
	o.activeTasks.Inc()
}

func (o *Observer) TaskFinished(dur time.Duration) {
	o.activeTasks.Dec()
	o.taskDuration.Observe(dur.Seconds())
}
