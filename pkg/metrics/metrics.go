package metrics

import (
	"net/http"

	"github.com/mrhapile/fish-health-diagnoser/pkg/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fishhealth"

// Recorder collects prediction metrics on its own registry.
type Recorder struct {
	registry    *prometheus.Registry
	predictions *prometheus.CounterVec
	alerts      prometheus.Counter
	emergencies prometheus.Counter
	faults      prometheus.Counter
	rejected    *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Diagnoses returned, by disease label.",
		}, []string{"disease"}),
		alerts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_total",
			Help:      "Diagnoses confident enough to notify the owner.",
		}),
		emergencies: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emergencies_total",
			Help:      "Diagnoses reporting at least one emergency symptom.",
		}),
		faults: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prediction_faults_total",
			Help:      "Predictions served by the fallback after a rule evaluation fault.",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_requests_total",
			Help:      "Prediction requests rejected before reaching the engine.",
		}, []string{"reason"}),
	}
	r.registry.MustRegister(
		r.predictions, r.alerts, r.emergencies, r.faults, r.rejected,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObservePrediction records a diagnosis handed to a client.
func (r *Recorder) ObservePrediction(d types.DiagnosisResult) {
	r.predictions.WithLabelValues(d.Disease).Inc()
	if d.RequiresAlert() {
		r.alerts.Inc()
	}
	if d.Emergency {
		r.emergencies.Inc()
	}
}

func (r *Recorder) ObserveFault() {
	r.faults.Inc()
}

func (r *Recorder) ObserveRejected(reason string) {
	r.rejected.WithLabelValues(reason).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
