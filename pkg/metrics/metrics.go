package metrics

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry guarda os coletores da aplicação
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "invoice_dashboard",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de requisições HTTP atendidas.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "invoice_dashboard",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "path"},
	)

	invoiceMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "invoice_dashboard",
			Subsystem: "invoices",
			Name:      "mutations_total",
			Help:      "Mutações de faturas por operação e resultado.",
		},
		[]string{"operation", "outcome"},
	)

	authAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "invoice_dashboard",
			Subsystem: "auth",
			Name:      "attempts_total",
			Help:      "Tentativas de login por resultado.",
		},
		[]string{"outcome"},
	)

	cacheInvalidations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "invoice_dashboard",
			Subsystem: "cache",
			Name:      "invalidations_total",
			Help:      "Invalidações de cache por view.",
		},
		[]string{"view"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		invoiceMutations,
		authAttempts,
		cacheInvalidations,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler expõe as métricas registradas
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// UnmatchedRoute rotula requisições que não chegaram a nenhuma rota registrada
const UnmatchedRoute = "unmatched"

type recorderKey struct{}

// InstrumentHandler coleta contagem e duração das requisições, rotuladas pelo
// padrão da rota e nunca pelo caminho bruto
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := NewStatusRecorder(w)
		start := time.Now()

		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), recorderKey{}, rec)))

		method := strings.ToUpper(r.Method)
		route := rec.Route()

		httpRequests.WithLabelValues(method, route, strconv.Itoa(rec.Status())).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

// MatchRoute registra o padrão da rota atendida para os rótulos da requisição
func MatchRoute(r *http.Request, pattern string) {
	if rec, ok := r.Context().Value(recorderKey{}).(*StatusRecorder); ok {
		rec.route = pattern
	}
}

func RecordInvoiceMutation(operation, outcome string) {
	invoiceMutations.WithLabelValues(operation, outcome).Inc()
}

func RecordAuthAttempt(outcome string) {
	authAttempts.WithLabelValues(outcome).Inc()
}

func RecordCacheInvalidation(view string) {
	cacheInvalidations.WithLabelValues(view).Inc()
}

// StatusRecorder guarda o status escrito pelo handler. Um writer que já é
// StatusRecorder é reaproveitado, então a cadeia inteira compartilha o mesmo.
type StatusRecorder struct {
	http.ResponseWriter
	status int
	route  string
}

func NewStatusRecorder(w http.ResponseWriter) *StatusRecorder {
	if rec, ok := w.(*StatusRecorder); ok {
		return rec
	}
	return &StatusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (r *StatusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *StatusRecorder) Status() int {
	return r.status
}

// Route devolve o padrão da rota atendida ou UnmatchedRoute
func (r *StatusRecorder) Route() string {
	if r.route == "" {
		return UnmatchedRoute
	}
	return r.route
}
