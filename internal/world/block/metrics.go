package block

import "github.com/prometheus/client_golang/prometheus"

// Metrics Prometheus-метрики реестра блоков.
//
// Метрики:
// * pheonix_blocks_registered - gauge, число типов в реестре
// * pheonix_block_registrations_total{result} - counter (ok|duplicate|malformed|category|overflow)
// * pheonix_block_lookups_total{result} - counter (hit|miss)
// * pheonix_block_fallbacks_total - counter, подстановки запасного типа
type Metrics struct {
	registered    prometheus.Gauge
	registrations *prometheus.CounterVec
	lookups       *prometheus.CounterVec
	fallbacks     prometheus.Counter
}

// NewMetrics создаёт метрики и регистрирует их в reg.
// Если reg == nil, используется дефолтный регистр Prometheus.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		registered: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pheonix",
			Name:      "blocks_registered",
			Help:      "Количество типов блоков в реестре.",
		}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pheonix",
			Name:      "block_registrations_total",
			Help:      "Попытки регистрации типов блоков по результату.",
		}, []string{"result"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pheonix",
			Name:      "block_lookups_total",
			Help:      "Поиски типа блока по идентификатору.",
		}, []string{"result"}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pheonix",
			Name:      "block_fallbacks_total",
			Help:      "Сколько раз потребителю был подставлен запасной тип блока.",
		}),
	}

	reg.MustRegister(m.registered, m.registrations, m.lookups, m.fallbacks)
	return m
}

func (m *Metrics) observeRegistration(result string, total int) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(result).Inc()
	m.registered.Set(float64(total))
}

func (m *Metrics) observeLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.lookups.WithLabelValues("hit").Inc()
	} else {
		m.lookups.WithLabelValues("miss").Inc()
	}
}

func (m *Metrics) observeFallback() {
	if m == nil {
		return
	}
	m.fallbacks.Inc()
}
