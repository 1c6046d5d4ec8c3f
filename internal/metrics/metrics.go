package metrics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector инкапсулирует Prometheus-метрики прохода генерации.
// Метрики регистрируются в собственном реестре, а не в глобальном.
// Все методы безопасны для nil-получателя.
type Collector struct {
	registry *prometheus.Registry

	filesWritten     *prometheus.CounterVec
	indexMerges      *prometheus.CounterVec
	indexFallbacks   *prometheus.CounterVec
	entitiesEmitted  *prometheus.CounterVec
	generateDuration prometheus.Histogram
}

// NewCollector создаёт метрики и регистрирует их в новом реестре
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		filesWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "addon",
			Name:      "files_written_total",
			Help:      "Число записанных артефактов по видам.",
		}, []string{"kind"}),
		indexMerges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "addon",
			Name:      "index_merges_total",
			Help:      "Число слияний записей в общие индексные документы.",
		}, []string{"index"}),
		indexFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "addon",
			Name:      "index_default_fallbacks_total",
			Help:      "Сколько раз индекс отсутствовал или не разобрался и был заменён документом по умолчанию.",
		}, []string{"index"}),
		entitiesEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "addon",
			Name:      "entities_emitted_total",
			Help:      "Число сгенерированных предметов и блоков.",
		}, []string{"kind"}),
		generateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "addon",
			Name:      "generate_duration_seconds",
			Help:      "Длительность прохода генерации.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
	}

	c.registry.MustRegister(c.filesWritten, c.indexMerges, c.indexFallbacks, c.entitiesEmitted, c.generateDuration)
	return c
}

// Registry возвращает реестр для экспорта
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

func (c *Collector) FileWritten(kind string) {
	if c == nil {
		return
	}
	c.filesWritten.WithLabelValues(kind).Inc()
}

func (c *Collector) IndexMerged(index string, fellBack bool) {
	if c == nil {
		return
	}
	c.indexMerges.WithLabelValues(index).Inc()
	if fellBack {
		c.indexFallbacks.WithLabelValues(index).Inc()
	}
}

func (c *Collector) EntityEmitted(kind string) {
	if c == nil {
		return
	}
	c.entitiesEmitted.WithLabelValues(kind).Inc()
}

func (c *Collector) ObserveGenerate(d time.Duration) {
	if c == nil {
		return
	}
	c.generateDuration.Observe(d.Seconds())
}

// FilesWrittenCounter счётчик записанных файлов вида kind
func (c *Collector) FilesWrittenCounter(kind string) prometheus.Counter {
	return c.filesWritten.WithLabelValues(kind)
}

// FallbackCounter счётчик подмен индекса документом по умолчанию
func (c *Collector) FallbackCounter(index string) prometheus.Counter {
	return c.indexFallbacks.WithLabelValues(index)
}

// Summary собирает счётчики в короткую строку для лога: "name{label}=value ..."
func (c *Collector) Summary() (string, error) {
	if c == nil {
		return "", nil
	}
	families, err := c.registry.Gather()
	if err != nil {
		return "", fmt.Errorf("ошибка сбора метрик: %w", err)
	}

	var parts []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() == nil {
				continue
			}
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetValue())
			}
			parts = append(parts, fmt.Sprintf("%s{%s}=%g", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()))
		}
	}
	sort.Strings(parts)
	return strings.Join(parts, " "), nil
}
