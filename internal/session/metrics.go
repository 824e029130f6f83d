package session

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Session store metrics. All carry a "store" label holding the Group from ProviderConfig.
var (
	HitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_store_hits_total",
			Help: "Total number of session lookups that found stored panel state.",
		},
		[]string{"store"},
	)

	MissesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_store_misses_total",
			Help: "Total number of session lookups that found nothing.",
		},
		[]string{"store"},
	)

	EvictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_store_evictions_total",
			Help: "Total number of sessions evicted or removed from the store.",
		},
		[]string{"store"},
	)
)

func init() {
	prometheus.MustRegister(
		HitsTotal,
		MissesTotal,
		EvictionsTotal,
	)
}

// entriesCollector reports the live session count of one group by calling
// lenFunc at scrape time.
type entriesCollector struct {
	desc    *prometheus.Desc
	lenFunc func() int
}

func (c *entriesCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *entriesCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(c.lenFunc()))
}

var (
	entriesCollectorMu sync.Mutex
	entriesCollectors  = make(map[string]*entriesCollector)
	// entriesReg is swapped for an isolated registry in tests.
	entriesReg prometheus.Registerer = prometheus.DefaultRegisterer
)

// registerEntriesCollector registers the entries collector for a group,
// replacing any collector previously registered for it.
func registerEntriesCollector(group string, lenFunc func() int) *entriesCollector {
	desc := prometheus.NewDesc(
		"session_store_entries",
		"Current number of page sessions in the store.",
		nil,
		prometheus.Labels{"store": group},
	)
	c := &entriesCollector{desc: desc, lenFunc: lenFunc}

	entriesCollectorMu.Lock()
	defer entriesCollectorMu.Unlock()

	if old, ok := entriesCollectors[group]; ok {
		entriesReg.Unregister(old)
	}
	entriesCollectors[group] = c
	_ = entriesReg.Register(c)
	return c
}

// unregisterEntriesCollector removes the entries collector for the given group.
func unregisterEntriesCollector(group string) {
	entriesCollectorMu.Lock()
	defer entriesCollectorMu.Unlock()

	if c, ok := entriesCollectors[group]; ok {
		entriesReg.Unregister(c)
		delete(entriesCollectors, group)
	}
}
