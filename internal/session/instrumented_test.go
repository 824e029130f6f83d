package session

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// getCounterVecValue reads the current value of a CounterVec for the given label.
func getCounterVecValue(cv *prometheus.CounterVec, label string) float64 {
	c, err := cv.GetMetricWithLabelValues(label)
	if err != nil {
		return 0
	}
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func newInstrumentedTestStore(t *testing.T, group string) Store {
	t.Helper()
	s, err := New("memory", ProviderConfig{Size: 10, TTL: time.Hour, Group: group})
	if err != nil {
		t.Fatalf("New instrumented store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestInstrumentedStore_HitsAndMisses(t *testing.T) {
	s := newInstrumentedTestStore(t, "test-hits")
	ctx := context.Background()

	hitsBefore := getCounterVecValue(HitsTotal, "test-hits")
	missesBefore := getCounterVecValue(MissesTotal, "test-hits")

	_, _ = s.Load(ctx, "absent")
	s.Save(ctx, "present", openEpisodes)
	_, _ = s.Load(ctx, "present")

	if diff := getCounterVecValue(HitsTotal, "test-hits") - hitsBefore; diff != 1 {
		t.Errorf("Expected hits to increment by 1, got diff %.0f", diff)
	}
	if diff := getCounterVecValue(MissesTotal, "test-hits") - missesBefore; diff != 1 {
		t.Errorf("Expected misses to increment by 1, got diff %.0f", diff)
	}
}

func TestInstrumentedStore_Evictions(t *testing.T) {
	var evicted []string
	s, err := New("memory", ProviderConfig{Size: 1, TTL: time.Hour, Group: "test-evict", OnEvict: func(id string) {
		evicted = append(evicted, id)
	}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()
	ctx := context.Background()

	before := getCounterVecValue(EvictionsTotal, "test-evict")
	s.Save(ctx, "a", openEpisodes)
	s.Save(ctx, "b", openEpisodes) // evicts "a"

	if diff := getCounterVecValue(EvictionsTotal, "test-evict") - before; diff != 1 {
		t.Errorf("Expected evictions to increment by 1, got diff %.0f", diff)
	}
	if len(evicted) != 1 || evicted[0] != "a" {
		t.Errorf("Expected original OnEvict to fire for 'a', got %v", evicted)
	}
}

func TestInstrumentedStore_EntriesLazy(t *testing.T) {
	reg := prometheus.NewRegistry()
	origReg := entriesReg
	entriesReg = reg
	t.Cleanup(func() { entriesReg = origReg })

	s := newInstrumentedTestStore(t, "test-entries")
	ctx := context.Background()

	gatherEntries := func() float64 {
		mfs, _ := reg.Gather()
		for _, mf := range mfs {
			if mf.GetName() != "session_store_entries" {
				continue
			}
			for _, m := range mf.GetMetric() {
				for _, lp := range m.GetLabel() {
					if lp.GetName() == "store" && lp.GetValue() == "test-entries" {
						return m.GetGauge().GetValue()
					}
				}
			}
		}
		return -1
	}

	if v := gatherEntries(); v != 0 {
		t.Fatalf("Expected 0 entries before Save, got %.0f", v)
	}

	s.Save(ctx, "x", openEpisodes)
	s.Save(ctx, "y", openEpisodes)

	if v := gatherEntries(); v != 2 {
		t.Errorf("Expected 2 entries after two Saves, got %.0f", v)
	}
}

func TestInstrumentedStore_Close_UnregistersEntries(t *testing.T) {
	reg := prometheus.NewRegistry()
	origReg := entriesReg
	entriesReg = reg
	t.Cleanup(func() { entriesReg = origReg })

	s, err := New("memory", ProviderConfig{Size: 10, TTL: time.Hour, Group: "test-close"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	entriesCollectorMu.Lock()
	_, registered := entriesCollectors["test-close"]
	entriesCollectorMu.Unlock()
	if !registered {
		t.Fatal("Expected entries collector to be registered after New()")
	}

	_ = s.Close()

	entriesCollectorMu.Lock()
	_, registered = entriesCollectors["test-close"]
	entriesCollectorMu.Unlock()
	if registered {
		t.Fatal("Expected entries collector to be unregistered after Close()")
	}
}
