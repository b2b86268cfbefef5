package alloc

import (
	"unsafe"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type instrumented struct {
	next Allocator

	allocations   prometheus.Counter
	deallocations prometheus.Counter
	failures      *prometheus.CounterVec
	liveBytes     prometheus.Gauge
}

// Instrument wraps a so that allocation traffic is exported to reg. The
// live-bytes gauge only falls when blocks are deallocated, so owning
// records dropped without being freed show up as a steady climb.
func Instrument(a Allocator, reg prometheus.Registerer) Allocator {
	f := promauto.With(reg)
	return &instrumented{
		next: a,
		allocations: f.NewCounter(prometheus.CounterOpts{
			Namespace: "flatabi",
			Subsystem: "alloc",
			Name:      "allocations_total",
			Help:      "Total number of blocks allocated.",
		}),
		deallocations: f.NewCounter(prometheus.CounterOpts{
			Namespace: "flatabi",
			Subsystem: "alloc",
			Name:      "deallocations_total",
			Help:      "Total number of blocks deallocated.",
		}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flatabi",
			Subsystem: "alloc",
			Name:      "failures_total",
			Help:      "Total number of failed allocator calls.",
		}, []string{"op"}),
		liveBytes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "flatabi",
			Subsystem: "alloc",
			Name:      "live_bytes",
			Help:      "Bytes allocated and not yet deallocated.",
		}),
	}
}

func (i *instrumented) Allocate(size, align uintptr) (unsafe.Pointer, error) {
	p, err := i.next.Allocate(size, align)
	if err != nil {
		i.failures.WithLabelValues("allocate").Inc()
		return nil, err
	}
	i.allocations.Inc()
	i.liveBytes.Add(float64(size))
	return p, nil
}

func (i *instrumented) Deallocate(p unsafe.Pointer, size, align uintptr) error {
	if err := i.next.Deallocate(p, size, align); err != nil {
		i.failures.WithLabelValues("deallocate").Inc()
		return err
	}
	i.deallocations.Inc()
	i.liveBytes.Sub(float64(size))
	return nil
}
