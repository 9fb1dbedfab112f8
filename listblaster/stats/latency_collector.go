package stats

import (
	"sync"
	"time"

	"github.com/sasile/gohistogram"
)

// LatencyCollector : collect single call latencies into a weighted histogram
type LatencyCollector struct {
	weighHist *gohistogram.NumericHistogram
	chValues  chan time.Duration
	wg        sync.WaitGroup
}

// NewLatencyCollector : return new collector, draining in the background
func NewLatencyCollector() *LatencyCollector {
	l := &LatencyCollector{
		weighHist: gohistogram.NewHistogram(50),
		chValues:  make(chan time.Duration, 400000),
	}
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		for v := range l.chValues {
			l.weighHist.Add(float64(v.Nanoseconds()))
		}
	}()
	return l
}

// Add : add value to latency collector
func (l *LatencyCollector) Add(v time.Duration) {
	l.chValues <- v
}

// Close : stop the feed and wait for the drain; call before reading results
func (l *LatencyCollector) Close() {
	close(l.chValues)
	l.wg.Wait()
}

// GetResults : return hist as array
func (l *LatencyCollector) GetResults() ([]string, []float64) {
	return l.weighHist.GetHistAsArray()
}

// GetCount : latency collector hist count
func (l *LatencyCollector) GetCount() float64 {
	return l.weighHist.Count()
}

// String : latency collector hist string
func (l *LatencyCollector) String() string {
	return l.weighHist.String()
}
