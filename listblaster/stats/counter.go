package stats

import (
	"sync/atomic"
)

// Counter accumulates performed-operation totals off the hot path. Values
// are drained from a buffered channel so Add never blocks a timed loop.
type Counter struct {
	count    int64
	chValues chan int64
}

// Add : add value to counter
func (sc *Counter) Add(value int64) {
	sc.chValues <- value
}

// GetValue : get counter value
func (sc *Counter) GetValue() int64 {
	value := atomic.LoadInt64(&sc.count)
	return value
}

func (sc *Counter) start() {
	go func() {
		for v := range sc.chValues {
			atomic.AddInt64(&sc.count, v)
		}
	}()
}

// NewCounter : return new counter
func NewCounter() *Counter {
	counter := &Counter{
		chValues: make(chan int64, 5000),
	}
	counter.start()
	return counter
}
