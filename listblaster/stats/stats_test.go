package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_counter_accumulates(t *testing.T) {
	c := NewCounter()
	c.Add(100)
	c.Add(250)
	assert.Eventually(t, func() bool {
		return c.GetValue() == 350
	}, time.Second, time.Millisecond)
}

func Test_latency_collector_count(t *testing.T) {
	lc := NewLatencyCollector()
	for i := 0; i < 500; i++ {
		lc.Add(time.Duration(i) * time.Nanosecond)
	}
	lc.Close()
	assert.Equal(t, float64(500), lc.GetCount(), "they should be equal")
	rows, values := lc.GetResults()
	assert.Equal(t, len(rows), len(values))
	assert.NotEmpty(t, lc.String())
}
