/*Package listblaster Copyright 2016 Iguazio.io Systems Ltd.

Licensed under the Apache License, Version 2.0 (the "License") with
an addition restriction as set forth herein. You may not use this
file except in compliance with the License. You may obtain a copy of
the License at http://www.apache.org/licenses/LICENSE-2.0.

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
implied. See the License for the specific language governing
permissions and limitations under the License.

In addition, you may not use the software for any purposes that are
illegal under applicable law, and the grant of the foregoing license
under the Apache 2.0 license is conditioned upon your compliance with
such restriction.
*/
package listblaster

import (
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/v3io/list_blaster/listblaster/sequence"
	"github.com/v3io/list_blaster/listblaster/stats"
)

// Operation names, in battery order.
const (
	OpAppend        = "append"
	OpPrepend       = "prepend"
	OpInsertMiddle  = "insert-middle"
	OpGetRandom     = "get-random"
	OpGetSequential = "get-sequential"
	OpRemoveFront   = "remove-front"
	OpRemoveBack    = "remove-back"
	OpRemoveMiddle  = "remove-middle"
)

// Executor runs the fixed operation battery against a pair of sequence
// implementations and collects one OperationResult per block. Containers
// are constructed fresh per block; pre-population stays outside the timed
// interval. The two variants run back-to-back, never interleaved.
type Executor struct {
	NewArray     sequence.Factory
	NewLinked    sequence.Factory
	TieTolerance time.Duration
	Counter      *stats.Counter
	rnd          *rand.Rand
}

// NewExecutor : executor over the default array/linked pair, with its own
// seeded generator so runs are reproducible
func NewExecutor(seed int64, tolerance time.Duration, counter *stats.Counter) *Executor {
	return &Executor{
		NewArray:     func() sequence.Sequence { return sequence.NewArray() },
		NewLinked:    func() sequence.Sequence { return sequence.NewLinked() },
		TieTolerance: tolerance,
		Counter:      counter,
		rnd:          rand.New(rand.NewSource(seed)),
	}
}

// Run executes the 8-block battery for one operation count and returns the
// results in battery order. Rejects non-positive counts before any
// container is built or timer started.
func (ex *Executor) Run(operationCount int) (ResultSet, error) {
	if operationCount <= 0 {
		return ResultSet{}, fmt.Errorf("operation count must be positive, got %d", operationCount)
	}
	log.Debug("starting battery, operation count ", operationCount)

	// Insert and remove blocks run at a reduced magnitude: their worst case
	// is linear per call for one of the variants.
	tenth := operationCount / 10
	twentieth := operationCount / 20

	results := []OperationResult{
		ex.compare(OpAppend, 0, operationCount, func(s sequence.Sequence, i int) {
			s.Append(i)
		}),
		ex.compare(OpPrepend, tenth, tenth, func(s sequence.Sequence, i int) {
			s.InsertAt(0, i)
		}),
		ex.compare(OpInsertMiddle, tenth, tenth, func(s sequence.Sequence, i int) {
			s.InsertAt(s.Len()/2, i)
		}),
		ex.compare(OpGetRandom, operationCount, operationCount, func(s sequence.Sequence, i int) {
			s.GetAt(ex.rnd.Intn(s.Len()))
		}),
		ex.compare(OpGetSequential, operationCount, operationCount, func(s sequence.Sequence, i int) {
			s.GetAt(i % s.Len())
		}),
		ex.compare(OpRemoveFront, 2*tenth, tenth, func(s sequence.Sequence, i int) {
			if s.Len() > 0 {
				s.RemoveAt(0)
			}
		}),
		ex.compare(OpRemoveBack, 2*tenth, tenth, func(s sequence.Sequence, i int) {
			if s.Len() > 0 {
				s.RemoveAt(s.Len() - 1)
			}
		}),
		ex.compare(OpRemoveMiddle, 3*twentieth, twentieth, func(s sequence.Sequence, i int) {
			if s.Len() > 0 {
				s.RemoveAt(s.Len() / 2)
			}
		}),
	}
	log.Debug("battery done, operation count ", operationCount)
	return ResultSet{OperationCount: operationCount, Results: results}, nil
}

// compare times one block on each variant, array first then linked.
func (ex *Executor) compare(name string, prefill, iterations int, op func(s sequence.Sequence, i int)) OperationResult {
	arrayTime := ex.timeBlock(ex.NewArray, prefill, iterations, op)
	linkedTime := ex.timeBlock(ex.NewLinked, prefill, iterations, op)
	log.Debugf("%s: array=%v linked=%v", name, arrayTime, linkedTime)
	return NewOperationResult(name, iterations, arrayTime, linkedTime, ex.TieTolerance)
}

func (ex *Executor) timeBlock(factory sequence.Factory, prefill, iterations int, op func(s sequence.Sequence, i int)) time.Duration {
	s := factory()
	for i := 0; i < prefill; i++ {
		s.Append(i)
	}
	start := time.Now()
	for i := 0; i < iterations; i++ {
		op(s, i)
	}
	elapsed := time.Since(start)
	if ex.Counter != nil {
		ex.Counter.Add(int64(iterations))
	}
	return elapsed
}

// LatencyProfile times individual random reads on each variant into two
// histograms. This is a separate, unmeasured pass: it never runs inside a
// battery block and does not touch the ResultSet.
func (ex *Executor) LatencyProfile(operationCount int) (*stats.LatencyCollector, *stats.LatencyCollector, error) {
	if operationCount <= 0 {
		return nil, nil, fmt.Errorf("operation count must be positive, got %d", operationCount)
	}
	arrayHist := stats.NewLatencyCollector()
	linkedHist := stats.NewLatencyCollector()
	ex.profileReads(ex.NewArray, operationCount, arrayHist)
	ex.profileReads(ex.NewLinked, operationCount, linkedHist)
	arrayHist.Close()
	linkedHist.Close()
	return arrayHist, linkedHist, nil
}

func (ex *Executor) profileReads(factory sequence.Factory, operationCount int, lc *stats.LatencyCollector) {
	s := factory()
	for i := 0; i < operationCount; i++ {
		s.Append(i)
	}
	for i := 0; i < operationCount; i++ {
		idx := ex.rnd.Intn(s.Len())
		start := time.Now()
		s.GetAt(idx)
		lc.Add(time.Since(start))
	}
}
