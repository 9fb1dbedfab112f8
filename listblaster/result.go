package listblaster

import "time"

// Variant labels as they appear in results and reports.
const (
	FasterArray  = "array"
	FasterLinked = "linked"
	FasterTie    = "tie"
)

// OperationResult is one measured battery entry. Faster and SpeedRatio are
// derived from the two raw durations once, at construction.
type OperationResult struct {
	Name       string        `json:"name"`
	Operations int           `json:"operations"`
	ArrayTime  time.Duration `json:"array_ns"`
	LinkedTime time.Duration `json:"linked_ns"`
	Faster     string        `json:"faster"`
	SpeedRatio float64       `json:"speed_ratio"`
}

// NewOperationResult : build a result with its derived fields
func NewOperationResult(name string, operations int, arrayTime, linkedTime, tolerance time.Duration) OperationResult {
	return OperationResult{
		Name:       name,
		Operations: operations,
		ArrayTime:  arrayTime,
		LinkedTime: linkedTime,
		Faster:     fasterOf(arrayTime, linkedTime, tolerance),
		SpeedRatio: speedRatio(arrayTime, linkedTime),
	}
}

// Differences under the tolerance are noise, not a winner. Equal durations
// are a tie even with zero tolerance.
func fasterOf(arrayTime, linkedTime, tolerance time.Duration) string {
	diff := arrayTime - linkedTime
	if diff < 0 {
		diff = -diff
	}
	if diff < tolerance || arrayTime == linkedTime {
		return FasterTie
	}
	if arrayTime < linkedTime {
		return FasterArray
	}
	return FasterLinked
}

// speedRatio is max/min of the two durations, 0 when either is 0.
func speedRatio(arrayTime, linkedTime time.Duration) float64 {
	if arrayTime == 0 || linkedTime == 0 {
		return 0
	}
	if arrayTime < linkedTime {
		return float64(linkedTime) / float64(arrayTime)
	}
	return float64(arrayTime) / float64(linkedTime)
}

// ResultSet is the ordered battery output for one operation count. Order
// matches the battery order in Executor.Run.
type ResultSet struct {
	OperationCount int               `json:"operation_count"`
	Results        []OperationResult `json:"results"`
}
