package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	uuid "github.com/nu7hatch/gouuid"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"github.com/v3io/list_blaster/listblaster"
)

// Unit selects the duration column scale.
type Unit int

const (
	// Nanoseconds : raw integer durations
	Nanoseconds Unit = iota
	// Milliseconds : durations as fractional milliseconds
	Milliseconds
)

// Recommendation strings emitted by the summary.
const (
	RecommendArray    = "array-backed sequence"
	RecommendLinked   = "linked sequence"
	RecommendWorkload = "depends on workload"
)

// Summary : battery win tally for one result set
type Summary struct {
	ArrayWins      int
	LinkedWins     int
	Ties           int
	Recommendation string
}

// Summarize : tally wins per variant and pick the majority recommendation
func Summarize(set listblaster.ResultSet) Summary {
	var s Summary
	for _, r := range set.Results {
		switch r.Faster {
		case listblaster.FasterArray:
			s.ArrayWins++
		case listblaster.FasterLinked:
			s.LinkedWins++
		default:
			s.Ties++
		}
	}
	switch {
	case s.ArrayWins > s.LinkedWins:
		s.Recommendation = RecommendArray
	case s.LinkedWins > s.ArrayWins:
		s.Recommendation = RecommendLinked
	default:
		s.Recommendation = RecommendWorkload
	}
	return s
}

// Reporter renders result sets as fixed width tables and summaries.
type Reporter struct {
	Out io.Writer
}

// NewReporter : reporter writing to out, stdout when nil
func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	return &Reporter{Out: out}
}

// RenderEnvironment : print run id and host facts ahead of the first table
func (rep *Reporter) RenderEnvironment(runID string) {
	host, _ := os.Hostname()
	fmt.Fprintf(rep.Out, "run %s on %s\n", runID, host)
	if info, err := cpu.Info(); err == nil && len(info) > 0 {
		fmt.Fprintf(rep.Out, "cpu: %s (%d logical)\n", info[0].ModelName, len(info))
	}
	if v, err := mem.VirtualMemory(); err == nil {
		fmt.Fprintf(rep.Out, "memory: %d MB total\n", v.Total/1024/1024)
	}
}

// RenderTable : one row per operation in the requested unit
func (rep *Reporter) RenderTable(set listblaster.ResultSet, unit Unit) {
	unitLabel := "ns"
	if unit == Milliseconds {
		unitLabel = "ms"
	}
	fmt.Fprintf(rep.Out, "\nResults for %d operations (%s)\n", set.OperationCount, unitLabel)
	fmt.Fprintln(rep.Out, strings.Repeat("-", 96))
	fmt.Fprintf(rep.Out, "%-15s | %-10s | %15s | %15s | %10s | %-8s\n",
		"operation", "count", "array ("+unitLabel+")", "linked ("+unitLabel+")", "ratio", "faster")
	fmt.Fprintln(rep.Out, strings.Repeat("-", 96))
	for _, r := range set.Results {
		if unit == Milliseconds {
			fmt.Fprintf(rep.Out, "%-15s | %-10d | %15.3f | %15.3f | %10.1f | %-8s\n",
				r.Name, r.Operations,
				float64(r.ArrayTime.Nanoseconds())/1e6,
				float64(r.LinkedTime.Nanoseconds())/1e6,
				r.SpeedRatio, r.Faster)
		} else {
			fmt.Fprintf(rep.Out, "%-15s | %-10d | %15d | %15d | %10.1f | %-8s\n",
				r.Name, r.Operations,
				r.ArrayTime.Nanoseconds(),
				r.LinkedTime.Nanoseconds(),
				r.SpeedRatio, r.Faster)
		}
	}
}

// RenderSummary : print the win tally and recommendation for one set
func (rep *Reporter) RenderSummary(set listblaster.ResultSet) Summary {
	s := Summarize(set)
	fmt.Fprintf(rep.Out, "\nSummary for %d operations\n", set.OperationCount)
	fmt.Fprintln(rep.Out, strings.Repeat("-", 70))
	fmt.Fprintf(rep.Out, "array wins:  %d\n", s.ArrayWins)
	fmt.Fprintf(rep.Out, "linked wins: %d\n", s.LinkedWins)
	fmt.Fprintf(rep.Out, "ties:        %d\n", s.Ties)
	fmt.Fprintf(rep.Out, "recommendation: %s\n", s.Recommendation)
	switch s.Recommendation {
	case RecommendArray:
		fmt.Fprintln(rep.Out, "the array-backed sequence suits:")
		fmt.Fprintln(rep.Out, "  - frequent indexed access")
		fmt.Fprintln(rep.Out, "  - append/remove at the tail")
		fmt.Fprintln(rep.Out, "  - memory-constrained workloads")
	case RecommendLinked:
		fmt.Fprintln(rep.Out, "the linked sequence suits:")
		fmt.Fprintln(rep.Out, "  - frequent front/middle insertion and removal")
		fmt.Fprintln(rep.Out, "  - queue (FIFO) and stack (LIFO) patterns")
	default:
		fmt.Fprintln(rep.Out, "the variants are comparable; pick per dominant operation:")
		fmt.Fprintln(rep.Out, "  - indexed access: array-backed")
		fmt.Fprintln(rep.Out, "  - insertion/removal churn: linked")
	}
	return s
}

// NewRunID : uuid for one reporter invocation
func NewRunID() string {
	u, err := uuid.NewV4()
	if err != nil {
		return "unknown"
	}
	return u.String()
}

// WriteResultsFile : sectioned key=value results file, one section per count
func WriteResultsFile(path string, sets []listblaster.ResultSet) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, set := range sets {
		f.WriteString(fmt.Sprintf("[%d]\n", set.OperationCount))
		for _, r := range set.Results {
			f.WriteString(fmt.Sprintf("%s_operations=%d\n", r.Name, r.Operations))
			f.WriteString(fmt.Sprintf("%s_array_ns=%d\n", r.Name, r.ArrayTime.Nanoseconds()))
			f.WriteString(fmt.Sprintf("%s_linked_ns=%d\n", r.Name, r.LinkedTime.Nanoseconds()))
			f.WriteString(fmt.Sprintf("%s_faster=%s\n", r.Name, r.Faster))
		}
		f.WriteString("\n")
	}
	return nil
}

// WriteJSON : dump all result sets as indented JSON
func WriteJSON(path string, sets []listblaster.ResultSet) error {
	data, err := jsoniter.MarshalIndent(sets, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
