package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"

	"github.com/v3io/list_blaster/listblaster"
)

func makeSet() listblaster.ResultSet {
	return listblaster.ResultSet{
		OperationCount: 1000,
		Results: []listblaster.OperationResult{
			listblaster.NewOperationResult("append", 1000, 500, 700, 0),
			listblaster.NewOperationResult("prepend", 100, 900, 300, 0),
			listblaster.NewOperationResult("get-random", 1000, 2000000, 9000000, 0),
			listblaster.NewOperationResult("remove-front", 100, 650, 651, 100),
		},
	}
}

func Test_summarize_tally(t *testing.T) {
	s := Summarize(makeSet())
	assert.Equal(t, 2, s.ArrayWins, "they should be equal")
	assert.Equal(t, 1, s.LinkedWins)
	assert.Equal(t, 1, s.Ties)
	assert.Equal(t, RecommendArray, s.Recommendation)
}

func Test_summarize_recommendation_branches(t *testing.T) {
	linked := listblaster.ResultSet{Results: []listblaster.OperationResult{
		listblaster.NewOperationResult("a", 1, 900, 300, 0),
		listblaster.NewOperationResult("b", 1, 900, 300, 0),
		listblaster.NewOperationResult("c", 1, 300, 900, 0),
	}}
	assert.Equal(t, RecommendLinked, Summarize(linked).Recommendation)

	even := listblaster.ResultSet{Results: []listblaster.OperationResult{
		listblaster.NewOperationResult("a", 1, 900, 300, 0),
		listblaster.NewOperationResult("b", 1, 300, 900, 0),
	}}
	assert.Equal(t, RecommendWorkload, Summarize(even).Recommendation)
}

func Test_render_table_rows(t *testing.T) {
	var buf bytes.Buffer
	rep := NewReporter(&buf)
	rep.RenderTable(makeSet(), Nanoseconds)
	out := buf.String()
	for _, name := range []string{"append", "prepend", "get-random", "remove-front"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "2000000")
	assert.Contains(t, out, "(ns)")

	buf.Reset()
	rep.RenderTable(makeSet(), Milliseconds)
	out = buf.String()
	assert.Contains(t, out, "2.000")
	assert.Contains(t, out, "9.000")
	assert.Contains(t, out, "(ms)")
}

func Test_render_summary(t *testing.T) {
	var buf bytes.Buffer
	s := NewReporter(&buf).RenderSummary(makeSet())
	assert.Equal(t, len(makeSet().Results), s.ArrayWins+s.LinkedWins+s.Ties)
	assert.Contains(t, buf.String(), RecommendArray)
}

func Test_run_and_summarize_end_to_end(t *testing.T) {
	ex := listblaster.NewExecutor(42, time.Microsecond, nil)
	set, err := ex.Run(1000)
	assert.NoError(t, err)
	s := Summarize(set)
	assert.Equal(t, 8, s.ArrayWins+s.LinkedWins+s.Ties, "they should be equal")
}

func Test_write_results_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.results")
	sets := []listblaster.ResultSet{makeSet()}
	assert.NoError(t, WriteResultsFile(path, sets))
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "[1000]")
	assert.Contains(t, out, "append_array_ns=500")
	assert.Contains(t, out, "prepend_faster=linked")
	assert.Contains(t, out, "remove-front_faster=tie")
}

func Test_write_json_round_trip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	sets := []listblaster.ResultSet{makeSet()}
	assert.NoError(t, WriteJSON(path, sets))
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	var decoded []listblaster.ResultSet
	assert.NoError(t, jsoniter.Unmarshal(data, &decoded))
	assert.Len(t, decoded, 1)
	assert.Equal(t, sets[0].OperationCount, decoded[0].OperationCount)
	assert.Len(t, decoded[0].Results, len(sets[0].Results))
}

func Test_run_id(t *testing.T) {
	id := NewRunID()
	assert.NotEmpty(t, id)
	assert.NotEqual(t, NewRunID(), id)
	assert.Equal(t, 4, strings.Count(id, "-"))
}
