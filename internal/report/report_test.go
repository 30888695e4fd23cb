package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/rankvote/ballot"
	"github.com/katalvlaran/rankvote/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeWay returns the runoff over the nine-voter fixture with named candidates.
func threeWay(t *testing.T) *ballot.Runoff[string] {
	t.Helper()
	b, err := ballot.New([]string{"ada", "bo", "cy"}, []int{
		0, 1, 2,
		0, 2, 1,
		1, 2, 0,
		1, 0, 2,
		2, 0, 1,
		2, 1, 0,
		0, 2, 1,
		0, 2, 1,
		2, 0, 1,
	})
	require.NoError(t, err)

	return b.Runoff()
}

// TestRaw_WinnersOnly lists each leader on its own line.
func TestRaw_WinnersOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Raw(&buf, threeWay(t).All()))
	assert.Equal(t, "ada\ncy\nbo\n", buf.String())
}

// TestHuman_PlainLayout pins the uncoloured layout, including the descending sort.
func TestHuman_PlainLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Human{}.Render(&buf, threeWay(t).All()))

	want := "Winner #1: ada with 4 votes\n" +
		"bo: 3\n" +
		"cy: 2\n" +
		"\n\n" +
		"Winner #2: cy with 5 votes\n" +
		"bo: 4\n" +
		"\n\n" +
		"Winner #3: bo with 9 votes\n" +
		"\n\n"
	assert.Equal(t, want, buf.String())
}

// TestSortedOthers_StableDescending keeps label order among equal tallies.
func TestSortedOthers_StableDescending(t *testing.T) {
	round := ballot.Round[string]{Others: []ballot.Tally[string]{
		{Label: "a", Votes: 1}, {Label: "b", Votes: 5}, {Label: "c", Votes: 1}, {Label: "d", Votes: 5},
	}}

	got := report.SortedOthers(round)
	assert.Equal(t, []ballot.Tally[string]{
		{Label: "b", Votes: 5}, {Label: "d", Votes: 5}, {Label: "a", Votes: 1}, {Label: "c", Votes: 1},
	}, got)
	assert.Equal(t, "a", round.Others[0].Label, "input must not be reordered")
}

// failWriter fails every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestRenderers_PropagateWriteErrors stops at the first failed write.
func TestRenderers_PropagateWriteErrors(t *testing.T) {
	assert.EqualError(t, report.Raw(failWriter{}, threeWay(t).All()), "disk full")
	assert.EqualError(t, report.Human{Color: true}.Render(failWriter{}, threeWay(t).All()), "disk full")
}

// TestRaw_StopsPullingOnError leaves later rounds uncomputed after a failure.
func TestRaw_StopsPullingOnError(t *testing.T) {
	r := threeWay(t)
	require.Error(t, report.Raw(failWriter{}, r.All()))
	assert.Equal(t, 2, r.Remaining())
}
