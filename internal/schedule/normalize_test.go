package schedule

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTasks(t *testing.T) {
	tasks := DefaultTasks()
	require.Len(t, tasks, TaskCount)
	for i, task := range tasks {
		assert.Equal(t, i+1, task.ID)
		assert.Empty(t, task.Details)
		assert.Empty(t, task.CompletionDay)
		assert.Empty(t, task.Duration)
		assert.Empty(t, task.Comments)
	}
}

func TestNormalizeMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"null", "null"},
		{"truncated object", `{"notes": {"1": "hi"`},
		{"bare word", `garbage`},
		{"string wrapping invalid json", `"{not json}"`},
		{"number", `42`},
		{"array", `[1, 2, 3]`},
		{"empty string", `""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize([]byte(tt.raw))
			assert.Equal(t, Empty(), got)
		})
	}
}

func TestNormalizeObjectInput(t *testing.T) {
	raw := `{"notes": {"1": "standup", "15": "review"}, "tasks": [
		{"id": 1, "details": "inventory", "completionDay": "Monday", "duration": "2h", "comments": ""},
		{"id": 2, "details": "", "completionDay": "", "duration": "", "comments": ""},
		{"id": 3, "details": "", "completionDay": "", "duration": "", "comments": ""},
		{"id": 4, "details": "", "completionDay": "", "duration": "", "comments": ""},
		{"id": 5, "details": "", "completionDay": "", "duration": "", "comments": ""},
		{"id": 6, "details": "", "completionDay": "", "duration": "", "comments": ""},
		{"id": 7, "details": "", "completionDay": "", "duration": "", "comments": ""}
	]}`

	got := Normalize([]byte(raw))
	require.Len(t, got.Tasks, TaskCount)
	assert.Equal(t, "inventory", got.Tasks[0].Details)
	assert.Equal(t, "Monday", got.Tasks[0].CompletionDay)
	assert.Equal(t, map[string]any{"1": "standup", "15": "review"}, got.Notes)
}

func TestNormalizeDoubleEncodedString(t *testing.T) {
	inner := `{"notes": {"3": "holiday"}, "tasks": []}`
	raw, err := json.Marshal(inner)
	require.NoError(t, err)

	got := Normalize(raw)
	assert.Equal(t, map[string]any{"3": "holiday"}, got.Notes)
	assert.Equal(t, DefaultTasks(), got.Tasks)
}

func TestNormalizeTaskLength(t *testing.T) {
	makeTasks := func(n int) string {
		raw, _ := json.Marshal(map[string]any{"tasks": makeTaskSlice(n)})
		return string(raw)
	}

	for _, n := range []int{0, 1, 6, 8, 14} {
		got := Normalize([]byte(makeTasks(n)))
		assert.Equal(t, DefaultTasks(), got.Tasks, "length %d must be replaced wholesale", n)
	}

	got := Normalize([]byte(makeTasks(7)))
	require.Len(t, got.Tasks, TaskCount)
	assert.Equal(t, "task 3", got.Tasks[2].Details)
}

func makeTaskSlice(n int) []Task {
	tasks := make([]Task, n)
	for i := range tasks {
		tasks[i] = Task{ID: i + 1, Details: "task " + strconv.Itoa(i+1)}
	}
	return tasks
}

func TestNormalizeMissingFields(t *testing.T) {
	got := Normalize([]byte(`{}`))
	assert.Equal(t, Empty(), got)

	got = Normalize([]byte(`{"notes": null, "tasks": null}`))
	assert.Equal(t, Empty(), got)

	got = Normalize([]byte(`{"notes": {"2": "wfh"}}`))
	assert.Equal(t, map[string]any{"2": "wfh"}, got.Notes)
	assert.Equal(t, DefaultTasks(), got.Tasks)
}

func TestNormalizeNotesPassThrough(t *testing.T) {
	// Note values are not validated; non-string values survive.
	got := Normalize([]byte(`{"notes": {"1": 5, "2": {"nested": true}}}`))
	assert.Equal(t, float64(5), got.Notes["1"])
	assert.Equal(t, map[string]any{"nested": true}, got.Notes["2"])
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		`{"notes": {"1": "standup"}, "tasks": []}`,
		`{"notes": {}, "tasks": null}`,
		`not even json`,
		`{"notes": {"9": "review"}, "tasks": [
			{"id": 1, "details": "a", "completionDay": "Tue", "duration": "1h", "comments": "x"},
			{"id": 2}, {"id": 3}, {"id": 4}, {"id": 5}, {"id": 6}, {"id": 7}
		]}`,
	}
	for _, in := range inputs {
		first := Normalize([]byte(in))
		stored, err := first.MarshalBytes()
		require.NoError(t, err)
		second := Normalize(stored)
		assert.Equal(t, first, second)
	}
}
