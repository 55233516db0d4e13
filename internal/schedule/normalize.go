// Package schedule defines the canonical schedule payload and the tolerant
// normalizer that produces it from whatever clients or legacy rows contain.
package schedule

import (
	"bytes"
	"encoding/json"
	"log/slog"
)

// TaskCount is the fixed number of weekly task slots per schedule.
const TaskCount = 7

// Task is one of seven fixed weekly task slots. Identity is positional
// (ID 1..7); only field contents change.
type Task struct {
	ID            int    `json:"id"`
	Details       string `json:"details"`
	CompletionDay string `json:"completionDay"`
	Duration      string `json:"duration"`
	Comments      string `json:"comments"`
}

// Data is the canonical schedule payload: day-keyed free-text notes plus
// exactly TaskCount weekly tasks.
type Data struct {
	Notes map[string]any `json:"notes"`
	Tasks []Task         `json:"tasks"`
}

// DefaultTasks returns a fresh sequence of TaskCount empty tasks with
// IDs 1..TaskCount.
func DefaultTasks() []Task {
	tasks := make([]Task, TaskCount)
	for i := range tasks {
		tasks[i].ID = i + 1
	}
	return tasks
}

// Empty returns a canonical payload with no notes and default tasks.
func Empty() Data {
	return Data{Notes: map[string]any{}, Tasks: DefaultTasks()}
}

// Normalize converts raw JSON into canonical Data. It is total: malformed
// input is repaired by substituting defaults, never surfaced as an error.
// Accepted inputs are a JSON object, a JSON string wrapping an encoded
// object (clients double-encode), or nothing at all.
//
// Notes pass through unvalidated. Tasks are kept only when the input holds
// a well-formed sequence of exactly TaskCount entries; anything else is
// replaced wholesale by DefaultTasks, never merged.
func Normalize(raw []byte) Data {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Empty()
	}

	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			slog.Error("schedule data parse failed, substituting defaults", "error", err)
			return Empty()
		}
		trimmed = bytes.TrimSpace([]byte(inner))
		if len(trimmed) == 0 {
			return Empty()
		}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		slog.Error("schedule data parse failed, substituting defaults", "error", err)
		return Empty()
	}

	out := Empty()

	if rawNotes, ok := fields["notes"]; ok {
		var notes map[string]any
		if err := json.Unmarshal(rawNotes, &notes); err == nil && notes != nil {
			out.Notes = notes
		}
	}

	if rawTasks, ok := fields["tasks"]; ok {
		var tasks []Task
		if err := json.Unmarshal(rawTasks, &tasks); err == nil && len(tasks) == TaskCount {
			out.Tasks = tasks
		}
	}

	return out
}

// MarshalBytes serializes canonical Data for storage. Data only ever holds
// JSON-decoded values, so failure here indicates a programming error.
func (d Data) MarshalBytes() ([]byte, error) {
	return json.Marshal(d)
}
