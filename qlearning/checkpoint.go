package qlearning

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
)

// ErrMalformedCheckpoint indicates a checkpoint file's keys were not
// decimal state ids.
var ErrMalformedCheckpoint = errors.New("qlearning: malformed checkpoint")

// jsonFloat64 marshals +Inf/-Inf/NaN as sentinel strings, since
// encoding/json rejects them outright and every fresh row in a Table is
// all +Inf (the "untried action" sentinel, see dense_table.go and
// map_table.go).
type jsonFloat64 float64

func (f jsonFloat64) MarshalJSON() ([]byte, error) {
	switch {
	case math.IsInf(float64(f), 1):
		return json.Marshal("+Inf")
	case math.IsInf(float64(f), -1):
		return json.Marshal("-Inf")
	case math.IsNaN(float64(f)):
		return json.Marshal("NaN")
	default:
		return json.Marshal(float64(f))
	}
}

func (f *jsonFloat64) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case "+Inf":
			*f = jsonFloat64(math.Inf(1))
		case "-Inf":
			*f = jsonFloat64(math.Inf(-1))
		case "NaN":
			*f = jsonFloat64(math.NaN())
		default:
			return fmt.Errorf("%w: value %q", ErrMalformedCheckpoint, s)
		}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedCheckpoint, err)
	}
	*f = jsonFloat64(v)
	return nil
}

// Checkpointer persists and restores a PersistentTable's visited rows.
// Per spec.md §6, the wire format is implementation-defined — only
// self-describing enough to reload — not a prescribed layout.
type Checkpointer interface {
	Save(path string, table PersistentTable) error
	Load(path string, table PersistentTable) error
}

// JSONCheckpointer is the one required Checkpointer implementation: a
// flat JSON object mapping decimal state id strings to their per-action
// value row.
type JSONCheckpointer struct{}

// Save writes every visited row of table to path as JSON.
func (JSONCheckpointer) Save(path string, table PersistentTable) error {
	rows := table.Rows()
	encoded := make(map[string][]jsonFloat64, len(rows))
	for state, row := range rows {
		converted := make([]jsonFloat64, len(row))
		for i, v := range row {
			converted[i] = jsonFloat64(v)
		}
		encoded[strconv.FormatInt(state, 10)] = converted
	}

	data, err := json.MarshalIndent(encoded, "", "  ")
	if err != nil {
		return fmt.Errorf("qlearning: marshal checkpoint: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("qlearning: write checkpoint: %w", err)
	}
	return nil
}

// Load reads path and restores every row into table via SetRow.
func (JSONCheckpointer) Load(path string, table PersistentTable) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("qlearning: read checkpoint: %w", err)
	}

	var encoded map[string][]jsonFloat64
	if err := json.Unmarshal(data, &encoded); err != nil {
		return fmt.Errorf("qlearning: unmarshal checkpoint: %w", err)
	}

	for key, row := range encoded {
		state, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: key %q", ErrMalformedCheckpoint, key)
		}
		converted := make([]float64, len(row))
		for i, v := range row {
			converted[i] = float64(v)
		}
		table.SetRow(state, converted)
	}
	return nil
}
