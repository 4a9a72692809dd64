package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode"
)

// WriteJSON writes the batch results as one indented JSON array. Skipped
// (empty) documents are omitted.
func WriteJSON(w io.Writer, results []*Result) error {
	out := make([]*Result, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteJSONL writes one result envelope per line, the shape ingestion
// collaborators consume stream-wise.
func WriteJSONL(w io.Writer, results []*Result) error {
	enc := json.NewEncoder(w)
	for _, r := range results {
		if r == nil {
			continue
		}
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("write jsonl: %w", err)
		}
	}
	return nil
}

// ReadResults loads previously exported output, accepting either format.
func ReadResults(r io.Reader) ([]*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read results: %w", err)
	}
	data = bytes.TrimLeftFunc(data, unicode.IsSpace)
	if len(data) == 0 {
		return nil, nil
	}

	if data[0] == '[' {
		var results []*Result
		if err := json.Unmarshal(data, &results); err != nil {
			return nil, fmt.Errorf("read results: %w", err)
		}
		return results, nil
	}

	var results []*Result
	dec := json.NewDecoder(bytes.NewReader(data))
	for dec.More() {
		var res Result
		if err := dec.Decode(&res); err != nil {
			return nil, fmt.Errorf("read results: %w", err)
		}
		results = append(results, &res)
	}
	return results, nil
}
