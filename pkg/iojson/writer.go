package iojson

import (
	"encoding/json"
	"io"
)

// WriteLine encodes obj as a single compact JSON line. Intended for
// line-oriented CLI output that downstream tools can stream.
func WriteLine(w io.Writer, obj any) error {
	return json.NewEncoder(w).Encode(obj)
}

// Write encodes obj as indented JSON for human-facing output.
func Write(w io.Writer, obj any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(obj)
}
