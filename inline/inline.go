// Package inline renders machine-readable output for scripting.
package inline

import (
	"encoding/json"
	"io"
)

// Write encodes documents as a JSON array, or only the first one when first is set.
// An empty list is written as [] even when first is set.
func Write[T any](out io.Writer, documents []T, first bool) error {
	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)

	if documents == nil {
		documents = []T{}
	}

	if first && len(documents) > 0 {
		return encoder.Encode(documents[0])
	}
	return encoder.Encode(documents)
}
