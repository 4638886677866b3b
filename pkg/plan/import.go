package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadJSON decodes a plan from r and validates it.
//
// ReadJSON returns an error if the JSON is malformed, the version is
// unsupported, the path string fails validation, or the configuration is
// inconsistent. The returned plan is independent of r and can be modified
// safely after ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Plan, error) {
	var p Plan
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// ImportJSON reads a JSON file at path and returns the decoded plan.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
