package profile

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Patch returns a copy of doc with the value at a dotted JSON path replaced,
// e.g. "settings.theme", "personalInfo.contact.email" or "projects.0.name".
// The path must already exist; record ids and the schema version cannot be
// patched.
func Patch(doc *Document, path string, value any) (*Document, error) {
	segments := strings.Split(path, ".")
	if path == "" || len(segments) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	last := segments[len(segments)-1]
	if last == "id" || path == "schemaVersion" {
		return nil, fmt.Errorf("%w: %s", ErrImmutableField, path)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document for patch: %w", err)
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("decode document for patch: %w", err)
	}

	// Round-trip the value so typed Go values become plain JSON values.
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: value for %s: %v", ErrInvalidPath, path, err)
	}
	var plain any
	if err := json.Unmarshal(encoded, &plain); err != nil {
		return nil, fmt.Errorf("%w: value for %s: %v", ErrInvalidPath, path, err)
	}

	node := tree
	for i, seg := range segments {
		isLast := i == len(segments)-1
		switch n := node.(type) {
		case map[string]any:
			child, ok := n[seg]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrInvalidPath, path)
			}
			if isLast {
				n[seg] = plain
			}
			node = child
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(n) {
				return nil, fmt.Errorf("%w: %s", ErrInvalidPath, path)
			}
			if isLast {
				// Replacing a whole record keeps its id.
				oldRec, wasRec := n[idx].(map[string]any)
				newRec, isRec := plain.(map[string]any)
				if wasRec && isRec {
					if id, ok := oldRec["id"]; ok {
						newRec["id"] = id
					}
				}
				n[idx] = plain
			}
			node = n[idx]
		default:
			return nil, fmt.Errorf("%w: %s", ErrInvalidPath, path)
		}
	}

	patched, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("encode patched document: %w", err)
	}
	next := &Document{}
	if err := json.Unmarshal(patched, next); err != nil {
		return nil, fmt.Errorf("%w: value for %s does not fit the document: %v", ErrInvalidPath, path, err)
	}
	next.normalize()
	// A patched sequence may bring records without ids.
	next.EnsureIDs()
	return next, nil
}
