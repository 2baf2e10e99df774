package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// decodeChildren turns the value stored at a collection into its children
// by key. The database answers with an object, or with an array when every
// key is a small integer; null array slots are keys that do not exist.
func decodeChildren[T any](raw json.RawMessage) (map[string]T, error) {
	children := make(map[string]T)
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return children, nil
	}

	if trimmed[0] == '[' {
		var slots []*T
		if err := json.Unmarshal(trimmed, &slots); err != nil {
			return nil, err
		}
		for i, item := range slots {
			if item != nil {
				children[strconv.Itoa(i)] = *item
			}
		}
		return children, nil
	}

	var byKey map[string]*T
	if err := json.Unmarshal(trimmed, &byKey); err != nil {
		return nil, fmt.Errorf("collection is neither an object nor an array: %w", err)
	}
	for k, item := range byKey {
		if item != nil {
			children[k] = *item
		}
	}
	return children, nil
}

// sortedKeys orders keys like the database does: keys that are 32-bit
// integers come first in numeric order, then the rest lexicographically.
func sortedKeys[T any](children map[string]T) []string {
	keys := make([]string, 0, len(children))
	for k := range children {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aInt := integerKey(keys[i])
		b, bInt := integerKey(keys[j])
		switch {
		case aInt && bInt:
			return a < b
		case aInt != bInt:
			return aInt
		}
		return keys[i] < keys[j]
	})
	return keys
}

func integerKey(k string) (int64, bool) {
	n, err := strconv.ParseInt(k, 10, 64)
	if err != nil || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	// "01" and "+1" stay string keys.
	if strconv.FormatInt(n, 10) != k {
		return 0, false
	}
	return n, true
}
