package reco

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownIdentifier reports an external id with no entry in the
// mapping after normalization retries. Callers recover it into a
// structured "no recommendations" result rather than a fault.
var ErrUnknownIdentifier = errors.New("identifier not in model")

// KeyKind tags how a mapping's external keys are typed. It is probed
// once at model load; a mapping is all-string or all-numeric, never
// mixed.
type KeyKind int

const (
	StringKeyed KeyKind = iota
	NumericKeyed
)

// IDMapping is an immutable bijection between external ids and the
// model's dense internal index space. Built once when the artifact is
// loaded; safe for concurrent reads without synchronization.
type IDMapping struct {
	kind    KeyKind
	toIndex map[string]int
	toID    []string
}

// NewIDMapping validates the bijection invariant (every index in
// [0, len) owned by exactly one key) and probes the key kind from one
// representative key.
func NewIDMapping(keys map[string]int) (*IDMapping, error) {
	if len(keys) == 0 {
		return nil, errors.New("empty identifier mapping")
	}

	m := &IDMapping{
		kind:    StringKeyed,
		toIndex: make(map[string]int, len(keys)),
		toID:    make([]string, len(keys)),
	}

	seen := make([]bool, len(keys))
	for id, idx := range keys {
		if idx < 0 || idx >= len(keys) {
			return nil, fmt.Errorf("index %d for id %q outside dense range [0,%d)", idx, id, len(keys))
		}
		if seen[idx] {
			return nil, fmt.Errorf("index %d mapped by more than one id", idx)
		}
		seen[idx] = true
		m.toIndex[id] = idx
		m.toID[idx] = id
	}

	for id := range keys {
		if _, err := strconv.ParseFloat(id, 64); err == nil {
			m.kind = NumericKeyed
		}
		break
	}

	return m, nil
}

// ToInternal maps an external id to its internal index. The returned
// key is the normalized form that actually matched; the review log is
// joined against it with plain string comparison.
//
// Numeric-keyed mappings coerce the input through a float parse down to
// the integer string form. Either kind retries with a ".0" suffix on a
// miss, because historical catalogs store some integer ids in their
// float-string form depending on where the value came from.
func (m *IDMapping) ToInternal(externalID string) (int, string, error) {
	key := externalID
	if m.kind == NumericKeyed {
		f, err := strconv.ParseFloat(strings.TrimSpace(externalID), 64)
		if err != nil {
			return 0, "", fmt.Errorf("%w: %q", ErrUnknownIdentifier, externalID)
		}
		key = strconv.FormatInt(int64(f), 10)
	}

	if idx, ok := m.toIndex[key]; ok {
		return idx, key, nil
	}

	if !strings.HasSuffix(key, ".0") {
		retry := key + ".0"
		if idx, ok := m.toIndex[retry]; ok {
			return idx, retry, nil
		}
	}

	return 0, "", fmt.Errorf("%w: %q", ErrUnknownIdentifier, externalID)
}

// ToExternal is the inverse direction of the bijection.
func (m *IDMapping) ToExternal(idx int) (string, bool) {
	if idx < 0 || idx >= len(m.toID) {
		return "", false
	}
	return m.toID[idx], true
}

func (m *IDMapping) Len() int {
	return len(m.toID)
}

func (m *IDMapping) Kind() KeyKind {
	return m.kind
}

// ExternalIDs returns the ids in internal index order.
func (m *IDMapping) ExternalIDs() []string {
	out := make([]string, len(m.toID))
	copy(out, m.toID)
	return out
}
