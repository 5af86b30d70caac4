package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
)

// jsonbValue serializes a collection field for a JSONB column. Empty
// collections are stored as [] rather than NULL so containment queries
// behave uniformly.
func jsonbValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonbScan(dest any, src any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dest)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

// RefSet is a deduplicated list of entity ids stored on an owner
// document. Insertion order is preserved; membership is what matters.
type RefSet []uint

func (s RefSet) Has(id uint) bool {
	return slices.Contains(s, id)
}

// Add returns the set with id present. The second result reports
// whether the set actually changed; adding a present id is a no-op.
func (s RefSet) Add(id uint) (RefSet, bool) {
	if s.Has(id) {
		return s, false
	}
	return append(s, id), true
}

// Remove returns the set with id absent. Removing an absent id is a
// no-op.
func (s RefSet) Remove(id uint) (RefSet, bool) {
	i := slices.Index(s, id)
	if i < 0 {
		return s, false
	}
	return slices.Delete(s, i, i+1), true
}

func (s RefSet) Value() (driver.Value, error) {
	if s == nil {
		s = RefSet{}
	}
	return jsonbValue(s)
}

func (s *RefSet) Scan(src any) error { return jsonbScan(s, src) }

// StringList is a JSONB-backed list of strings (tags, departments,
// skill slots).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return jsonbValue(l)
}

func (l *StringList) Scan(src any) error { return jsonbScan(l, src) }
