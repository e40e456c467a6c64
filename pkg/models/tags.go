package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Tags is stored as a JSON array in a text column so sqlite and postgres
// share one schema.
type Tags []string

func (Tags) GormDataType() string {
	return "text"
}

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *Tags) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = Tags{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("tags: unsupported column type %T", src)
	}

	if len(raw) == 0 {
		*t = Tags{}
		return nil
	}

	out := Tags{}
	if err := json.Unmarshal(raw, (*[]string)(&out)); err != nil {
		return fmt.Errorf("tags: %w", err)
	}
	*t = out
	return nil
}

func (t Tags) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}

// Contains reports whether tag is already present.
func (t Tags) Contains(tag string) bool {
	for _, existing := range t {
		if existing == tag {
			return true
		}
	}
	return false
}
