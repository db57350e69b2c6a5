package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a []string stored as JSONB.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l, "StringList")
}

// UintList is a []uint stored as JSONB.
type UintList []uint

func (l UintList) Value() (driver.Value, error) {
	if l == nil {
		l = UintList{}
	}
	return json.Marshal(l)
}

func (l *UintList) Scan(value interface{}) error {
	return scanJSON(value, l, "UintList")
}

func jsonValue(src interface{}) (driver.Value, error) {
	return json.Marshal(src)
}

func scanJSON(value interface{}, dest interface{}, name string) error {
	if value == nil {
		return nil
	}
	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, dest)
	case string:
		return json.Unmarshal([]byte(data), dest)
	default:
		return fmt.Errorf("unsupported type %T for %s", value, name)
	}
}
