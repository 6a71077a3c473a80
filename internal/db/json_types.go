package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList persists a list of URLs as a JSON text column.
type StringList []string

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	data, err := jsonBytes(value)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, l)
}

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// GalleryItem is one image of an exhibition gallery.
type GalleryItem struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// GalleryItemList persists gallery images as a JSON text column.
type GalleryItemList []GalleryItem

// Scan implements sql.Scanner.
func (l *GalleryItemList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	data, err := jsonBytes(value)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, l)
}

// Value implements driver.Valuer.
func (l GalleryItemList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func jsonBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported column type %T", value)
	}
}
