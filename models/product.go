package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Product is a single catalog entry. Products are hard-deleted by admins, so
// there is no soft-delete column.
type Product struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `gorm:"not null" json:"description"`
	Price       float64    `gorm:"not null" json:"price"`
	Stock       int        `gorm:"not null" json:"stock"`
	Category    string     `json:"category"`
	Images      StringList `gorm:"type:jsonb" json:"images"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// StringList stores an ordered list of URL strings as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = StringList{}
		return nil
	}
	return errors.New("unsupported source type for StringList")
}
