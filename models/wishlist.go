package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Wishlist is the per-user favorites document. Items are full product
// snapshots taken at the moment of favoriting, stored as a JSON array field.
type Wishlist struct {
	UserID    string      `gorm:"primaryKey" json:"userId"`
	Items     ProductList `gorm:"type:jsonb" json:"items"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// ProductList stores product snapshots as a JSON column.
type ProductList []Product

func (l ProductList) Value() (driver.Value, error) {
	if l == nil {
		l = ProductList{}
	}
	return json.Marshal(l)
}

func (l *ProductList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = ProductList{}
		return nil
	}
	return errors.New("unsupported source type for ProductList")
}
