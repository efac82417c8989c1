package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Product represents one catalog item. The slug is the external-facing key
// used by the public detail pages and is immutable after creation.
type Product struct {
	ID                  uint       `json:"id" gorm:"primarykey"`
	Title               string     `json:"title" gorm:"type:varchar(255);not null"`
	Slug                string     `json:"slug" gorm:"type:varchar(255);uniqueIndex;not null"`
	ShortDescription    string     `json:"shortDescription" gorm:"type:text"`
	DetailedDescription string     `json:"detailedDescription" gorm:"type:text"`
	Category            string     `json:"category" gorm:"type:varchar(100)"`
	Photos              StringList `json:"photos" gorm:"type:jsonb"`
	Stock               int        `json:"stock" gorm:"default:0"`
	IsFeatured          bool       `json:"isFeatured" gorm:"default:false"`
	Price               *float64   `json:"price,omitempty"`
	Rating              *float64   `json:"rating,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// StringList stores an ordered list of photo paths as a jsonb column
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for StringList")
	}
}
