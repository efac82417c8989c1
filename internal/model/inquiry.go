package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Inquiry statuses, mutated only by admins. "New" is the creation default.
const (
	StatusNew        = "New"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusArchived   = "Archived"
)

// ValidStatus reports whether s is one of the four inquiry statuses
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// Inquiry is a contact-to-buy request submitted from the public site.
// ProductSnapshot is a point-in-time copy of the referenced product taken at
// creation; it is a historical record and is never updated afterwards, even
// when the source product is edited or deleted.
type Inquiry struct {
	ID              uint             `json:"id" gorm:"primarykey"`
	Name            string           `json:"name" gorm:"type:varchar(255)"`
	Email           string           `json:"email" gorm:"type:varchar(255)"`
	Phone           string           `json:"phone" gorm:"type:varchar(50)"`
	Message         string           `json:"message" gorm:"type:text"`
	ProductID       *uint            `json:"productId,omitempty"`
	ProductSnapshot *ProductSnapshot `json:"productSnapshot" gorm:"type:jsonb"`
	Status          string           `json:"status" gorm:"type:varchar(20);default:'New'"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// ProductSnapshot is a denormalized copy of a Product's fields, embedded in
// the inquiry row as jsonb.
type ProductSnapshot Product

// Value implements driver.Valuer
func (s *ProductSnapshot) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (s *ProductSnapshot) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for ProductSnapshot")
	}
}
