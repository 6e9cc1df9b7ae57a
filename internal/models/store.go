package models

import "time"

// Store owns the item and tag namespaces in the catalog. Items and tags
// always belong to exactly one store and cannot be reparented.
type Store struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"unique;not null" json:"name"`
	Items     []Item    `gorm:"foreignKey:StoreID" json:"items,omitempty"`
	Tags      []Tag     `gorm:"foreignKey:StoreID" json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
