package models

import "time"

// Item is a priced product belonging to exactly one store. Item names are
// globally unique, matching the original schema.
type Item struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"unique;not null" json:"name"`
	Price     float64   `gorm:"not null" json:"price"`
	StoreID   uint      `gorm:"not null;index" json:"store_id"`
	Store     *Store    `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	Tags      []Tag     `gorm:"many2many:item_tag" json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
