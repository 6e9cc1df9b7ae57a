package models

// ItemTag is the join row linking one item to one tag. The composite primary
// key makes each (item_id, tag_id) pair unique, so an idempotent link is a
// single insert with a do-nothing conflict clause.
type ItemTag struct {
	ItemID uint `gorm:"primaryKey" json:"item_id"`
	TagID  uint `gorm:"primaryKey" json:"tag_id"`
}

// TableName pins the join table to the original schema name.
func (ItemTag) TableName() string {
	return "item_tag"
}
