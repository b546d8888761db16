package entity

// Tag is a named category attachable to entries. Tags are seeded at
// startup and read-only from the request workflow.
type Tag struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (Tag) TableName() string {
	return "tag"
}
