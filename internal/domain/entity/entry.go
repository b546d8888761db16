package entity

// AuthorID is the fixed owner of every entry. The blog is
// single-tenant: there is exactly one author row in the user table.
const AuthorID = 1

type Entry struct {
	ID     int    `gorm:"primaryKey"`
	UserID int    `gorm:"not null"` // References: user(id)
	Title  string `gorm:"not null"`
	TagID  *int   // References: tag(id), NULL when no tag was chosen
	Text   string `gorm:"not null"`
}

func (Entry) TableName() string {
	return "entry"
}
