package entity

// User is the single author's descriptive record.
type User struct {
	ID          int    `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Nickname    string `gorm:"not null"`
	Birthday    string `gorm:"not null"`
	BloodTypeID int    `gorm:"not null"` // References: blood_type(id)
	UpdatedAt   int64  `gorm:"not null;autoUpdateTime:false"`
}

func (User) TableName() string {
	return "user"
}

type BloodType struct {
	ID   int    `gorm:"primaryKey"`
	Type string `gorm:"not null"`
}

func (BloodType) TableName() string {
	return "blood_type"
}

// Profile is the projection of user joined with blood_type that the
// profile page renders. Not a table of its own.
type Profile struct {
	Name      string
	Nickname  string
	Type      string
	Birthday  string
	UpdatedAt int64
}
