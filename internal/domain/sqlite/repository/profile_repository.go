package repository

import (
	"errors"

	"phhblog/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *DefaultProfileRepository {
	return &DefaultProfileRepository{db: db}
}

// Find returns the author's profile joined with its blood type, or
// nil when no user row exists yet.
func (d *DefaultProfileRepository) Find() (*entity.Profile, error) {
	var profile entity.Profile
	err := d.db.Model(&entity.User{}).
		Select("user.name, user.nickname, blood_type.type, user.birthday, user.updated_at").
		Joins("INNER JOIN blood_type ON user.blood_type_id = blood_type.id").
		Take(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &profile, nil
}
