package repository

import (
	"phhblog/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultTagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *DefaultTagRepository {
	return &DefaultTagRepository{db: db}
}

func (d *DefaultTagRepository) FindAll() ([]*entity.Tag, error) {
	var tags []*entity.Tag
	err := d.db.Order("id").Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
