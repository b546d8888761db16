package repository

import (
	"errors"

	"phhblog/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultEntryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) *DefaultEntryRepository {
	return &DefaultEntryRepository{db: db}
}

func (d *DefaultEntryRepository) FindAll() ([]*entity.Entry, error) {
	var entries []*entity.Entry
	err := d.db.Order("id").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (d *DefaultEntryRepository) FindByTag(tagID int) ([]*entity.Entry, error) {
	var entries []*entity.Entry
	err := d.db.Where("tag_id = ?", tagID).Order("id").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (d *DefaultEntryRepository) FindByID(id int) (*entity.Entry, error) {
	var entry entity.Entry
	err := d.db.First(&entry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (d *DefaultEntryRepository) Save(entry *entity.Entry) error {
	return d.db.Save(entry).Error
}

func (d *DefaultEntryRepository) Delete(entry *entity.Entry) error {
	return d.db.Delete(entry).Error
}
