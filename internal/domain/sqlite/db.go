package sqlite

import (
	"os"
	"path/filepath"
	"time"

	"phhblog/internal/domain/entity"
	"phhblog/internal/utils"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func Init() (*gorm.DB, error) {
	dbPath := os.Getenv("BLOG_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(".", "blog.db")
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&entity.BloodType{}, &entity.User{}, &entity.Tag{}, &entity.Entry{})
	if err != nil {
		return nil, err
	}

	if err := Seed(db); err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Seed provisions the reference data the request workflow never
// writes: blood types, the tag catalogue and the single author row.
// Tables that already hold rows are left untouched.
func Seed(db *gorm.DB) error {
	var count int64

	if err := db.Model(&entity.BloodType{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		types := []entity.BloodType{
			{ID: 1, Type: "A"},
			{ID: 2, Type: "B"},
			{ID: 3, Type: "O"},
			{ID: 4, Type: "AB"},
		}
		if err := db.Create(&types).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&entity.Tag{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		tags := []entity.Tag{
			{ID: 1, Name: "diary"},
			{ID: 2, Name: "tech"},
			{ID: 3, Name: "hobby"},
		}
		if err := db.Create(&tags).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		author := entity.User{
			ID:          entity.AuthorID,
			Name:        "Anonymous Author",
			Nickname:    "anon",
			Birthday:    "1990-01-01",
			BloodTypeID: 1,
			UpdatedAt:   utils.NowUTC(),
		}
		if err := db.Create(&author).Error; err != nil {
			return err
		}
	}

	return nil
}
