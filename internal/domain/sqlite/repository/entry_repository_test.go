package repository

import (
	"testing"

	"phhblog/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&entity.BloodType{}, &entity.User{}, &entity.Tag{}, &entity.Entry{})
	require.NoError(t, err)
	return db
}

func intPtr(i int) *int {
	return &i
}

func TestEntryRepository_FindByTagFiltersByTag(t *testing.T) {
	db := newTestDB(t)
	repo := NewEntryRepository(db)

	require.NoError(t, repo.Save(&entity.Entry{UserID: 1, Title: "a", TagID: intPtr(1), Text: "x"}))
	require.NoError(t, repo.Save(&entity.Entry{UserID: 1, Title: "b", TagID: intPtr(2), Text: "y"}))
	require.NoError(t, repo.Save(&entity.Entry{UserID: 1, Title: "c", Text: "z"}))

	filtered, err := repo.FindByTag(2)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "b", filtered[0].Title)

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestEntryRepository_CreateThenList(t *testing.T) {
	db := newTestDB(t)
	repo := NewEntryRepository(db)

	before, err := repo.FindAll()
	require.NoError(t, err)

	entry := &entity.Entry{UserID: entity.AuthorID, Title: "Hello", TagID: intPtr(2), Text: "World"}
	require.NoError(t, repo.Save(entry))

	after, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)

	created := after[len(after)-1]
	assert.Equal(t, entity.AuthorID, created.UserID)
	assert.Equal(t, "Hello", created.Title)
	require.NotNil(t, created.TagID)
	assert.Equal(t, 2, *created.TagID)
	assert.Equal(t, "World", created.Text)
}

func TestEntryRepository_UpdateReplacesFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewEntryRepository(db)

	entry := &entity.Entry{UserID: 1, Title: "old", TagID: intPtr(1), Text: "old body"}
	require.NoError(t, repo.Save(entry))

	entry.Title = "new"
	entry.TagID = intPtr(3)
	entry.Text = "new body"
	require.NoError(t, repo.Save(entry))

	got, err := repo.FindByID(entry.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry.ID, got.ID)
	assert.Equal(t, 1, got.UserID)
	assert.Equal(t, "new", got.Title)
	require.NotNil(t, got.TagID)
	assert.Equal(t, 3, *got.TagID)
	assert.Equal(t, "new body", got.Text)
}

func TestEntryRepository_DeleteThenGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewEntryRepository(db)

	entry := &entity.Entry{UserID: 1, Title: "doomed", Text: "bye"}
	require.NoError(t, repo.Save(entry))
	require.NoError(t, repo.Delete(entry))

	got, err := repo.FindByID(entry.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	all, err := repo.FindAll()
	require.NoError(t, err)
	for _, e := range all {
		assert.NotEqual(t, entry.ID, e.ID)
	}
}

func TestEntryRepository_FindByIDMissingIsNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewEntryRepository(db)

	got, err := repo.FindByID(5)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTagRepository_FindAll(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&[]entity.Tag{{ID: 1, Name: "diary"}, {ID: 2, Name: "tech"}}).Error)

	repo := NewTagRepository(db)
	tags, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "diary", tags[0].Name)
	assert.Equal(t, "tech", tags[1].Name)
}
