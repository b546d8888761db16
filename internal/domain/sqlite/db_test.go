package sqlite

import (
	"path/filepath"
	"testing"

	"phhblog/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_MigratesAndSeeds(t *testing.T) {
	t.Setenv("BLOG_DB_PATH", filepath.Join(t.TempDir(), "blog.db"))

	db, err := Init()
	require.NoError(t, err)

	var tags int64
	require.NoError(t, db.Model(&entity.Tag{}).Count(&tags).Error)
	assert.NotZero(t, tags)

	var author entity.User
	require.NoError(t, db.First(&author, entity.AuthorID).Error)
	assert.NotEmpty(t, author.Name)
}

func TestSeed_IsIdempotent(t *testing.T) {
	t.Setenv("BLOG_DB_PATH", filepath.Join(t.TempDir(), "blog.db"))

	db, err := Init()
	require.NoError(t, err)

	var before int64
	require.NoError(t, db.Model(&entity.Tag{}).Count(&before).Error)

	require.NoError(t, Seed(db))

	var after int64
	require.NoError(t, db.Model(&entity.Tag{}).Count(&after).Error)
	assert.Equal(t, before, after)
}
