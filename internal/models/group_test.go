package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupGroupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Group{}))
	return db
}

func TestGroupSlugDerivedFromTitle(t *testing.T) {
	db := setupGroupDB(t)

	group := Group{Title: "Заголовок группы", Description: "test"}
	require.NoError(t, db.Create(&group).Error)

	// 标题音译成小写的 URL 安全形式
	assert.Equal(t, "zagolovok-gruppy", group.Slug)
}

func TestGroupSlugSuppliedVerbatim(t *testing.T) {
	db := setupGroupDB(t)

	group := Group{Title: "Some title", Slug: "Custom_Slug", Description: "test"}
	require.NoError(t, db.Create(&group).Error)

	// 显式指定的 slug 原样保留，不做转换
	assert.Equal(t, "Custom_Slug", group.Slug)
}

func TestGroupSlugTruncatedTo200(t *testing.T) {
	db := setupGroupDB(t)

	group := Group{Title: strings.Repeat("long title ", 40), Description: "test"}
	require.NoError(t, db.Create(&group).Error)

	assert.LessOrEqual(t, len([]rune(group.Slug)), 200)
	assert.NotEmpty(t, group.Slug)
}

func TestGroupSlugNotRecomputedOnUpdate(t *testing.T) {
	db := setupGroupDB(t)

	group := Group{Title: "First title", Description: "test"}
	require.NoError(t, db.Create(&group).Error)
	slug := group.Slug

	group.Title = "Completely different title"
	require.NoError(t, db.Save(&group).Error)

	var reloaded Group
	require.NoError(t, db.First(&reloaded, group.ID).Error)
	assert.Equal(t, slug, reloaded.Slug)
}

func TestGroupSlugUniqueConstraint(t *testing.T) {
	db := setupGroupDB(t)

	require.NoError(t, db.Create(&Group{Title: "One", Slug: "dup", Description: "a"}).Error)
	err := db.Create(&Group{Title: "Two", Slug: "dup", Description: "b"}).Error
	assert.Error(t, err)
}
