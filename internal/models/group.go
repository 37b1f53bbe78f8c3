package models

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Group 社区/小组，文章可以挂在某个小组下
type Group struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Slug        string    `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"size:200" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate 创建时若未指定 slug，则根据标题生成
// slug 只在创建时生成一次，之后修改标题也不会重新计算
func (g *Group) BeforeCreate(tx *gorm.DB) error {
	if g.Slug == "" {
		g.Slug = truncateRunes(slug.Make(g.Title), 200)
	}
	return nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
