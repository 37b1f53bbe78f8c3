package models

import (
	"time"
)

type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	GroupID *uint  `gorm:"index" json:"group_id"` // 小组可选，小组删除后置空
	Group   *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"group"`
	Text    string `gorm:"type:text;not null" json:"text"`
	Image   string `json:"image"` // Optional, stored file path
	// CreatedAt 发布时间，创建后不再更新，默认按它倒序展示
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 非数据库字段，用于查询时填充
	CommentCount int `gorm:"-" json:"comment_count"`
}
