package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound 查询目标不存在（slug、用户名、文章 ID 等）
var ErrNotFound = errors.New("record not found")

// notFound 把 gorm 的未找到错误归一成 ErrNotFound
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
