package pagination

import (
	"math"
	"strconv"
)

// 各个列表页的每页条数
const (
	PerPageIndex   = 10
	PerPageFollow  = 10
	PerPageProfile = 11
)

// Page 一页查询结果的位置信息
type Page struct {
	Number     int   // 当前页码（1 起）
	PerPage    int   // 每页条数
	Total      int64 // 总条数
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// Paginate 根据总数和请求的页码参数计算当前页
// 页码缺失或不是正整数时回到第 1 页；超出末页时按末页处理，不报错
func Paginate(total int64, pageParam string, perPage int) Page {
	page := 1
	if pageParam != "" {
		if n, err := strconv.Atoi(pageParam); err == nil && n > 0 {
			page = n
		}
	}

	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return Page{
		Number:     page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// Offset 当前页在结果集中的偏移量
func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}
