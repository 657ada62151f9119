package services

import (
	"github.com/admitpath/api-go/repository"
)

// Page is the envelope every admin list endpoint returns.
type Page struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

func NewPage(data interface{}, total int64, params repository.PageParams) *Page {
	p := params.Normalize()
	totalPages := int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
	return &Page{
		Data:       data,
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: totalPages,
	}
}
