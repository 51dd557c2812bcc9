package kit

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

// PageMeta contains pagination metadata for API responses
type PageMeta struct {
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset,omitempty"`
	Count      int    `json:"count"`
	NextOffset *int   `json:"next_offset,omitempty"`
	HasMore    bool   `json:"has_more,omitempty"`
	Mode       string `json:"mode,omitempty"`
	Total      *int   `json:"total,omitempty"`
}

// PagingParams contains offset pagination parameters from the request.
type PagingParams struct {
	Limit  int
	Offset int
}

func ParsePaging(c *fiber.Ctx) (PagingParams, error) {
	p := PagingParams{Limit: lo.Clamp(c.QueryInt("limit", 20), 1, 100)}
	p.Offset = c.QueryInt("offset", 0)
	if p.Offset < 0 {
		return p, BadRequest("offset must not be negative", p.Offset)
	}
	return p, nil
}

// OffsetMeta describes a page of count rows out of total.
func OffsetMeta(p PagingParams, count, total int) PageMeta {
	next := p.Offset + count
	return PageMeta{
		Limit:      p.Limit,
		Offset:     p.Offset,
		Count:      count,
		NextOffset: &next,
		HasMore:    next < total,
		Mode:       "offset",
		Total:      &total,
	}
}
