// Package query implements the shared list-query composer. Every list
// endpoint is built from the same small set of stages applied in a fixed
// order: base kind filter, review-stat annotation, free-text search, decoded
// type/status code, genre facet, creator facet, natural order, pagination.
// Stages compose conjunctively; a stage handed empty input applies nothing.
package query

import (
	"gorm.io/gorm"

	"mediavault/internal/api/forms"
)

// PageSize is the fixed page length of every list endpoint.
const PageSize = 10

// Stage is one step of a list query. Stages are pure query transforms so a
// resource's pipeline reads as an explicit ordered list, not an override
// chain.
type Stage func(tx *gorm.DB) *gorm.DB

// Pipeline is an ordered stage list.
type Pipeline []Stage

func (p Pipeline) Apply(tx *gorm.DB) *gorm.DB {
	for _, s := range p {
		tx = s(tx)
	}
	return tx
}

// Kind restricts media rows to one media_kind.
func Kind(kind string) Stage {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("media.media_kind = ?", kind)
	}
}

// Search applies a case-insensitive substring match on column when the form
// carries a valid non-blank query.
func Search(column string, form *forms.SearchForm) Stage {
	return func(tx *gorm.DB) *gorm.DB {
		q := form.Query()
		if q == "" {
			return tx
		}
		return tx.Where(column+" ILIKE ?", "%"+q+"%")
	}
}

// Code filters exact-match on a stored enum column. An empty code (absent or
// unrecognized human label) means show all, never show none.
func Code(column, code string) Stage {
	return func(tx *gorm.DB) *gorm.DB {
		if code == "" {
			return tx
		}
		return tx.Where(column+" = ?", code)
	}
}

// OrderBy applies the resource's natural order.
func OrderBy(expr string) Stage {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Order(expr)
	}
}

// Paginate clamps page to 1 and applies the fixed page size.
func Paginate(page int) Stage {
	if page < 1 {
		page = 1
	}
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Offset((page - 1) * PageSize).Limit(PageSize)
	}
}

// TotalPages returns the page count for a result total.
func TotalPages(total int64) int {
	pages := int(total) / PageSize
	if int(total)%PageSize != 0 {
		pages++
	}
	if pages == 0 {
		pages = 1
	}
	return pages
}
