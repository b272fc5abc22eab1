package domain

import "time"

// AuditModel is the common base struct for catalog entities. Soft delete is
// modeled explicitly through IsActive instead of gorm.DeletedAt: inactive
// rows stay in storage forever and every read is scoped to active rows.
type AuditModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy *int      `json:"created_by"`
	UpdatedBy *int      `json:"updated_by"`
}

// MaxLimit caps the page size of any list query.
const MaxLimit = 100

// ClampLimit forces a page size into [1, MaxLimit]. Out-of-range values are
// silently clamped, never rejected.
func ClampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// ListQuery holds normalized pagination, search, and sorting parameters.
// Construction clamps out-of-range values, so a ListQuery never causes a
// list operation to fail.
type ListQuery struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

// Offset returns the row offset for the query. Page and Limit are guarded
// again here so a hand-built ListQuery cannot produce a negative offset.
func (q ListQuery) Offset() int {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 1
	}
	return (page - 1) * limit
}

// ClampedLimit returns the page size clamped into [1, MaxLimit].
func (q ListQuery) ClampedLimit() int {
	return ClampLimit(q.Limit)
}

// Meta describes the pagination window of a list result.
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// NewMeta computes pagination metadata. A non-positive limit yields zero
// total pages rather than an error.
func NewMeta(total int64, page, limit int) Meta {
	var totalPages int64
	if limit > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}
	return Meta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		HasNext:    int64(page) < totalPages,
		HasPrev:    page > 1,
	}
}

// PageResult is the list payload: one page of records plus its metadata.
type PageResult[T any] struct {
	Data       []T  `json:"data"`
	Pagination Meta `json:"pagination"`
}

// NewPageResult builds a PageResult, normalizing a nil slice to an empty one
// so the JSON data field is always an array.
func NewPageResult[T any](data []T, total int64, q ListQuery) *PageResult[T] {
	if data == nil {
		data = []T{}
	}
	return &PageResult[T]{
		Data:       data,
		Pagination: NewMeta(total, q.Page, q.Limit),
	}
}
