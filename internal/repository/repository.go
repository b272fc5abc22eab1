package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/simp-lee/warecat/internal/domain"
)

// Descriptor carries the per-entity knobs of the generic repository: the
// resource name used in error messages, the natural-key column, the columns
// searched by the case-insensitive substring filter, the sort_by whitelist,
// and the column used when sort_by is unrecognized.
type Descriptor struct {
	Resource      string
	CodeColumn    string
	SearchColumns []string
	SortColumns   map[string]string
	DefaultSort   string
}

// Repository is the shared data access component for catalog entities.
// All reads and writes are scoped to active rows; "delete" flips is_active
// and leaves the row in place, which also frees its code for reuse.
type Repository[T any] struct {
	db   *gorm.DB
	desc Descriptor
}

// New creates a Repository for entity type T backed by the given database
// handle. The handle owns the connection pool; each operation acquires and
// releases a pooled connection through GORM.
func New[T any](db *gorm.DB, desc Descriptor) *Repository[T] {
	return &Repository[T]{db: db, desc: desc}
}

// List returns one page of active records. Search applies a case-insensitive
// substring match across the descriptor's search columns; unrecognized
// sort_by falls back to the default column and anything but "desc" sorts
// ascending. List never rejects input.
func (r *Repository[T]) List(ctx context.Context, q domain.ListQuery) (*domain.PageResult[T], error) {
	base := r.db.WithContext(ctx).Model(new(T)).
		Where("is_active = ?", true).
		Scopes(r.search(q))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, r.mapError(err)
	}

	var rows []T
	if err := base.Scopes(r.sort(q), paginate(q)).Find(&rows).Error; err != nil {
		return nil, r.mapError(err)
	}

	return domain.NewPageResult(rows, total, q), nil
}

// GetByID retrieves an active record by primary key. Absence is an expected
// outcome and resolves to a NOT_FOUND error, not a storage failure.
func (r *Repository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var row T
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&row).Error
	if err != nil {
		return nil, r.mapError(err)
	}
	return &row, nil
}

// GetByCode retrieves an active record by its natural key.
func (r *Repository[T]) GetByCode(ctx context.Context, code string) (*T, error) {
	var row T
	err := r.db.WithContext(ctx).
		Where(r.desc.CodeColumn+" = ? AND is_active = ?", code, true).
		First(&row).Error
	if err != nil {
		return nil, r.mapError(err)
	}
	return &row, nil
}

// Create inserts a new record and hydrates server-assigned fields in place.
// The caller is expected to have run CodeExists first; when two creates race
// past that check, the loser hits the partial unique index on active codes
// and is remapped to ALREADY_EXISTS here.
func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return r.mapError(err)
	}
	return nil
}

// Update applies a field-by-field change set to an active record and returns
// the fresh row. updated_at and updated_by are stamped on every successful
// merge, even when changes is empty. A missing or inactive id resolves to
// NOT_FOUND.
func (r *Repository[T]) Update(ctx context.Context, id uint, changes map[string]any, actor *int) (*T, error) {
	updates := make(map[string]any, len(changes)+2)
	for col, v := range changes {
		updates[col] = v
	}
	updates["updated_at"] = time.Now().UTC()
	updates["updated_by"] = actor

	result := r.db.WithContext(ctx).Model(new(T)).
		Where("id = ? AND is_active = ?", id, true).
		Updates(updates)
	if result.Error != nil {
		return nil, r.mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.NotFound(r.desc.Resource)
	}

	return r.GetByID(ctx, id)
}

// Delete soft-deletes an active record and reports whether a row was
// affected. False means the id was absent or already inactive; the caller
// maps that to NOT_FOUND.
func (r *Repository[T]) Delete(ctx context.Context, id uint, actor *int) (bool, error) {
	result := r.db.WithContext(ctx).Model(new(T)).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
			"updated_by": actor,
		})
	if result.Error != nil {
		return false, r.mapError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// CodeExists reports whether an active record other than excludeID holds the
// given code. excludeID 0 means no exclusion. This is the advisory
// read-before-write half of uniqueness enforcement; the unique index is the
// backstop.
func (r *Repository[T]) CodeExists(ctx context.Context, code string, excludeID uint) (bool, error) {
	query := r.db.WithContext(ctx).Model(new(T)).
		Where(r.desc.CodeColumn+" = ? AND is_active = ?", code, true)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, r.mapError(err)
	}
	return count > 0, nil
}

// search returns a scope matching q.Search case-insensitively against every
// search column. LOWER+LIKE keeps the behavior identical on sqlite and
// postgres.
func (r *Repository[T]) search(q domain.ListQuery) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term := strings.TrimSpace(q.Search)
		if term == "" || len(r.desc.SearchColumns) == 0 {
			return db
		}

		conds := make([]string, 0, len(r.desc.SearchColumns))
		args := make([]any, 0, len(r.desc.SearchColumns))
		pattern := "%" + strings.ToLower(term) + "%"
		for _, col := range r.desc.SearchColumns {
			conds = append(conds, "LOWER("+col+") LIKE ?")
			args = append(args, pattern)
		}
		return db.Where(strings.Join(conds, " OR "), args...)
	}
}

// sort returns a scope applying ORDER BY. Only whitelisted sort_by values
// map to columns; everything else falls back to the default column.
func (r *Repository[T]) sort(q domain.ListQuery) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		column, ok := r.desc.SortColumns[strings.ToLower(strings.TrimSpace(q.SortBy))]
		if !ok {
			column = r.desc.DefaultSort
		}

		direction := "ASC"
		if strings.EqualFold(strings.TrimSpace(q.SortOrder), "desc") {
			direction = "DESC"
		}
		return db.Order(column + " " + direction)
	}
}

// paginate returns a scope applying LIMIT/OFFSET with the clamped page size.
func paginate(q domain.ListQuery) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(q.Offset()).Limit(q.ClampedLimit())
	}
}

// mapError converts storage errors to taxonomy outcomes. Anything not
// recognized as an expected business outcome becomes DATABASE_ERROR with the
// cause preserved for server-side logging.
func (r *Repository[T]) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFound(r.desc.Resource)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, r.desc.Resource+" already exists", err)
	}
	return domain.DatabaseError(err)
}

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. Not all GORM dialectors translate driver-level errors to
// gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite driver).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
