package option

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tripveda/tripveda/pkg/db/pagination"
	"gorm.io/gorm"
)

// QueryOption mutates a gorm statement before execution.
type QueryOption interface {
	Apply(db *gorm.DB) *gorm.DB
}

type optionFunc func(db *gorm.DB) *gorm.DB

func (f optionFunc) Apply(db *gorm.DB) *gorm.DB { return f(db) }

// WithQuerySortBy sanitizes user-supplied sort parameters against an allowlist
// and returns an ORDER BY expression, falling back to created_at DESC.
func WithQuerySortBy(sortBy, orderBy string, allowed map[string]bool) string {
	field := strings.ToLower(strings.TrimSpace(sortBy))
	if field == "" || !allowed[field] {
		field = "created_at"
	}

	direction := strings.ToUpper(strings.TrimSpace(orderBy))
	if direction != "ASC" && direction != "DESC" {
		direction = "DESC"
	}

	return fmt.Sprintf("%s %s", field, direction)
}

func WithSortBy(expr string) QueryOption {
	return optionFunc(func(db *gorm.DB) *gorm.DB {
		if strings.TrimSpace(expr) == "" {
			return db
		}
		return db.Order(expr)
	})
}

func WithLimit(limit int) QueryOption {
	return optionFunc(func(db *gorm.DB) *gorm.DB {
		if limit <= 0 {
			return db
		}
		return db.Limit(limit)
	})
}

func WithOffset(offset int) QueryOption {
	return optionFunc(func(db *gorm.DB) *gorm.DB {
		if offset <= 0 {
			return db
		}
		return db.Offset(offset)
	})
}

// ApplyPagination applies keyset pagination from the decoded page token
// and fetches one row past the page size so callers can detect a next
// page. A malformed token starts from the first page.
func ApplyPagination(page pagination.Pagination) QueryOption {
	return optionFunc(func(db *gorm.DB) *gorm.DB {
		if page.PageToken != "" {
			if cursor, err := pagination.DecodeCursor(page.PageToken); err == nil {
				createdAt, timeErr := time.Parse(time.RFC3339Nano, cursor.CreatedAt)
				id, idErr := strconv.ParseInt(cursor.ID, 10, 64)
				if timeErr == nil && idErr == nil {
					db = db.Where(
						"created_at < ? OR (created_at = ? AND id < ?)",
						createdAt, createdAt, id,
					)
				}
			}
		}

		size := page.PageSize
		if size <= 0 {
			size = 10
		}
		return db.Limit(size + 1)
	})
}
