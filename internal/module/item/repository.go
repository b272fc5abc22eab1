package item

import (
	"gorm.io/gorm"

	"github.com/simp-lee/warecat/internal/domain"
	"github.com/simp-lee/warecat/internal/repository"
)

// NewRepository creates the item data access component. Unrecognized sort_by
// values fall back to sorting by item_name.
func NewRepository(db *gorm.DB) *repository.Repository[domain.Item] {
	return repository.New[domain.Item](db, repository.Descriptor{
		Resource:      resource,
		CodeColumn:    "item_code",
		SearchColumns: []string{"item_code", "item_name", "category", "brand"},
		SortColumns: map[string]string{
			"code":       "item_code",
			"name":       "item_name",
			"category":   "category",
			"brand":      "brand",
			"created_at": "created_at",
			"updated_at": "updated_at",
		},
		DefaultSort: "item_name",
	})
}
