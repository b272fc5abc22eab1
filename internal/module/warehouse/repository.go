package warehouse

import (
	"gorm.io/gorm"

	"github.com/simp-lee/warecat/internal/domain"
	"github.com/simp-lee/warecat/internal/repository"
)

// NewRepository creates the warehouse data access component. The descriptor
// fixes the searchable text fields and the sort_by whitelist; anything
// outside the whitelist falls back to sorting by warehouse_name.
func NewRepository(db *gorm.DB) *repository.Repository[domain.Warehouse] {
	return repository.New[domain.Warehouse](db, repository.Descriptor{
		Resource:      resource,
		CodeColumn:    "warehouse_code",
		SearchColumns: []string{"warehouse_code", "warehouse_name", "city"},
		SortColumns: map[string]string{
			"code":       "warehouse_code",
			"name":       "warehouse_name",
			"city":       "city",
			"created_at": "created_at",
			"updated_at": "updated_at",
		},
		DefaultSort: "warehouse_name",
	})
}
