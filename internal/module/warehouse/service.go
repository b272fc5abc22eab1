package warehouse

import (
	"context"
	"strings"

	"github.com/simp-lee/warecat/internal/domain"
)

const resource = "warehouse"

// Repository is the data access contract the warehouse service depends on.
// Satisfied by *repository.Repository[domain.Warehouse].
type Repository interface {
	List(ctx context.Context, q domain.ListQuery) (*domain.PageResult[domain.Warehouse], error)
	GetByID(ctx context.Context, id uint) (*domain.Warehouse, error)
	GetByCode(ctx context.Context, code string) (*domain.Warehouse, error)
	Create(ctx context.Context, entity *domain.Warehouse) error
	Update(ctx context.Context, id uint, changes map[string]any, actor *int) (*domain.Warehouse, error)
	Delete(ctx context.Context, id uint, actor *int) (bool, error)
	CodeExists(ctx context.Context, code string, excludeID uint) (bool, error)
}

// Service defines the warehouse business operations.
type Service interface {
	List(ctx context.Context, q domain.ListQuery) (*domain.PageResult[domain.Warehouse], error)
	Get(ctx context.Context, id uint) (*domain.Warehouse, error)
	GetByCode(ctx context.Context, code string) (*domain.Warehouse, error)
	Create(ctx context.Context, req CreateWarehouseRequest, actor *int) (*domain.Warehouse, error)
	Update(ctx context.Context, id uint, req UpdateWarehouseRequest, actor *int) (*domain.Warehouse, error)
	Delete(ctx context.Context, id uint, actor *int) error
}

type service struct {
	repo Repository
}

// NewService creates a warehouse Service with the given repository.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// List returns a page of active warehouses.
func (s *service) List(ctx context.Context, q domain.ListQuery) (*domain.PageResult[domain.Warehouse], error) {
	return s.repo.List(ctx, q)
}

// Get retrieves a warehouse by id.
func (s *service) Get(ctx context.Context, id uint) (*domain.Warehouse, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByCode retrieves a warehouse by its natural key.
func (s *service) GetByCode(ctx context.Context, code string) (*domain.Warehouse, error) {
	return s.repo.GetByCode(ctx, strings.TrimSpace(code))
}

// Create checks code availability against the active set, then inserts. The
// check and the insert are deliberately not one transaction; a race loser is
// caught by the storage unique index and surfaces as the same conflict.
func (s *service) Create(ctx context.Context, req CreateWarehouseRequest, actor *int) (*domain.Warehouse, error) {
	req.WarehouseCode = strings.TrimSpace(req.WarehouseCode)
	req.WarehouseName = strings.TrimSpace(req.WarehouseName)
	if req.WarehouseCode == "" {
		return nil, domain.Validation("warehouse_code is required")
	}
	if req.WarehouseName == "" {
		return nil, domain.Validation("warehouse_name is required")
	}

	taken, err := s.repo.CodeExists(ctx, req.WarehouseCode, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.AlreadyExists(resource)
	}

	entity := req.toEntity()
	entity.IsActive = true
	entity.CreatedBy = actor
	entity.UpdatedBy = actor

	if err := s.repo.Create(ctx, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

// Update merges the patch into the stored record. A code change is checked
// against every active warehouse except the one being updated, so updating a
// warehouse to its own current code succeeds.
func (s *service) Update(ctx context.Context, id uint, req UpdateWarehouseRequest, actor *int) (*domain.Warehouse, error) {
	if req.WarehouseCode != nil {
		code := strings.TrimSpace(*req.WarehouseCode)
		if code == "" {
			return nil, domain.Validation("warehouse_code cannot be empty")
		}
		req.WarehouseCode = &code

		taken, err := s.repo.CodeExists(ctx, code, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.AlreadyExists(resource)
		}
	}

	return s.repo.Update(ctx, id, req.changes(), actor)
}

// Delete soft-deletes a warehouse. An id that is absent or already inactive
// resolves to NOT_FOUND.
func (s *service) Delete(ctx context.Context, id uint, actor *int) error {
	affected, err := s.repo.Delete(ctx, id, actor)
	if err != nil {
		return err
	}
	if !affected {
		return domain.NotFound(resource)
	}
	return nil
}
