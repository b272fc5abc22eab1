package item

import (
	"context"
	"strings"

	"github.com/simp-lee/warecat/internal/domain"
)

const resource = "item"

// Repository is the data access contract the item service depends on.
// Satisfied by *repository.Repository[domain.Item].
type Repository interface {
	List(ctx context.Context, q domain.ListQuery) (*domain.PageResult[domain.Item], error)
	GetByID(ctx context.Context, id uint) (*domain.Item, error)
	GetByCode(ctx context.Context, code string) (*domain.Item, error)
	Create(ctx context.Context, entity *domain.Item) error
	Update(ctx context.Context, id uint, changes map[string]any, actor *int) (*domain.Item, error)
	Delete(ctx context.Context, id uint, actor *int) (bool, error)
	CodeExists(ctx context.Context, code string, excludeID uint) (bool, error)
}

// Service defines the item business operations.
type Service interface {
	List(ctx context.Context, q domain.ListQuery) (*domain.PageResult[domain.Item], error)
	Get(ctx context.Context, id uint) (*domain.Item, error)
	GetByCode(ctx context.Context, code string) (*domain.Item, error)
	Create(ctx context.Context, req CreateItemRequest, actor *int) (*domain.Item, error)
	Update(ctx context.Context, id uint, req UpdateItemRequest, actor *int) (*domain.Item, error)
	Delete(ctx context.Context, id uint, actor *int) error
}

type service struct {
	repo Repository
}

// NewService creates an item Service with the given repository.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// List returns a page of active items.
func (s *service) List(ctx context.Context, q domain.ListQuery) (*domain.PageResult[domain.Item], error) {
	return s.repo.List(ctx, q)
}

// Get retrieves an item by id.
func (s *service) Get(ctx context.Context, id uint) (*domain.Item, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByCode retrieves an item by its natural key.
func (s *service) GetByCode(ctx context.Context, code string) (*domain.Item, error) {
	return s.repo.GetByCode(ctx, strings.TrimSpace(code))
}

// Create checks code availability against the active set, then inserts.
// The storage unique index catches check-then-act race losers.
func (s *service) Create(ctx context.Context, req CreateItemRequest, actor *int) (*domain.Item, error) {
	req.ItemCode = strings.TrimSpace(req.ItemCode)
	req.ItemName = strings.TrimSpace(req.ItemName)
	if req.ItemCode == "" {
		return nil, domain.Validation("item_code is required")
	}
	if req.ItemName == "" {
		return nil, domain.Validation("item_name is required")
	}

	taken, err := s.repo.CodeExists(ctx, req.ItemCode, 0)
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

// Update merges the patch into the stored record. Item codes cannot change,
// so no uniqueness check is needed here.
func (s *service) Update(ctx context.Context, id uint, req UpdateItemRequest, actor *int) (*domain.Item, error) {
	return s.repo.Update(ctx, id, req.changes(), actor)
}

// Delete soft-deletes an item.
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
