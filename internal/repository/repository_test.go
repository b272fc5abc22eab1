package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/simp-lee/warecat/internal/domain"
)

var warehouseDesc = Descriptor{
	Resource:      "warehouse",
	CodeColumn:    "warehouse_code",
	SearchColumns: []string{"warehouse_code", "warehouse_name", "city"},
	SortColumns: map[string]string{
		"code":       "warehouse_code",
		"name":       "warehouse_name",
		"created_at": "created_at",
	},
	DefaultSort: "warehouse_name",
}

// setupTestRepo creates an in-memory SQLite database with the warehouses
// table and a Repository over it.
func setupTestRepo(t *testing.T) *Repository[domain.Warehouse] {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Warehouse{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New[domain.Warehouse](db, warehouseDesc)
}

func newWarehouse(code, name string) *domain.Warehouse {
	return &domain.Warehouse{
		AuditModel:    domain.AuditModel{IsActive: true},
		WarehouseCode: code,
		WarehouseName: name,
	}
}

func strPtr(s string) *string { return &s }

func TestCreateAndGetByID_RoundTrip(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	wh := newWarehouse("WH-01", "Central")
	wh.City = strPtr("Jakarta")
	if err := repo.Create(ctx, wh); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if wh.ID == 0 {
		t.Fatal("expected non-zero ID after Create")
	}
	if wh.CreatedAt.IsZero() || wh.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be populated after Create")
	}

	got, err := repo.GetByID(ctx, wh.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.WarehouseCode != "WH-01" || got.WarehouseName != "Central" {
		t.Errorf("got %+v; want code=WH-01, name=Central", got)
	}
	if got.City == nil || *got.City != "Jakarta" {
		t.Errorf("City = %v; want Jakarta", got.City)
	}
	if !got.IsActive {
		t.Error("expected created record to be active")
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GetByID(context.Background(), 999)
	if !domain.IsNotFound(err) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestGetByCode(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, newWarehouse("WH-01", "Central")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByCode(ctx, "WH-01")
	if err != nil {
		t.Fatalf("GetByCode: %v", err)
	}
	if got.WarehouseName != "Central" {
		t.Errorf("WarehouseName = %q; want Central", got.WarehouseName)
	}

	if _, err := repo.GetByCode(ctx, "WH-99"); !domain.IsNotFound(err) {
		t.Errorf("expected NOT_FOUND for unknown code, got %v", err)
	}
}

func TestList_Pagination(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		wh := newWarehouse(fmt.Sprintf("WH-%02d", i), fmt.Sprintf("Warehouse %d", i))
		if err := repo.Create(ctx, wh); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	result, err := repo.List(ctx, domain.ListQuery{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	meta := result.Pagination
	if meta.Total != 5 {
		t.Errorf("Total = %d; want 5", meta.Total)
	}
	if meta.TotalPages != 3 {
		t.Errorf("TotalPages = %d; want 3", meta.TotalPages)
	}
	if !meta.HasNext || !meta.HasPrev {
		t.Errorf("HasNext=%v HasPrev=%v; want true true", meta.HasNext, meta.HasPrev)
	}
	if len(result.Data) != 2 {
		t.Errorf("len(Data) = %d; want 2", len(result.Data))
	}
	// Default sort is warehouse_name ascending: page 2 starts at Warehouse 3.
	if result.Data[0].WarehouseName != "Warehouse 3" {
		t.Errorf("Data[0].WarehouseName = %q; want Warehouse 3", result.Data[0].WarehouseName)
	}
}

func TestList_SearchCaseInsensitive(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	a := newWarehouse("WH-01", "Central Depot")
	a.City = strPtr("Jakarta")
	b := newWarehouse("WH-02", "North Hub")
	b.City = strPtr("Surabaya")
	for _, wh := range []*domain.Warehouse{a, b} {
		if err := repo.Create(ctx, wh); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	result, err := repo.List(ctx, domain.ListQuery{Page: 1, Limit: 20, Search: "jakar"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Pagination.Total != 1 {
		t.Fatalf("Total = %d; want 1", result.Pagination.Total)
	}
	if result.Data[0].WarehouseCode != "WH-01" {
		t.Errorf("matched %q; want WH-01", result.Data[0].WarehouseCode)
	}
}

func TestList_SortFallbackAndDirection(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	for _, wh := range []*domain.Warehouse{
		newWarehouse("WH-B", "Bravo"),
		newWarehouse("WH-A", "Alpha"),
	} {
		if err := repo.Create(ctx, wh); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	// Unrecognized sort_by falls back to warehouse_name; unrecognized
	// sort_order falls back to ascending.
	result, err := repo.List(ctx, domain.ListQuery{Page: 1, Limit: 20, SortBy: "drop table", SortOrder: "sideways"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Data[0].WarehouseName != "Alpha" {
		t.Errorf("Data[0] = %q; want Alpha", result.Data[0].WarehouseName)
	}

	result, err = repo.List(ctx, domain.ListQuery{Page: 1, Limit: 20, SortBy: "code", SortOrder: "DESC"})
	if err != nil {
		t.Fatalf("List desc: %v", err)
	}
	if result.Data[0].WarehouseCode != "WH-B" {
		t.Errorf("Data[0] = %q; want WH-B", result.Data[0].WarehouseCode)
	}
}

func TestList_ExcludesInactive(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	wh := newWarehouse("WH-01", "Central")
	if err := repo.Create(ctx, wh); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Delete(ctx, wh.ID, nil); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	result, err := repo.List(ctx, domain.ListQuery{Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Pagination.Total != 0 || len(result.Data) != 0 {
		t.Errorf("expected empty list after soft delete, got total=%d len=%d", result.Pagination.Total, len(result.Data))
	}
}

func TestUpdate_MergePreservesOmittedFields(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	wh := newWarehouse("WH-01", "Central")
	wh.City = strPtr("Jakarta")
	if err := repo.Create(ctx, wh); err != nil {
		t.Fatalf("Create: %v", err)
	}
	before := wh.UpdatedAt

	time.Sleep(10 * time.Millisecond)

	actor := 7
	got, err := repo.Update(ctx, wh.ID, map[string]any{"warehouse_name": "Central Renamed"}, &actor)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.WarehouseName != "Central Renamed" {
		t.Errorf("WarehouseName = %q; want Central Renamed", got.WarehouseName)
	}
	if got.City == nil || *got.City != "Jakarta" {
		t.Errorf("City = %v; want Jakarta preserved", got.City)
	}
	if !got.UpdatedAt.After(before) {
		t.Errorf("UpdatedAt = %v; want later than %v", got.UpdatedAt, before)
	}
	if got.UpdatedBy == nil || *got.UpdatedBy != 7 {
		t.Errorf("UpdatedBy = %v; want 7", got.UpdatedBy)
	}
}

func TestUpdate_EmptyChangesStillTouchesAudit(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	wh := newWarehouse("WH-01", "Central")
	if err := repo.Create(ctx, wh); err != nil {
		t.Fatalf("Create: %v", err)
	}
	before := wh.UpdatedAt

	time.Sleep(10 * time.Millisecond)

	got, err := repo.Update(ctx, wh.ID, map[string]any{}, nil)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !got.UpdatedAt.After(before) {
		t.Errorf("UpdatedAt = %v; want refreshed even with no visible change", got.UpdatedAt)
	}
}

func TestUpdate_NotFoundAndInactive(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	if _, err := repo.Update(ctx, 999, map[string]any{"warehouse_name": "X"}, nil); !domain.IsNotFound(err) {
		t.Errorf("expected NOT_FOUND for absent id, got %v", err)
	}

	wh := newWarehouse("WH-01", "Central")
	if err := repo.Create(ctx, wh); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Delete(ctx, wh.ID, nil); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Update(ctx, wh.ID, map[string]any{"warehouse_name": "X"}, nil); !domain.IsNotFound(err) {
		t.Errorf("expected NOT_FOUND for inactive id, got %v", err)
	}
}

func TestDelete_IdempotenceAndCodeReuse(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	wh := newWarehouse("WH-01", "Central")
	if err := repo.Create(ctx, wh); err != nil {
		t.Fatalf("Create: %v", err)
	}

	affected, err := repo.Delete(ctx, wh.ID, nil)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !affected {
		t.Fatal("expected first delete to affect a row")
	}

	affected, err = repo.Delete(ctx, wh.ID, nil)
	if err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if affected {
		t.Error("expected second delete to affect no rows")
	}

	if _, err := repo.GetByID(ctx, wh.ID); !domain.IsNotFound(err) {
		t.Errorf("expected NOT_FOUND after delete, got %v", err)
	}

	// The inactive row no longer blocks its code.
	taken, err := repo.CodeExists(ctx, "WH-01", 0)
	if err != nil {
		t.Fatalf("CodeExists: %v", err)
	}
	if taken {
		t.Error("expected soft-deleted code to be free for reuse")
	}

	if err := repo.Create(ctx, newWarehouse("WH-01", "Central Reborn")); err != nil {
		t.Errorf("expected create with reused code to succeed, got %v", err)
	}
}

func TestCodeExists_Exclusion(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	a := newWarehouse("WH-01", "Central")
	b := newWarehouse("WH-02", "North")
	for _, wh := range []*domain.Warehouse{a, b} {
		if err := repo.Create(ctx, wh); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	taken, err := repo.CodeExists(ctx, "WH-01", 0)
	if err != nil {
		t.Fatalf("CodeExists: %v", err)
	}
	if !taken {
		t.Error("expected WH-01 to be taken")
	}

	// Self-exclusion: a record does not collide with its own code.
	taken, err = repo.CodeExists(ctx, "WH-01", a.ID)
	if err != nil {
		t.Fatalf("CodeExists with exclusion: %v", err)
	}
	if taken {
		t.Error("expected WH-01 to be free when excluding its own record")
	}

	// A different record still collides.
	taken, err = repo.CodeExists(ctx, "WH-01", b.ID)
	if err != nil {
		t.Fatalf("CodeExists excluding other: %v", err)
	}
	if !taken {
		t.Error("expected WH-01 to be taken when excluding an unrelated record")
	}
}

func TestCreate_DuplicateActiveCode(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, newWarehouse("WH-01", "Central")); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	err := repo.Create(ctx, newWarehouse("WH-01", "Impostor"))
	if !domain.IsAlreadyExists(err) {
		t.Errorf("expected ALREADY_EXISTS from unique index, got %v", err)
	}
}

func TestMapError(t *testing.T) {
	repo := setupTestRepo(t)

	if err := repo.mapError(nil); err != nil {
		t.Errorf("mapError(nil) = %v; want nil", err)
	}
	if err := repo.mapError(gorm.ErrRecordNotFound); !domain.IsNotFound(err) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
	if err := repo.mapError(gorm.ErrDuplicatedKey); !domain.IsAlreadyExists(err) {
		t.Errorf("expected ALREADY_EXISTS, got %v", err)
	}
	if err := repo.mapError(errors.New("UNIQUE constraint failed: warehouses.warehouse_code")); !domain.IsAlreadyExists(err) {
		t.Errorf("expected ALREADY_EXISTS from driver message, got %v", err)
	}

	err := repo.mapError(errors.New("connection reset"))
	if !domain.IsDatabaseError(err) {
		t.Errorf("expected DATABASE_ERROR, got %v", err)
	}
	// Internal detail is preserved for logging but not in the message.
	var appErr *domain.AppError
	if errors.As(err, &appErr) && appErr.Message != "database error occurred" {
		t.Errorf("Message = %q; want generic", appErr.Message)
	}
}
