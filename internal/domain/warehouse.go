package domain

// Warehouse is a physical storage location in the catalog. WarehouseCode is
// the caller-assigned natural key, unique among active warehouses only; a
// soft-deleted warehouse frees its code for reuse.
type Warehouse struct {
	AuditModel
	WarehouseCode string  `gorm:"column:warehouse_code;size:50;not null;uniqueIndex:uq_warehouses_code_active,where:is_active" json:"warehouse_code"`
	WarehouseName string  `gorm:"column:warehouse_name;size:255;not null" json:"warehouse_name"`
	WarehouseType *string `gorm:"column:warehouse_type;size:50" json:"warehouse_type"`
	Address       *string `gorm:"size:500" json:"address"`
	City          *string `gorm:"size:100" json:"city"`
	State         *string `gorm:"size:100" json:"state"`
	PostalCode    *string `gorm:"column:postal_code;size:20" json:"postal_code"`
	Country       *string `gorm:"size:100" json:"country"`
	Phone         *string `gorm:"size:20" json:"phone"`
	Email         *string `gorm:"size:255" json:"email"`
	ManagerUserID *int    `gorm:"column:manager_user_id" json:"manager_user_id"`
	Timezone      *string `gorm:"size:64" json:"timezone"`
}

// TableName overrides the GORM default pluralization.
func (Warehouse) TableName() string { return "warehouses" }

// Code returns the natural key.
func (w Warehouse) Code() string { return w.WarehouseCode }
