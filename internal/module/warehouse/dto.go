package warehouse

import "github.com/simp-lee/warecat/internal/domain"

// Defaults applied at creation time when the caller leaves the field unset.
const (
	defaultCountry  = "Indonesia"
	defaultTimezone = "Asia/Jakarta"
)

// CreateWarehouseRequest is the payload for creating a warehouse. Code and
// name are required; everything else is optional.
type CreateWarehouseRequest struct {
	WarehouseCode string  `json:"warehouse_code" binding:"required,min=1,max=50"`
	WarehouseName string  `json:"warehouse_name" binding:"required,min=1,max=255"`
	WarehouseType *string `json:"warehouse_type" binding:"omitempty,max=50"`
	Address       *string `json:"address" binding:"omitempty,max=500"`
	City          *string `json:"city" binding:"omitempty,max=100"`
	State         *string `json:"state" binding:"omitempty,max=100"`
	PostalCode    *string `json:"postal_code" binding:"omitempty,max=20"`
	Country       *string `json:"country" binding:"omitempty,max=100"`
	Phone         *string `json:"phone" binding:"omitempty,max=20"`
	Email         *string `json:"email" binding:"omitempty,email"`
	ManagerUserID *int    `json:"manager_user_id"`
	Timezone      *string `json:"timezone" binding:"omitempty,max=64"`
}

// toEntity builds the row to insert, applying creation defaults.
func (r CreateWarehouseRequest) toEntity() domain.Warehouse {
	country := r.Country
	if country == nil {
		c := defaultCountry
		country = &c
	}
	timezone := r.Timezone
	if timezone == nil {
		tz := defaultTimezone
		timezone = &tz
	}

	return domain.Warehouse{
		WarehouseCode: r.WarehouseCode,
		WarehouseName: r.WarehouseName,
		WarehouseType: r.WarehouseType,
		Address:       r.Address,
		City:          r.City,
		State:         r.State,
		PostalCode:    r.PostalCode,
		Country:       country,
		Phone:         r.Phone,
		Email:         r.Email,
		ManagerUserID: r.ManagerUserID,
		Timezone:      timezone,
	}
}

// UpdateWarehouseRequest is the sparse patch payload. A nil field means
// "leave unchanged"; a present field overwrites the stored value. Warehouse
// codes are mutable here (item codes are not), and code changes go through
// the same active-set uniqueness check as creation.
type UpdateWarehouseRequest struct {
	WarehouseCode *string `json:"warehouse_code" binding:"omitempty,min=1,max=50"`
	WarehouseName *string `json:"warehouse_name" binding:"omitempty,min=1,max=255"`
	WarehouseType *string `json:"warehouse_type" binding:"omitempty,max=50"`
	Address       *string `json:"address" binding:"omitempty,max=500"`
	City          *string `json:"city" binding:"omitempty,max=100"`
	State         *string `json:"state" binding:"omitempty,max=100"`
	PostalCode    *string `json:"postal_code" binding:"omitempty,max=20"`
	Country       *string `json:"country" binding:"omitempty,max=100"`
	Phone         *string `json:"phone" binding:"omitempty,max=20"`
	Email         *string `json:"email" binding:"omitempty,email"`
	ManagerUserID *int    `json:"manager_user_id"`
	Timezone      *string `json:"timezone" binding:"omitempty,max=64"`
}

// changes builds the column change set field by field from the present patch
// members. The repository stamps updated_at/updated_by on top of this, so an
// all-nil patch is still a valid merge.
func (r UpdateWarehouseRequest) changes() map[string]any {
	m := make(map[string]any)
	if r.WarehouseCode != nil {
		m["warehouse_code"] = *r.WarehouseCode
	}
	if r.WarehouseName != nil {
		m["warehouse_name"] = *r.WarehouseName
	}
	if r.WarehouseType != nil {
		m["warehouse_type"] = *r.WarehouseType
	}
	if r.Address != nil {
		m["address"] = *r.Address
	}
	if r.City != nil {
		m["city"] = *r.City
	}
	if r.State != nil {
		m["state"] = *r.State
	}
	if r.PostalCode != nil {
		m["postal_code"] = *r.PostalCode
	}
	if r.Country != nil {
		m["country"] = *r.Country
	}
	if r.Phone != nil {
		m["phone"] = *r.Phone
	}
	if r.Email != nil {
		m["email"] = *r.Email
	}
	if r.ManagerUserID != nil {
		m["manager_user_id"] = *r.ManagerUserID
	}
	if r.Timezone != nil {
		m["timezone"] = *r.Timezone
	}
	return m
}
