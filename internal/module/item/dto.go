package item

import "github.com/simp-lee/warecat/internal/domain"

// CreateItemRequest is the payload for creating an item. Code and name are
// required; flags default to false when unset.
type CreateItemRequest struct {
	ItemCode            string   `json:"item_code" binding:"required,min=1,max=50"`
	ItemName            string   `json:"item_name" binding:"required,min=1,max=255"`
	ItemDescription     *string  `json:"item_description" binding:"omitempty,max=1000"`
	ItemType            *string  `json:"item_type" binding:"omitempty,max=50"`
	ItemUsageType       *string  `json:"item_usage_type" binding:"omitempty,max=50"`
	Category            *string  `json:"category" binding:"omitempty,max=100"`
	Subcategory         *string  `json:"subcategory" binding:"omitempty,max=100"`
	Brand               *string  `json:"brand" binding:"omitempty,max=100"`
	Model               *string  `json:"model" binding:"omitempty,max=100"`
	Unit                *string  `json:"unit" binding:"omitempty,max=20"`
	IsLoanable          *bool    `json:"is_loanable"`
	RequiresReturn      *bool    `json:"requires_return"`
	MaxLoanDurationDays *int     `json:"max_loan_duration_days" binding:"omitempty,min=1"`
	MaintenanceRequired *bool    `json:"maintenance_required"`
	CalibrationRequired *bool    `json:"calibration_required"`
	ReplacementCost     *float64 `json:"replacement_cost" binding:"omitempty,min=0"`
	StandardCost        *float64 `json:"standard_cost" binding:"omitempty,min=0"`
}

// toEntity builds the row to insert.
func (r CreateItemRequest) toEntity() domain.Item {
	return domain.Item{
		ItemCode:            r.ItemCode,
		ItemName:            r.ItemName,
		ItemDescription:     r.ItemDescription,
		ItemType:            r.ItemType,
		ItemUsageType:       r.ItemUsageType,
		Category:            r.Category,
		Subcategory:         r.Subcategory,
		Brand:               r.Brand,
		Model:               r.Model,
		Unit:                r.Unit,
		IsLoanable:          boolOrFalse(r.IsLoanable),
		RequiresReturn:      boolOrFalse(r.RequiresReturn),
		MaxLoanDurationDays: r.MaxLoanDurationDays,
		MaintenanceRequired: boolOrFalse(r.MaintenanceRequired),
		CalibrationRequired: boolOrFalse(r.CalibrationRequired),
		ReplacementCost:     r.ReplacementCost,
		StandardCost:        r.StandardCost,
	}
}

// UpdateItemRequest is the sparse patch payload. Item codes are immutable
// once assigned, so the patch deliberately has no item_code field.
type UpdateItemRequest struct {
	ItemName            *string  `json:"item_name" binding:"omitempty,min=1,max=255"`
	ItemDescription     *string  `json:"item_description" binding:"omitempty,max=1000"`
	ItemType            *string  `json:"item_type" binding:"omitempty,max=50"`
	ItemUsageType       *string  `json:"item_usage_type" binding:"omitempty,max=50"`
	Category            *string  `json:"category" binding:"omitempty,max=100"`
	Subcategory         *string  `json:"subcategory" binding:"omitempty,max=100"`
	Brand               *string  `json:"brand" binding:"omitempty,max=100"`
	Model               *string  `json:"model" binding:"omitempty,max=100"`
	Unit                *string  `json:"unit" binding:"omitempty,max=20"`
	IsLoanable          *bool    `json:"is_loanable"`
	RequiresReturn      *bool    `json:"requires_return"`
	MaxLoanDurationDays *int     `json:"max_loan_duration_days" binding:"omitempty,min=1"`
	MaintenanceRequired *bool    `json:"maintenance_required"`
	CalibrationRequired *bool    `json:"calibration_required"`
	ReplacementCost     *float64 `json:"replacement_cost" binding:"omitempty,min=0"`
	StandardCost        *float64 `json:"standard_cost" binding:"omitempty,min=0"`
}

// changes builds the column change set field by field from the present patch
// members; nil fields leave the stored value untouched.
func (r UpdateItemRequest) changes() map[string]any {
	m := make(map[string]any)
	if r.ItemName != nil {
		m["item_name"] = *r.ItemName
	}
	if r.ItemDescription != nil {
		m["item_description"] = *r.ItemDescription
	}
	if r.ItemType != nil {
		m["item_type"] = *r.ItemType
	}
	if r.ItemUsageType != nil {
		m["item_usage_type"] = *r.ItemUsageType
	}
	if r.Category != nil {
		m["category"] = *r.Category
	}
	if r.Subcategory != nil {
		m["subcategory"] = *r.Subcategory
	}
	if r.Brand != nil {
		m["brand"] = *r.Brand
	}
	if r.Model != nil {
		m["model"] = *r.Model
	}
	if r.Unit != nil {
		m["unit"] = *r.Unit
	}
	if r.IsLoanable != nil {
		m["is_loanable"] = *r.IsLoanable
	}
	if r.RequiresReturn != nil {
		m["requires_return"] = *r.RequiresReturn
	}
	if r.MaxLoanDurationDays != nil {
		m["max_loan_duration_days"] = *r.MaxLoanDurationDays
	}
	if r.MaintenanceRequired != nil {
		m["maintenance_required"] = *r.MaintenanceRequired
	}
	if r.CalibrationRequired != nil {
		m["calibration_required"] = *r.CalibrationRequired
	}
	if r.ReplacementCost != nil {
		m["replacement_cost"] = *r.ReplacementCost
	}
	if r.StandardCost != nil {
		m["standard_cost"] = *r.StandardCost
	}
	return m
}

func boolOrFalse(v *bool) bool {
	return v != nil && *v
}
