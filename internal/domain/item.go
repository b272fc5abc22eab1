package domain

// Item is a stockable or loanable asset definition. ItemCode is the natural
// key with the same active-scoped uniqueness rule as warehouse codes.
type Item struct {
	AuditModel
	ItemCode            string   `gorm:"column:item_code;size:50;not null;uniqueIndex:uq_items_code_active,where:is_active" json:"item_code"`
	ItemName            string   `gorm:"column:item_name;size:255;not null" json:"item_name"`
	ItemDescription     *string  `gorm:"column:item_description;size:1000" json:"item_description"`
	ItemType            *string  `gorm:"column:item_type;size:50" json:"item_type"`
	ItemUsageType       *string  `gorm:"column:item_usage_type;size:50" json:"item_usage_type"`
	Category            *string  `gorm:"size:100" json:"category"`
	Subcategory         *string  `gorm:"size:100" json:"subcategory"`
	Brand               *string  `gorm:"size:100" json:"brand"`
	Model               *string  `gorm:"size:100" json:"model"`
	Unit                *string  `gorm:"size:20" json:"unit"`
	IsLoanable          bool     `gorm:"column:is_loanable;not null;default:false" json:"is_loanable"`
	RequiresReturn      bool     `gorm:"column:requires_return;not null;default:false" json:"requires_return"`
	MaxLoanDurationDays *int     `gorm:"column:max_loan_duration_days" json:"max_loan_duration_days"`
	MaintenanceRequired bool     `gorm:"column:maintenance_required;not null;default:false" json:"maintenance_required"`
	CalibrationRequired bool     `gorm:"column:calibration_required;not null;default:false" json:"calibration_required"`
	ReplacementCost     *float64 `gorm:"column:replacement_cost" json:"replacement_cost"`
	StandardCost        *float64 `gorm:"column:standard_cost" json:"standard_cost"`
}

// TableName overrides the GORM default pluralization.
func (Item) TableName() string { return "items" }

// Code returns the natural key.
func (i Item) Code() string { return i.ItemCode }
