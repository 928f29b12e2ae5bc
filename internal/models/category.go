package models

import "gorm.io/gorm"

// Category groups products in the catalog. ImageURL holds an icon name the
// storefront renders next to the category button.
type Category struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	ImageURL    string `json:"image_url"`
	SortOrder   int    `json:"sort_order"`
	Active      bool   `json:"active"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
