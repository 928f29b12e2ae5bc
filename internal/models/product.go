package models

import "gorm.io/gorm"

// Product represents a product in the store catalog.
type Product struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	Name          string  `json:"name" validate:"required,min=2,max=100"`
	Description   string  `json:"description" validate:"omitempty,max=500"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	CategoryID    uint    `json:"category_id" validate:"required"`
	ImageURL      string  `json:"image_url"`
	Featured      bool    `json:"featured"`
	Active        bool    `json:"active"`
	SortOrder     int     `json:"sort_order"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ProductFilter narrows down a catalog listing. Zero values mean "no filter".
type ProductFilter struct {
	CategoryID      uint
	FeaturedOnly    bool
	Search          string // matched against name and description
	Limit           int
	IncludeInactive bool // admin listings see deactivated products too
}
