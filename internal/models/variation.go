package models

import "gorm.io/gorm"

// ProductVariation is one selectable option of a product (e.g. size or
// scent). PriceAdjustment is added to the base product price when the
// variation is chosen.
type ProductVariation struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	ProductID       uint    `json:"product_id" gorm:"index"`
	Name            string  `json:"name" validate:"required,min=1,max=100"`
	Value           string  `json:"value" validate:"required,min=1,max=100"`
	PriceAdjustment float64 `json:"price_adjustment"`
	StockQuantity   int     `json:"stock_quantity" validate:"gte=0"`
	Active          bool    `json:"active"`
	gorm.Model              // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
