package models

import "time"

// Product: Satış ürünü. Kâr alanları sunucu tarafında maliyet ve satış
// fiyatından hesaplanır.
type Product struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProductName  string    `gorm:"size:100;not null;unique" json:"product_name"`
	CostTotal    float64   `gorm:"not null;default:0" json:"cost_total"`
	SellingPrice float64   `gorm:"not null;default:0" json:"selling_price"`
	Profit       float64   `gorm:"not null;default:0" json:"profit"`        // selling_price - cost_total
	ProfitMargin float64   `gorm:"not null;default:0" json:"profit_margin"` // yüzde
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
