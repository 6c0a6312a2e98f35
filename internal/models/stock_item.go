package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Quantity: sayısal stok miktarı. Eski kayıtlarda string olarak gelebiliyor,
// bozuk değerler 0 kabul edilir (hata fırlatılmaz).
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))

	// Sayı olarak dene
	if n, err := strconv.Atoi(s); err == nil {
		*q = Quantity(n)
		return nil
	}

	// String olarak gelmiş olabilir: "10", "10.0", "abc"
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		str = strings.TrimSpace(str)
		if n, err := strconv.Atoi(str); err == nil {
			*q = Quantity(n)
			return nil
		}
		if f, err := strconv.ParseFloat(str, 64); err == nil {
			*q = Quantity(int(f))
			return nil
		}
	}

	// Ondalıklı sayı olabilir
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*q = Quantity(int(f))
		return nil
	}

	*q = 0
	return nil
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(q))), nil
}

// StockItem: Stok kaydı (dashboard ve liste görünümlerinin okuduğu koleksiyon)
type StockItem struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	ItemName   string   `gorm:"size:100;not null" json:"item_name"`
	Quantity   Quantity `gorm:"not null;default:0" json:"quantity"`
	UnitPrice  float64  `gorm:"not null;default:0" json:"unit_price"`
	TotalPrice float64  `gorm:"not null;default:0" json:"total_price"` // quantity * unit_price, sunucu hesaplar
	SKU        string   `gorm:"size:50;index" json:"sku"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
