package models

import "time"

// KVEntry: Paylaşılan anahtar-değer deposu. Aktivite logu ve tetikleyici
// kayıtları JSON string olarak burada tutulur. Anahtarın olmaması hata değildir.
type KVEntry struct {
	Key       string `gorm:"primaryKey;size:100"`
	Value     string `gorm:"type:jsonb"` // JSON serileştirilmiş değer
	UpdatedAt time.Time
}
