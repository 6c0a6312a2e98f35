package activity

import (
	"fmt"
	"log"
)

// Notifier: Başarılı bir stok işleminin kullanıcıya duyurulması. Kalıcılıktan
// bağımsız çalışır; kayıt yazılamasa bile bildirim gönderilir.
type Notifier interface {
	Success(typ Type, productName, details string)
}

// Message: Tür bazlı bildirim metni. Orijinal panelin toast mesajlarıyla
// birebir aynı tutulur.
func Message(typ Type, productName string) string {
	switch typ {
	case TypeAdd:
		return fmt.Sprintf("✅ New stock added: %s", productName)
	case TypeUpdate:
		return fmt.Sprintf("📝 Stock updated: %s", productName)
	case TypeDelete:
		return fmt.Sprintf("🗑️ Stock deleted: %s", productName)
	}
	return productName
}

// LogNotifier: Varsayılan bildirim kanalı, sunucu loguna yazar.
type LogNotifier struct{}

func (LogNotifier) Success(typ Type, productName, details string) {
	log.Printf("%s (%s)", Message(typ, productName), details)
}
