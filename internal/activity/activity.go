package activity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Type: Aktivite türü. Kapalı küme; yeni tür eklemek uyumluluk kırılmasıdır.
type Type string

const (
	TypeAdd    Type = "add"
	TypeUpdate Type = "update"
	TypeDelete Type = "delete"
)

func (t Type) Valid() bool {
	switch t {
	case TypeAdd, TypeUpdate, TypeDelete:
		return true
	}
	return false
}

// Verb: Türün kullanıcıya görünen fiil karşılığı. Bu eşleme başka kodların
// bağımlı olduğu bir sözleşmedir, değiştirilmemeli.
func (t Type) Verb() string {
	switch t {
	case TypeAdd:
		return "added"
	case TypeUpdate:
		return "updated"
	case TypeDelete:
		return "deleted"
	}
	return string(t)
}

// Activity: Tek bir stok değişikliğinin kaydı. Oluşturulduktan sonra
// değiştirilmez.
type Activity struct {
	ID          string `json:"id"`
	Type        Type   `json:"type"`
	ProductName string `json:"productName"` // olay anındaki görünen ad, foreign key değil
	Timestamp   int64  `json:"timestamp"`   // unix milisaniye
	Details     string `json:"details"`
}

func (a Activity) Time() time.Time {
	return time.UnixMilli(a.Timestamp)
}

// newSuffix: ID için rastgele sonek, aynı milisaniyede çakışmayı önler.
func newSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}

// identity: Tekilleştirme anahtarı (type-productName-timestamp).
func identity(typ Type, productName string, timestamp int64) string {
	return fmt.Sprintf("%s-%s-%d", typ, productName, timestamp)
}

// New: Yeni aktivite oluşturur. ID, zaman damgası + rastgele sonek
// formatındadır.
func New(typ Type, productName, details string) Activity {
	now := time.Now().UnixMilli()

	return Activity{
		ID:          fmt.Sprintf("%d-%s", now, newSuffix()),
		Type:        typ,
		ProductName: productName,
		Timestamp:   now,
		Details:     details,
	}
}
