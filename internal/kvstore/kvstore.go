package kvstore

import "errors"

// ErrNotFound: Anahtar depoda yok. Geçerli bir durumdur, çağıran taraf
// "henüz kayıt yok" olarak yorumlar.
var ErrNotFound = errors.New("anahtar bulunamadı")

// Store: Paylaşılan anahtar-değer deposu. Değerler JSON serileştirilmiş
// string'lerdir; aktivite logu ve tetikleyici kayıtları burada tutulur.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
