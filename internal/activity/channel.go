package activity

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"stokpanel-backend/internal/kvstore"
)

// Paylaşılan depo anahtarları
const (
	KeyActivities = "stockActivities"      // serileştirilmiş aktivite logu (en fazla 20 kayıt)
	KeyTrigger    = "stockActivityTrigger" // tek seferlik tetikleyici kaydı
)

// Yayın olay adları
const (
	EventStockAdded   = "stockAdded"
	EventStockUpdated = "stockUpdated"
)

// Event: Kanal üzerinden taşınan olay yükü.
type Event struct {
	Type        Type   `json:"type"`
	ProductName string `json:"productName"`
	Details     string `json:"details"`
	Timestamp   int64  `json:"timestamp"` // unix milisaniye
}

// Identity: Tekilleştirme anahtarı. Aynı mantıksal olay birden fazla yoldan
// gelse de bu kimlik üzerinden tek kayda indirgenir.
func (e Event) Identity() string {
	return identity(e.Type, e.ProductName, e.Timestamp)
}

// Name: Olayın yayın adı.
func (e Event) Name() string {
	if e.Type == TypeAdd {
		return EventStockAdded
	}
	return EventStockUpdated
}

// Handler: Doğrudan kayıt yuvası. Açık durumdaki store kendini buraya kaydeder.
type Handler func(ev Event)

// Channel: Aktivite yayılım kanalı. Üreticiler tek bir Publish çağrısı yapar;
// teslimat üç yoldan denenir:
//  1. doğrudan kayıt yuvası (store açıksa en hızlı yol)
//  2. süreç içi yayın (bus abonesi olan her store'a)
//  3. kalıcı tetikleyici kaydı (store kapalıyken bile hayatta kalan tek yol,
//     açık store ~100ms aralıkla bu kaydı yoklar)
//
// Hangi yollar tetiklenirse tetiklensin store tarafındaki kimlik kontrolü
// olay başına en fazla bir kayıt garantiler.
type Channel struct {
	mu      sync.Mutex
	handler Handler
	subs    []chan Event
	kv      kvstore.Store
}

func NewChannel(kv kvstore.Store) *Channel {
	return &Channel{kv: kv}
}

// SetHandler: Doğrudan yuvayı doldurur. Aynı anda en fazla bir handler tutulur.
func (ch *Channel) SetHandler(h Handler) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.handler = h
}

func (ch *Channel) ClearHandler() {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.handler = nil
}

// Subscribe: Yayın olayları için abone kanalı döner.
func (ch *Channel) Subscribe() chan Event {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	c := make(chan Event, 16)
	ch.subs = append(ch.subs, c)
	return c
}

func (ch *Channel) Unsubscribe(c chan Event) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	for i, sub := range ch.subs {
		if sub == c {
			ch.subs = append(ch.subs[:i], ch.subs[i+1:]...)
			close(sub)
			return
		}
	}
}

// Publish: Başarılı bir stok mutasyonunu duyurur. Mutasyonun uzak onayından
// SONRA çağrılmalıdır; başarısız bir işlem için aktivite üretilmez.
func (ch *Channel) Publish(typ Type, productName, details string) {
	ev := Event{
		Type:        typ,
		ProductName: productName,
		Details:     details,
		Timestamp:   time.Now().UnixMilli(),
	}

	// Kalıcı tetikleyici: store o anda kapalıysa olayı taşıyan tek yol.
	// Yazma hatası bildirimi engellemez, sadece loglanır.
	if payload, err := json.Marshal(ev); err == nil {
		if err := ch.kv.Set(KeyTrigger, string(payload)); err != nil {
			log.Println("Tetikleyici kaydı yazılamadı:", err)
		}
	}

	ch.mu.Lock()
	handler := ch.handler
	subs := make([]chan Event, len(ch.subs))
	copy(subs, ch.subs)
	ch.mu.Unlock()

	// Doğrudan yol: store açıksa tercih edilen teslim
	if handler != nil {
		handler(ev)
	}

	// Yayın yolu: dolu abone kanalı bloklamaz, yoklama yolu açığı kapatır
	for _, sub := range subs {
		select {
		case sub <- ev:
		default:
			log.Println("Abone kanalı dolu, olay yayından düşürüldü:", ev.Identity())
		}
	}
}
