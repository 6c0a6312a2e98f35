package activity

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"stokpanel-backend/internal/kvstore"
)

// MaxActivities: Log en fazla bu kadar kaydı tutar, fazlası eklenme sırasına
// göre düşer (FIFO, okuma erişiminden bağımsız).
const MaxActivities = 20

// DefaultPollInterval: Tetikleyici yoklama aralığı
const DefaultPollInterval = 100 * time.Millisecond

// Store: Sıralı, 20 kayıtla sınırlı aktivite logu. Bellekteki liste paylaşılan
// depodaki stockActivities anahtarıyla yedeklenir. Start/Close arasında kanalın
// doğrudan yuvasına kayıtlıdır, yayın olaylarına abonedir ve tetikleyici
// kaydını yoklar.
type Store struct {
	kv           kvstore.Store
	ch           *Channel
	notifier     Notifier
	pollInterval time.Duration

	mu        sync.Mutex
	recent    []Activity
	processed map[string]struct{} // işlenen olay kimlikleri (type-productName-timestamp)

	events      chan Event
	done        chan struct{}
	lastChecked int64
	started     bool
}

func NewStore(kv kvstore.Store, ch *Channel, notifier Notifier, pollInterval time.Duration) *Store {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	s := &Store{
		kv:           kv,
		ch:           ch,
		notifier:     notifier,
		pollInterval: pollInterval,
		processed:    make(map[string]struct{}),
	}
	s.hydrate()
	return s
}

// hydrate: Kalıcı logdan belleğe yükler. Bozuk veri "kayıt yok" sayılır.
// Yüklenen kayıtların kimlikleri işlenmiş sayılır; yeniden başlatma sonrası
// bekleyen tetikleyici aynı olayı ikinci kez kayda çeviremez. Bu yüzden
// zaman damgaları milisaniye hassasiyetinde birebir gidip gelmek zorunda.
func (s *Store) hydrate() {
	raw, err := s.kv.Get(KeyActivities)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			log.Println("Aktivite logu okunamadı:", err)
		}
		return
	}

	var saved []Activity
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		log.Println("Aktivite logu çözümlenemedi, boş log ile devam ediliyor:", err)
		return
	}

	if len(saved) > MaxActivities {
		saved = saved[:MaxActivities]
	}
	s.recent = saved
	for _, a := range saved {
		s.processed[identity(a.Type, a.ProductName, a.Timestamp)] = struct{}{}
	}
}

// Start: Kanala bağlanır ve yoklama döngüsünü başlatır. Bekleyen tetikleyici
// varsa hemen işlenir; store kapalıyken üretilen olaylar böylece kaybolmaz.
func (s *Store) Start() {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.done = make(chan struct{})
	s.mu.Unlock()

	s.ch.SetHandler(s.consume)
	s.events = s.ch.Subscribe()

	// Bekleyen tetikleyiciyi bir kez işle
	if raw, err := s.kv.Get(KeyTrigger); err == nil {
		var ev Event
		if err := json.Unmarshal([]byte(raw), &ev); err != nil {
			log.Println("Bekleyen tetikleyici çözümlenemedi:", err)
		} else {
			s.consume(ev)
		}
	}
	s.lastChecked = time.Now().UnixMilli()

	go s.run()
}

// Close: Kanal bağlantısını keser, yoklama zamanlayıcısını durdurur ve
// işlenen olay kümesini sıfırlar. Açık olmayan store'da no-op.
func (s *Store) Close() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	done := s.done
	s.processed = make(map[string]struct{})
	s.mu.Unlock()

	s.ch.ClearHandler()
	s.ch.Unsubscribe(s.events)
	close(done)
}

func (s *Store) run() {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case ev, ok := <-s.events:
			if !ok {
				return
			}
			s.consume(ev)
		case <-ticker.C:
			s.checkTrigger()
		}
	}
}

// checkTrigger: Tetikleyici kaydını yoklar. Son kontrolden yeni ve daha önce
// işlenmemiş bir olay bulursa kayda çevirir.
func (s *Store) checkTrigger() {
	raw, err := s.kv.Get(KeyTrigger)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			log.Println("Tetikleyici okunamadı:", err)
		}
		s.lastChecked = time.Now().UnixMilli()
		return
	}

	var ev Event
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		log.Println("Tetikleyici çözümlenemedi:", err)
	} else if ev.Timestamp > s.lastChecked {
		s.consume(ev)
	}

	s.lastChecked = time.Now().UnixMilli()
}

// consume: Kanaldan gelen olayı kayda çevirir. Kimlik daha önce görüldüyse
// hiçbir şey yapmaz; üç teslim yolu da aynı olay için tetiklense bile logda
// tek kayıt oluşur. Kayıt, olayın kendi zaman damgasını taşır ki kimlik
// kalıcı logdan da yeniden türetilebilsin.
func (s *Store) consume(ev Event) {
	if !ev.Type.Valid() || ev.ProductName == "" {
		return
	}

	id := ev.Identity()
	s.mu.Lock()
	if _, seen := s.processed[id]; seen {
		s.mu.Unlock()
		return
	}
	s.processed[id] = struct{}{}
	s.mu.Unlock()

	act := Activity{
		ID:          fmt.Sprintf("%d-%s", ev.Timestamp, newSuffix()),
		Type:        ev.Type,
		ProductName: ev.ProductName,
		Timestamp:   ev.Timestamp,
		Details:     ev.Details,
	}
	s.insert(act)
	s.notifier.Success(ev.Type, ev.ProductName, ev.Details)
}

// AddActivity: Kanalı atlayıp doğrudan kayıt ekler. Yeni aktiviteyi listenin
// başına koyar, 20 kayda kırpar ve kalıcı loga yazar. Bildirim kalıcılıktan
// bağımsız olarak her durumda gider.
func (s *Store) AddActivity(typ Type, productName, details string) Activity {
	act := New(typ, productName, details)

	s.mu.Lock()
	s.processed[identity(act.Type, act.ProductName, act.Timestamp)] = struct{}{}
	s.mu.Unlock()

	s.insert(act)
	s.notifier.Success(typ, productName, details)
	return act
}

// insert: Ekleme + FIFO kırpma + kalıcı yazma. Yazma hatası loglanır, bellek
// güncellemesini ve bildirimi engellemez.
func (s *Store) insert(act Activity) {
	s.mu.Lock()
	s.recent = append([]Activity{act}, s.recent...)
	if len(s.recent) > MaxActivities {
		s.recent = s.recent[:MaxActivities]
	}
	snapshot := make([]Activity, len(s.recent))
	copy(snapshot, s.recent)
	s.mu.Unlock()

	if payload, err := json.Marshal(snapshot); err == nil {
		if err := s.kv.Set(KeyActivities, string(payload)); err != nil {
			log.Println("Aktivite logu yazılamadı:", err)
		}
	}
}

// Recent: Geçerli logun kopyası, en yenisi başta.
func (s *Store) Recent() []Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Activity, len(s.recent))
	copy(out, s.recent)
	return out
}

// ClearAll: Logu ve ilgili depo anahtarlarını temizler. Boş store üzerinde
// çağrılması hata değildir.
func (s *Store) ClearAll() {
	s.mu.Lock()
	s.recent = nil
	s.mu.Unlock()

	if err := s.kv.Delete(KeyActivities); err != nil {
		log.Println("Aktivite logu silinemedi:", err)
	}
	if err := s.kv.Delete(KeyTrigger); err != nil {
		log.Println("Tetikleyici kaydı silinemedi:", err)
	}
}
