package kvstore

import (
	"errors"
	"fmt"

	"stokpanel-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore: kv_entries tablosu üzerinde çalışan kalıcı depo.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(key string) (string, error) {
	var entry models.KVEntry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("kayıt okunamadı: %w", err)
	}
	return entry.Value, nil
}

func (s *GormStore) Set(key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	// Varsa güncelle, yoksa oluştur
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("kayıt yazılamadı: %w", err)
	}
	return nil
}

func (s *GormStore) Delete(key string) error {
	if err := s.db.Delete(&models.KVEntry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("kayıt silinemedi: %w", err)
	}
	return nil
}
