package activity

import (
	"encoding/json"
	"testing"
	"time"

	"stokpanel-backend/internal/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannel_DirectHandlerCalled(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	ch := NewChannel(kv)

	var got []Event
	ch.SetHandler(func(ev Event) { got = append(got, ev) })

	ch.Publish(TypeAdd, "Widget A", "Quantity: 10, Unit price: 2.50")

	require.Len(t, got, 1)
	assert.Equal(t, TypeAdd, got[0].Type)
	assert.Equal(t, "Widget A", got[0].ProductName)
	assert.NotZero(t, got[0].Timestamp)

	ch.ClearHandler()
	ch.Publish(TypeAdd, "Widget B", "details")
	assert.Len(t, got, 1)
}

func TestChannel_SubscriberReceivesEvent(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	ch := NewChannel(kv)

	sub := ch.Subscribe()
	ch.Publish(TypeUpdate, "Widget A", "Quantity: 2, Unit price: 1.00")

	select {
	case ev := <-sub:
		assert.Equal(t, TypeUpdate, ev.Type)
		assert.Equal(t, EventStockUpdated, ev.Name())
	case <-time.After(time.Second):
		t.Fatal("yayın olayı gelmedi")
	}
}

func TestChannel_UnsubscribeClosesChannel(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	ch := NewChannel(kv)

	sub := ch.Subscribe()
	ch.Unsubscribe(sub)

	_, ok := <-sub
	assert.False(t, ok)
}

func TestChannel_TriggerPersisted(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	ch := NewChannel(kv)

	ch.Publish(TypeDelete, "Widget A", "Quantity: 5 removed from inventory")

	raw, err := kv.Get(KeyTrigger)
	require.NoError(t, err)

	var ev Event
	require.NoError(t, json.Unmarshal([]byte(raw), &ev))
	assert.Equal(t, TypeDelete, ev.Type)
	assert.Equal(t, "Widget A", ev.ProductName)
	assert.NotZero(t, ev.Timestamp)
}

func TestChannel_PublishSurvivesStorageFailure(t *testing.T) {
	ch := NewChannel(failingKV{})

	var got []Event
	ch.SetHandler(func(ev Event) { got = append(got, ev) })

	// Tetikleyici yazılamasa bile doğrudan teslim çalışır
	ch.Publish(TypeAdd, "Widget A", "details")
	assert.Len(t, got, 1)
}

func TestEvent_Identity(t *testing.T) {
	ev := Event{Type: TypeAdd, ProductName: "Widget A", Timestamp: 1700000000123}
	assert.Equal(t, "add-Widget A-1700000000123", ev.Identity())

	// Aynı mantıksal olay aynı kimliği üretir
	same := Event{Type: TypeAdd, ProductName: "Widget A", Timestamp: 1700000000123, Details: "farklı detay"}
	assert.Equal(t, ev.Identity(), same.Identity())
}

func TestEvent_Name(t *testing.T) {
	assert.Equal(t, EventStockAdded, Event{Type: TypeAdd}.Name())
	assert.Equal(t, EventStockUpdated, Event{Type: TypeUpdate}.Name())
	assert.Equal(t, EventStockUpdated, Event{Type: TypeDelete}.Name())
}

func TestType_Verb(t *testing.T) {
	assert.Equal(t, "added", TypeAdd.Verb())
	assert.Equal(t, "updated", TypeUpdate.Verb())
	assert.Equal(t, "deleted", TypeDelete.Verb())
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "✅ New stock added: Widget A", Message(TypeAdd, "Widget A"))
	assert.Equal(t, "📝 Stock updated: Widget A", Message(TypeUpdate, "Widget A"))
	assert.Equal(t, "🗑️ Stock deleted: Widget A", Message(TypeDelete, "Widget A"))
}
