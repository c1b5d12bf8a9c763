package network

import (
	"sync"

	"github.com/otricadziziusz/roguelike-tutorial/pkg/api"
)

// Broadcaster занимается только рассылкой кадров подписчикам.
// Игровой цикл пишет, сетевые горутины читают: все под мьютексом.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ID зрителя -> Личный канал
	subscribers map[string]chan api.FrameMessage
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.FrameMessage),
	}
}

// Register создает личный канал для зрителя
func (b *Broadcaster) Register(id string) chan api.FrameMessage {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[id]; ok {
		close(old)
	}

	ch := make(chan api.FrameMessage, 100)
	b.subscribers[id] = ch
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
}

// SendTo отправляет сообщение конкретному зрителю (Unicast).
// Полный канал - кадр теряется, игра не ждет медленных клиентов.
func (b *Broadcaster) SendTo(id string, msg api.FrameMessage) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[id]; ok {
		select {
		case ch <- msg:
			return true
		default:
		}
	}
	return false
}

// Broadcast отправляет всем зрителям
func (b *Broadcaster) Broadcast(msg api.FrameMessage) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// HasSubscriber проверяет, подключен ли зритель
func (b *Broadcaster) HasSubscriber(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[id]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
