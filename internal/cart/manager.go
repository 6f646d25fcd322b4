package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Manager はセッションidごとのカートを持つ。サーバー側には
// 永続化しない（プロセスが落ちればカートも消える）。
// ロックはmapの出し入れだけ。カート自体は1セッション
// 1リクエスト直列の前提。
type Manager struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Cart)}
}

// NewSession は新しいセッションidを発行する。
func (m *Manager) NewSession() string {
	return uuid.NewString()
}

// Get はセッションのカートを返す。無ければ作る。
func (m *Manager) Get(sessionID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.carts[sessionID]
	if !ok {
		c = New()
		m.carts[sessionID] = c
	}
	return c
}

// Drop はセッションのカートを破棄する。
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
}
