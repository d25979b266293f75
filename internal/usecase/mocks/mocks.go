package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/iho/receipts/internal/domain"
)

// MockStorage is a mock implementation of Storage backed by a map. Any
// Func field, when set, overrides the default behavior.
type MockStorage struct {
	mu    sync.RWMutex
	slots map[string]string

	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockStorage() *MockStorage {
	return &MockStorage{
		slots: make(map[string]string),
	}
}

func (m *MockStorage) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if value, ok := m.slots[key]; ok {
		return value, nil
	}
	return "", domain.ErrSlotNotFound
}

func (m *MockStorage) Set(ctx context.Context, key, value string) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = value
	return nil
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}

// MockLocator is a mock implementation of Locator holding one address.
type MockLocator struct {
	mu      sync.RWMutex
	address string

	CurrentFunc func(ctx context.Context) (string, error)
	ReplaceFunc func(ctx context.Context, url string) error
}

func NewMockLocator(address string) *MockLocator {
	return &MockLocator{address: address}
}

func (m *MockLocator) Current(ctx context.Context) (string, error) {
	if m.CurrentFunc != nil {
		return m.CurrentFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.address, nil
}

func (m *MockLocator) Replace(ctx context.Context, url string) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, url)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.address = url
	return nil
}

// Address returns the currently held address.
func (m *MockLocator) Address() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.address
}

// MockClipboard is a mock implementation of Clipboard recording writes.
type MockClipboard struct {
	mu     sync.Mutex
	writes []string

	WriteFunc func(ctx context.Context, text string) error
}

func NewMockClipboard() *MockClipboard {
	return &MockClipboard{}
}

func (m *MockClipboard) Write(ctx context.Context, text string) error {
	if m.WriteFunc != nil {
		return m.WriteFunc(ctx, text)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = append(m.writes, text)
	return nil
}

// Writes returns every text written so far.
func (m *MockClipboard) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.writes...)
}

// MockClock is a mock implementation of Clock returning a fixed time.
type MockClock struct {
	NowFunc func() time.Time
}

func NewMockClock(now time.Time) *MockClock {
	return &MockClock{
		NowFunc: func() time.Time { return now },
	}
}

func (m *MockClock) Now() time.Time {
	return m.NowFunc()
}
