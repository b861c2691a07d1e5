package service

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"internhub-go/internal/repository"
	"internhub-go/pkg/log"
)

func TestMain(m *testing.M) {
	log.Init("error", "console", "")
	os.Exit(m.Run())
}

// memKV 是一个内存实现的 KVStore，用于在不依赖 Redis/MySQL 的情况下测试服务。
// failPuts 置位后所有写入都会失败，用于验证持久化失败时状态不变。
type memKV struct {
	mu       sync.Mutex
	data     map[string][]byte
	failPuts bool
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *memKV) Put(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPuts {
		return errors.New("simulated write failure")
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

func (m *memKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPuts {
		return errors.New("simulated write failure")
	}
	delete(m.data, key)
	return nil
}

var _ repository.KVStore = (*memKV)(nil)
