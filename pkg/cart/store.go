package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/example/tableserve/pkg/models"
	"github.com/example/tableserve/pkg/repository"
)

func cartKey(key string) string {
	return fmt.Sprintf("cart:%s", key)
}

// RedisStore keeps each cart as one JSON blob in Redis.
type RedisStore struct {
	repo *repository.RedisRepository
}

func NewRedisStore(repo *repository.RedisRepository) *RedisStore {
	return &RedisStore{repo: repo}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]models.CartLine, error) {
	var lines []models.CartLine
	err := s.repo.GetJSON(ctx, cartKey(key), &lines)
	if errors.Is(err, repository.Nil) {
		return []models.CartLine{}, nil
	}
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, lines []models.CartLine) error {
	if lines == nil {
		lines = []models.CartLine{}
	}
	return s.repo.SetJSON(ctx, cartKey(key), lines, 0)
}

func (s *RedisStore) Clear(ctx context.Context, key string) error {
	return s.repo.Del(ctx, cartKey(key))
}

// MemoryStore is an in-process Store used in tests and single-node setups.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string][]models.CartLine
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]models.CartLine)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]models.CartLine, len(s.carts[key]))
	copy(lines, s.carts[key])
	return lines, nil
}

func (s *MemoryStore) Put(ctx context.Context, key string, lines []models.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]models.CartLine, len(lines))
	copy(stored, lines)
	s.carts[key] = stored
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, key)
	return nil
}
