package selection

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

const stateTTL = time.Hour * 12
const localTTL = time.Minute

type localEntry struct {
	expires time.Time
	state   State
}

// RedisStorage shares session selection state between instances, with a
// short lived local layer in front to keep the action round trips cheap.
type RedisStorage struct {
	mu     sync.Mutex
	client *redis.Client
	local  map[string]localEntry
}

func NewRedisStorage(addr, password string, db int) *RedisStorage {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStorage{
		client: rdb,
		local:  make(map[string]localEntry),
	}
}

func stateKey(sessionId string) string {
	return "selection:" + sessionId
}

func (s *RedisStorage) Get(ctx context.Context, sessionId string) (State, error) {
	s.mu.Lock()
	entry, found := s.local[sessionId]
	if found && entry.expires.After(time.Now()) {
		s.mu.Unlock()
		return entry.state, nil
	}
	delete(s.local, sessionId)
	s.mu.Unlock()

	data, err := s.client.Get(ctx, stateKey(sessionId)).Result()
	if err == redis.Nil {
		return DefaultState(), nil
	}
	if err != nil {
		// keep the listing working, a lost filter state is the lesser failure
		log.Printf("selection state read failed for %s: %v", sessionId, err)
		return DefaultState(), nil
	}
	state := State{}
	if err := sonic.Unmarshal([]byte(data), &state); err != nil {
		log.Printf("selection state decode failed for %s: %v", sessionId, err)
		return DefaultState(), nil
	}
	s.remember(sessionId, state)
	return state, nil
}

func (s *RedisStorage) Set(ctx context.Context, sessionId string, state State) error {
	data, err := sonic.Marshal(state)
	if err != nil {
		return err
	}
	s.remember(sessionId, state)
	return s.client.Set(ctx, stateKey(sessionId), data, stateTTL).Err()
}

func (s *RedisStorage) remember(sessionId string, state State) {
	s.mu.Lock()
	s.local[sessionId] = localEntry{expires: time.Now().Add(localTTL), state: state}
	s.mu.Unlock()
}

func (s *RedisStorage) Close() error {
	return s.client.Close()
}
