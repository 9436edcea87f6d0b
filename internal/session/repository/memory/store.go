package memory

import (
	"context"
	"hash/fnv"
	"sync"

	"conversational-support-assistant/internal/model"
	"conversational-support-assistant/internal/session/repository"
)

const shardCount = 16

// Store is the in-process checkpointer. State is sharded by session key so
// unrelated sessions never contend on one lock.
type Store struct {
	shards [shardCount]*shard
}

type shard struct {
	mu     sync.RWMutex
	states map[string]*model.ConversationState
}

var _ repository.Repository = (*Store)(nil)

// New creates an empty in-memory session store.
func New() *Store {
	s := &Store{}
	for i := range s.shards {
		s.shards[i] = &shard{states: make(map[string]*model.ConversationState)}
	}
	return s
}

func (s *Store) shardFor(sessionKey string) *shard {
	h := fnv.New32a()
	h.Write([]byte(sessionKey))
	return s.shards[h.Sum32()%shardCount]
}

// Load returns a copy of the stored state, or a fresh state for unknown keys.
func (s *Store) Load(ctx context.Context, sessionKey string) (*model.ConversationState, error) {
	if sessionKey == "" {
		return nil, repository.ErrEmptySessionKey
	}

	sh := s.shardFor(sessionKey)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	state, ok := sh.states[sessionKey]
	if !ok {
		return model.NewConversationState(), nil
	}
	return state.Clone(), nil
}

// Save replaces the entry for the key with a copy of state.
func (s *Store) Save(ctx context.Context, sessionKey string, state *model.ConversationState) error {
	if sessionKey == "" {
		return repository.ErrEmptySessionKey
	}
	if state == nil {
		return repository.ErrNilState
	}

	sh := s.shardFor(sessionKey)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sh.states[sessionKey] = state.Clone()
	return nil
}

// Clear removes the entry for the key. Clearing an unknown key is a no-op.
func (s *Store) Clear(ctx context.Context, sessionKey string) error {
	if sessionKey == "" {
		return repository.ErrEmptySessionKey
	}

	sh := s.shardFor(sessionKey)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	delete(sh.states, sessionKey)
	return nil
}
