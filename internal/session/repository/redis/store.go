package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"conversational-support-assistant/internal/model"
	"conversational-support-assistant/internal/session/repository"
)

const defaultPrefix = "assistant:session:"

// Store is the Redis-backed checkpointer. One JSON blob per session key;
// Redis provides the per-key consistency the contract asks for.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

var _ repository.Repository = (*Store)(nil)

type Option func(*Store)

// WithTTL sets the expiration for session entries. Zero means no expiry.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for session entries.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis store with its own client.
func New(addr, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: defaultPrefix,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(sessionKey string) string {
	return s.prefix + sessionKey
}

// Load fetches and decodes the state, or returns a fresh state when the key
// does not exist.
func (s *Store) Load(ctx context.Context, sessionKey string) (*model.ConversationState, error) {
	if sessionKey == "" {
		return nil, repository.ErrEmptySessionKey
	}

	raw, err := s.client.Get(ctx, s.key(sessionKey)).Result()
	if err != nil {
		if err == backend.Nil {
			return model.NewConversationState(), nil
		}
		return nil, fmt.Errorf("failed to load session state: %w", err)
	}

	var state model.ConversationState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("failed to decode session state: %w", err)
	}
	if state.Messages == nil {
		state.Messages = []model.Message{}
	}

	return &state, nil
}

// Save encodes and stores the state, replacing any prior entry.
func (s *Store) Save(ctx context.Context, sessionKey string, state *model.ConversationState) error {
	if sessionKey == "" {
		return repository.ErrEmptySessionKey
	}
	if state == nil {
		return repository.ErrNilState
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session state: %w", err)
	}

	if err := s.client.Set(ctx, s.key(sessionKey), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session state: %w", err)
	}
	return nil
}

// Clear removes the entry for the key. Clearing an unknown key is a no-op.
func (s *Store) Clear(ctx context.Context, sessionKey string) error {
	if sessionKey == "" {
		return repository.ErrEmptySessionKey
	}

	if err := s.client.Del(ctx, s.key(sessionKey)).Err(); err != nil {
		return fmt.Errorf("failed to clear session state: %w", err)
	}
	return nil
}
