// README: Chat history keeps recent turns per session in Redis.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionTTL    = 24 * time.Hour
	maxTurns      = 20
	sessionPrefix = "chat:session:"
)

type Turn struct {
	Role     string    `json:"role"`
	Content  string    `json:"content"`
	Language string    `json:"language,omitempty"`
	At       time.Time `json:"at"`
}

type Store struct {
	rdb *redis.Client
	now func() time.Time
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, now: time.Now}
}

func (s *Store) Load(ctx context.Context, sessionID string) ([]Turn, error) {
	data, err := s.rdb.Get(ctx, sessionPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return []Turn{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var turns []Turn
	if err := json.Unmarshal(data, &turns); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return turns, nil
}

func (s *Store) Save(ctx context.Context, sessionID string, turns []Turn) error {
	if len(turns) > maxTurns {
		turns = turns[len(turns)-maxTurns:]
	}

	data, err := json.Marshal(turns)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.rdb.Set(ctx, sessionPrefix+sessionID, data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Append records one user turn and the bot's reply.
func (s *Store) Append(ctx context.Context, sessionID, language, userMsg, botMsg string) error {
	turns, err := s.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	now := s.now()
	turns = append(turns,
		Turn{Role: "user", Content: userMsg, Language: language, At: now},
		Turn{Role: "bot", Content: botMsg, Language: language, At: now},
	)
	return s.Save(ctx, sessionID, turns)
}
