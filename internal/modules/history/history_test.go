// README: Chat history tests (Redis-backed, skipped without an instance).
package history

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	addr := os.Getenv("SKYBOT_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("SKYBOT_TEST_REDIS_ADDR not set; skipping Redis-backed history tests")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Fatalf("ping redis: %v", err)
	}

	s := NewStore(rdb)
	s.now = func() time.Time { return time.Date(2026, 7, 20, 10, 0, 0, 0, time.UTC) }
	return s
}

func TestLoadEmptySession(t *testing.T) {
	s := setupTestStore(t)

	turns, err := s.Load(context.Background(), "sess-empty")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(turns) != 0 {
		t.Errorf("Load(new session) = %d turns, want 0", len(turns))
	}
}

func TestAppendAndLoad(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	sessionID := "sess-append"
	t.Cleanup(func() { s.rdb.Del(ctx, sessionPrefix+sessionID) })

	if err := s.Append(ctx, sessionID, "en", "hi", "Hello! How can I help you today?"); err != nil {
		t.Fatalf("Append: %v", err)
	}

	turns, err := s.Load(ctx, sessionID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("Load = %d turns, want 2", len(turns))
	}
	if turns[0].Role != "user" || turns[0].Content != "hi" {
		t.Errorf("first turn = %+v", turns[0])
	}
	if turns[1].Role != "bot" || turns[1].Content != "Hello! How can I help you today?" {
		t.Errorf("second turn = %+v", turns[1])
	}
}

func TestHistoryCapped(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	sessionID := "sess-capped"
	t.Cleanup(func() { s.rdb.Del(ctx, sessionPrefix+sessionID) })

	for i := 0; i < 15; i++ {
		msg := fmt.Sprintf("message %d", i)
		if err := s.Append(ctx, sessionID, "en", msg, "ok"); err != nil {
			t.Fatalf("Append #%d: %v", i, err)
		}
	}

	turns, err := s.Load(ctx, sessionID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(turns) != maxTurns {
		t.Fatalf("Load = %d turns, want capped at %d", len(turns), maxTurns)
	}
	// oldest surviving user turn is message 5
	if turns[0].Content != "message 5" {
		t.Errorf("oldest turn = %q, want message 5", turns[0].Content)
	}
}
