package storage

import (
	"context"
	"path/filepath"
	"testing"

	"cryptodigest/internal/domain"
)

func openTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := Open(filepath.Join(t.TempDir(), "subscribers.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestAddSubscriberAndList(t *testing.T) {
	t.Parallel()

	repo := openTestRepository(t)
	ctx := context.Background()

	subs := []domain.Subscriber{
		{ChatID: 42, Username: "alice", FirstName: "Alice"},
		{ChatID: 7, Username: "bob", FirstName: "Bob", LastName: "Jones"},
	}
	for _, sub := range subs {
		if err := repo.AddSubscriber(ctx, sub); err != nil {
			t.Fatalf("AddSubscriber(%d): %v", sub.ChatID, err)
		}
	}

	ids, err := repo.SubscribedIDs(ctx)
	if err != nil {
		t.Fatalf("SubscribedIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != 7 || ids[1] != 42 {
		t.Fatalf("expected [7 42], got %v", ids)
	}
}

func TestAddSubscriberResubscribes(t *testing.T) {
	t.Parallel()

	repo := openTestRepository(t)
	ctx := context.Background()

	sub := domain.Subscriber{ChatID: 42, Username: "alice"}
	if err := repo.AddSubscriber(ctx, sub); err != nil {
		t.Fatalf("AddSubscriber: %v", err)
	}
	if _, err := repo.SetSubscribed(ctx, 42, false); err != nil {
		t.Fatalf("SetSubscribed: %v", err)
	}

	// A returning user re-running /start comes back subscribed.
	if err := repo.AddSubscriber(ctx, sub); err != nil {
		t.Fatalf("AddSubscriber again: %v", err)
	}

	ids, err := repo.SubscribedIDs(ctx)
	if err != nil {
		t.Fatalf("SubscribedIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != 42 {
		t.Fatalf("expected [42], got %v", ids)
	}
}

func TestSetSubscribedReportsExistence(t *testing.T) {
	t.Parallel()

	repo := openTestRepository(t)
	ctx := context.Background()

	known, err := repo.SetSubscribed(ctx, 99, false)
	if err != nil {
		t.Fatalf("SetSubscribed: %v", err)
	}
	if known {
		t.Fatal("expected false for unknown chat")
	}

	if err := repo.AddSubscriber(ctx, domain.Subscriber{ChatID: 99}); err != nil {
		t.Fatalf("AddSubscriber: %v", err)
	}

	known, err = repo.SetSubscribed(ctx, 99, false)
	if err != nil {
		t.Fatalf("SetSubscribed: %v", err)
	}
	if !known {
		t.Fatal("expected true for known chat")
	}

	ids, err := repo.SubscribedIDs(ctx)
	if err != nil {
		t.Fatalf("SubscribedIDs: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected no subscribed chats, got %v", ids)
	}
}

func TestIsSubscribed(t *testing.T) {
	t.Parallel()

	repo := openTestRepository(t)
	ctx := context.Background()

	subscribed, err := repo.IsSubscribed(ctx, 5)
	if err != nil {
		t.Fatalf("IsSubscribed: %v", err)
	}
	if subscribed {
		t.Fatal("unknown chat reported as subscribed")
	}

	if err := repo.AddSubscriber(ctx, domain.Subscriber{ChatID: 5}); err != nil {
		t.Fatalf("AddSubscriber: %v", err)
	}
	if subscribed, err = repo.IsSubscribed(ctx, 5); err != nil || !subscribed {
		t.Fatalf("expected subscribed after add, got %v %v", subscribed, err)
	}

	if _, err := repo.SetSubscribed(ctx, 5, false); err != nil {
		t.Fatalf("SetSubscribed: %v", err)
	}
	if subscribed, err = repo.IsSubscribed(ctx, 5); err != nil || subscribed {
		t.Fatalf("expected unsubscribed after opt-out, got %v %v", subscribed, err)
	}
}

func TestTouchLastActiveUnknownChat(t *testing.T) {
	t.Parallel()

	repo := openTestRepository(t)

	// Touching a chat that never subscribed must not error.
	if err := repo.TouchLastActive(context.Background(), 12345); err != nil {
		t.Fatalf("TouchLastActive: %v", err)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "subscribers.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := first.AddSubscriber(context.Background(), domain.Subscriber{ChatID: 1}); err != nil {
		t.Fatalf("AddSubscriber: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	ids, err := second.SubscribedIDs(context.Background())
	if err != nil {
		t.Fatalf("SubscribedIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != 1 {
		t.Fatalf("expected [1] after reopen, got %v", ids)
	}
}
