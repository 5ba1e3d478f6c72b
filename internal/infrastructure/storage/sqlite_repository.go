package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"cryptodigest/internal/domain"
	"cryptodigest/internal/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS subscribers (
    chat_id     INTEGER PRIMARY KEY,
    username    TEXT,
    first_name  TEXT,
    last_name   TEXT,
    subscribed  INTEGER NOT NULL DEFAULT 1,
    created_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    last_active TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// SQLiteRepository persists subscribers in a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

var _ ports.SubscriberStore = (*SQLiteRepository)(nil)

// Open connects to the database at path and ensures the schema exists.
func Open(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close releases the underlying database handle.
func (r *SQLiteRepository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// AddSubscriber inserts or refreshes a chat record, subscribed by default.
func (r *SQLiteRepository) AddSubscriber(ctx context.Context, sub domain.Subscriber) error {
	query, args, err := sq.Insert("subscribers").
		Options("OR REPLACE").
		Columns("chat_id", "username", "first_name", "last_name", "subscribed").
		Values(sub.ChatID, sub.Username, sub.FirstName, sub.LastName, 1).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert subscriber %d: %w", sub.ChatID, err)
	}
	return nil
}

// SetSubscribed flips the subscription flag; the bool result reports whether
// the chat existed.
func (r *SQLiteRepository) SetSubscribed(ctx context.Context, chatID int64, subscribed bool) (bool, error) {
	value := 0
	if subscribed {
		value = 1
	}

	query, args, err := sq.Update("subscribers").
		Set("subscribed", value).
		Where(sq.Eq{"chat_id": chatID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update subscription %d: %w", chatID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// IsSubscribed reports whether a chat currently receives the daily digest.
// Unknown chats are simply not subscribed.
func (r *SQLiteRepository) IsSubscribed(ctx context.Context, chatID int64) (bool, error) {
	query, args, err := sq.Select("subscribed").
		From("subscribers").
		Where(sq.Eq{"chat_id": chatID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build select: %w", err)
	}

	var subscribed int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&subscribed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("query subscription %d: %w", chatID, err)
	}
	return subscribed != 0, nil
}

// SubscribedIDs lists every chat currently subscribed to the daily digest.
func (r *SQLiteRepository) SubscribedIDs(ctx context.Context) ([]int64, error) {
	query, args, err := sq.Select("chat_id").
		From("subscribers").
		Where(sq.Eq{"subscribed": 1}).
		OrderBy("chat_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query subscribers: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan chat id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return ids, nil
}

// TouchLastActive records command activity for a chat.
func (r *SQLiteRepository) TouchLastActive(ctx context.Context, chatID int64) error {
	query, args, err := sq.Update("subscribers").
		Set("last_active", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"chat_id": chatID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("touch last active %d: %w", chatID, err)
	}
	return nil
}
