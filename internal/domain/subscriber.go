package domain

import "time"

// Subscriber is a chat that receives the daily digest broadcast.
type Subscriber struct {
	ChatID     int64
	Username   string
	FirstName  string
	LastName   string
	Subscribed bool
	CreatedAt  time.Time
	LastActive time.Time
}
