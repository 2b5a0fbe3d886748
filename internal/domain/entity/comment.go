package entity

import "time"

// Comment mirrors the comments table. Many-to-one with User.
type Comment struct {
	ID        int64
	UserID    int64
	Content   string
	CreatedAt time.Time
}
