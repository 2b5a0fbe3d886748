package entity

import "time"

// Order mirrors the orders table. Many-to-one with User.
type Order struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int
	Total     float64
	OrderedAt time.Time
}
