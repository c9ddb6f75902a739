package entity

import "time"

// Category groups products. Categories are global, not per-user; the name is
// unique with a case-sensitive exact match, and a category that still has
// products attached cannot be deleted.
type Category struct {
	ID          uint
	Name        string // Unique, 3-50 characters.
	Description string // 1-255 characters.
	IsActive    bool   // Defaults to true at creation.
	CreatedAt   time.Time
}
