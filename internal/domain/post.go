package domain

import "time"

// Post is a blog article.
type Post struct {
	ID        string
	Title     string
	Content   string
	Author    string
	Category  string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
