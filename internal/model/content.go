package model

import "time"

// News categories managed from the back office.
const (
	NewsCategoryBusiness      = "Business"
	NewsCategoryNational      = "National"
	NewsCategoryInternational = "International"
)

// NewsItem is a curated external link shown on the public site.
type NewsItem struct {
	ID        int64     `json:"id"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// PostType distinguishes the three kinds of dated posts.
type PostType string

const (
	PostTypeNews     PostType = "NEWS"
	PostTypeReminder PostType = "DUE_DATE_REMAINDER"
	PostTypeBlog     PostType = "BLOGS"
)

// Post is a dated content entry (news blurb, due-date reminder, or blog post).
type Post struct {
	ID        int64     `json:"id"`
	Type      PostType  `json:"type"`
	Content   string    `json:"content"`
	LinkURL   string    `json:"link_url,omitempty"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// Admin is a back-office account. PasswordHash is a bcrypt hash and is never
// serialized.
type Admin struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
