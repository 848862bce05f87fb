package model

import (
	"net/mail"
	"time"
)

// Wishlist captures the SKUs a user has saved for later.
type Wishlist struct {
	ID     string   `json:"-" bson:"_id,omitempty"`
	UserID string   `json:"user_id" bson:"user_id"`
	SKUs   []string `json:"skus" bson:"skus"`
}

// Validate checks the wishlist against its field constraints.
func (w *Wishlist) Validate() error {
	if w.UserID == "" {
		return NewValidationError("user_id is required")
	}
	return nil
}

// BlogPost is a marketing article.
type BlogPost struct {
	ID         string     `json:"-" bson:"_id,omitempty"`
	Title      string     `json:"title" bson:"title"`
	Slug       string     `json:"slug" bson:"slug"`
	Content    string     `json:"content" bson:"content"`
	CoverImage string     `json:"cover_image,omitempty" bson:"cover_image,omitempty"`
	Tags       []string   `json:"tags" bson:"tags"`
	Published  *bool      `json:"published" bson:"published"`
	CreatedAt  *time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// Normalize fills in the documented defaults for fields the caller omitted.
func (b *BlogPost) Normalize() {
	if b.Published == nil {
		published := true
		b.Published = &published
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
}

// Validate checks the blog post against its field constraints.
func (b *BlogPost) Validate() error {
	if b.Title == "" {
		return NewValidationError("title is required")
	}
	if b.Slug == "" {
		return NewValidationError("slug is required")
	}
	if b.Content == "" {
		return NewValidationError("content is required")
	}
	return nil
}

// Event is a community or marketing event.
type Event struct {
	ID          string    `json:"-" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Date        time.Time `json:"date" bson:"date"`
	Location    string    `json:"location" bson:"location"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Link        string    `json:"link,omitempty" bson:"link,omitempty"`
}

// Validate checks the event against its field constraints.
func (e *Event) Validate() error {
	if e.Title == "" {
		return NewValidationError("title is required")
	}
	if e.Date.IsZero() {
		return NewValidationError("date is required")
	}
	if e.Location == "" {
		return NewValidationError("location is required")
	}
	return nil
}

// Newsletter is a newsletter signup.
type Newsletter struct {
	ID     string `json:"-" bson:"_id,omitempty"`
	Email  string `json:"email" bson:"email"`
	Source string `json:"source,omitempty" bson:"source,omitempty"`
}

// Validate checks the signup against its field constraints.
func (n *Newsletter) Validate() error {
	if n.Email == "" {
		return NewValidationError("email is required")
	}
	if _, err := mail.ParseAddress(n.Email); err != nil {
		return NewValidationError("invalid email address")
	}
	return nil
}

// RecommendationFeedback records whether a user liked a recommended product.
type RecommendationFeedback struct {
	ID     string `json:"-" bson:"_id,omitempty"`
	UserID string `json:"user_id,omitempty" bson:"user_id,omitempty"`
	SKU    string `json:"sku" bson:"sku"`
	Liked  bool   `json:"liked" bson:"liked"`
}

// Validate checks the feedback against its field constraints.
func (f *RecommendationFeedback) Validate() error {
	if f.SKU == "" {
		return NewValidationError("sku is required")
	}
	return nil
}
