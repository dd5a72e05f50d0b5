package models

import "time"

// Review is one rating+comment attached to exactly one listing
type Review struct {
	ID        string    `json:"id"`
	ListingID string    `json:"listingId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"createdAt"`
}

// SubmitReviewRequest is the body for POST /api/{category}/{id}/reviews.
// The 1000-character comment cap matches the form-side limit; the backend
// remains the authority on moderation and dedup.
type SubmitReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required,max=1000"`
}
