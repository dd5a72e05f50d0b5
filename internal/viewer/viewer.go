// Package viewer implements the detail/review page flow: load one listing
// with its reviews, accept new reviews from an authenticated session, and
// redisplay server-computed rating aggregates.
package viewer

import (
	"context"

	"github.com/holidaysri/holidaysri-client/internal/models"
	apperrors "github.com/holidaysri/holidaysri-client/pkg/errors"
)

// Backend is the slice of the API client the viewer needs
type Backend interface {
	GetListing(ctx context.Context, category, id string) (*models.Listing, error)
	GetReviews(ctx context.Context, category, id string) ([]models.Review, error)
	SubmitReview(ctx context.Context, category, id string, req *models.SubmitReviewRequest) (*models.Review, error)
	DeleteReview(ctx context.Context, category, id, reviewID string) error
}

// Session exposes the authentication checks the viewer gates on
type Session interface {
	Authenticated() bool
}

// Viewer owns the in-memory detail state for one listing page
type Viewer struct {
	backend  Backend
	session  Session
	category string
	id       string

	listing    *models.Listing
	reviews    []models.Review
	submitting bool
	lastError  string
}

// New creates a viewer for one listing
func New(backend Backend, session Session, category, id string) *Viewer {
	return &Viewer{backend: backend, session: session, category: category, id: id}
}

// Listing returns the loaded record, nil before LoadDetail succeeds
func (v *Viewer) Listing() *models.Listing { return v.listing }

// Reviews returns the in-memory review list
func (v *Viewer) Reviews() []models.Review {
	return append([]models.Review(nil), v.reviews...)
}

// LastError returns the inline message shown to the user, empty when none
func (v *Viewer) LastError() string { return v.lastError }

// LoadDetail fetches the listing and its reviews. Failure of either call is
// terminal for the view: the caller renders an error panel with a way back,
// there is no retry loop.
func (v *Viewer) LoadDetail(ctx context.Context) error {
	listing, err := v.backend.GetListing(ctx, v.category, v.id)
	if err != nil {
		v.lastError = err.Error()
		return err
	}

	reviews, err := v.backend.GetReviews(ctx, v.category, v.id)
	if err != nil {
		v.lastError = err.Error()
		return err
	}

	v.listing = listing
	v.reviews = reviews
	v.lastError = ""
	return nil
}

// SubmitReview posts a rating+comment. Unauthenticated callers are blocked
// client-side with an inline message and no request is issued. On success
// the review is appended in memory and the parent record re-fetched so the
// displayed averageRating/totalReviews are always the server's numbers.
func (v *Viewer) SubmitReview(ctx context.Context, rating int, comment string) error {
	if !v.session.Authenticated() {
		v.lastError = "Please login to submit a review"
		return apperrors.ErrUnauthorized
	}
	if v.submitting {
		return apperrors.ValidationError("review", "a review submission is already in progress")
	}
	if rating < 1 || rating > 5 {
		v.lastError = "Rating must be between 1 and 5"
		return apperrors.ValidationError("rating", v.lastError)
	}
	if comment == "" {
		v.lastError = "Comment is required"
		return apperrors.ValidationError("comment", v.lastError)
	}
	if len(comment) > 1000 {
		v.lastError = "Comment must not exceed 1000 characters"
		return apperrors.ValidationError("comment", v.lastError)
	}

	v.submitting = true
	defer func() { v.submitting = false }()

	review, err := v.backend.SubmitReview(ctx, v.category, v.id,
		&models.SubmitReviewRequest{Rating: rating, Comment: comment})
	if err != nil {
		if msg := apperrors.SubmitMessage(err); msg != "" {
			v.lastError = msg
		} else {
			v.lastError = err.Error()
		}
		return err
	}

	v.reviews = append(v.reviews, *review)

	// Aggregates are recomputed server-side; re-fetch instead of computing
	// them locally. A failed re-fetch keeps the stale aggregate rather
	// than failing the submission that already succeeded.
	if listing, err := v.backend.GetListing(ctx, v.category, v.id); err == nil {
		v.listing = listing
	}

	v.lastError = ""
	return nil
}

// DeleteReview removes the caller's own review after the confirm callback
// approves it. Declining the confirmation is not an error.
func (v *Viewer) DeleteReview(ctx context.Context, reviewID string, confirm func() bool) error {
	if !v.session.Authenticated() {
		v.lastError = "Please login to manage your reviews"
		return apperrors.ErrUnauthorized
	}
	if confirm != nil && !confirm() {
		return nil
	}

	if err := v.backend.DeleteReview(ctx, v.category, v.id, reviewID); err != nil {
		v.lastError = err.Error()
		return err
	}

	for i, r := range v.reviews {
		if r.ID == reviewID {
			v.reviews = append(v.reviews[:i], v.reviews[i+1:]...)
			break
		}
	}

	if listing, err := v.backend.GetListing(ctx, v.category, v.id); err == nil {
		v.listing = listing
	}

	v.lastError = ""
	return nil
}
