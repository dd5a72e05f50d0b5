package stub

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/holidaysri/holidaysri-client/internal/models"
)

var (
	errListingNotFound = errors.New("listing not found")
	errSlotConsumed    = errors.New("advertisement slot already published")
	errNotListingOwner = errors.New("not the listing owner")
	errReviewNotFound  = errors.New("review not found")
	errNotReviewOwner  = errors.New("not the review author")
)

// memoryStore holds the stub's state for one process lifetime. Aggregates
// are recomputed here on every review mutation, the way the real backend
// does it, so clients never have a reason to compute them locally.
type memoryStore struct {
	mu        sync.RWMutex
	listings  map[string]*models.Listing  // id → listing
	owners    map[string]string           // listing id → owner email
	reviews   map[string][]models.Review  // listing id → reviews
	authors   map[string]string           // review id → author email
	usedSlots map[string]bool             // consumed advertisementIds
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		listings:  make(map[string]*models.Listing),
		owners:    make(map[string]string),
		reviews:   make(map[string][]models.Review),
		authors:   make(map[string]string),
		usedSlots: make(map[string]bool),
	}
}

func (s *memoryStore) createListing(category, ownerEmail string, req *models.PublishRequest) (*models.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.usedSlots[req.AdvertisementID] {
		return nil, errSlotConsumed
	}
	s.usedSlots[req.AdvertisementID] = true

	now := time.Now().UTC()
	listing := &models.Listing{
		ID:              uuid.NewString(),
		AdvertisementID: req.AdvertisementID,
		Category:        category,
		Name:            req.Name,
		Description:     req.Description,
		Province:        req.Province,
		City:            req.City,
		Contact:         req.Contact,
		Available:       req.Available,
		Facebook:        req.Facebook,
		Website:         req.Website,
		Fields:          req.Fields,
		Arrays:          req.Arrays,
		Images:          req.Images,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.listings[listing.ID] = listing
	s.owners[listing.ID] = ownerEmail
	return copyListing(listing), nil
}

func (s *memoryStore) getListing(category, id string) (*models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listing, ok := s.listings[id]
	if !ok || listing.Category != category {
		return nil, errListingNotFound
	}
	return copyListing(listing), nil
}

func (s *memoryStore) updateListing(category, id, ownerEmail string, req *models.UpdateRequest) (*models.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing, ok := s.listings[id]
	if !ok || listing.Category != category {
		return nil, errListingNotFound
	}
	if s.owners[id] != ownerEmail {
		return nil, errNotListingOwner
	}

	listing.Name = req.Name
	listing.Description = req.Description
	listing.Province = req.Province
	listing.City = req.City
	listing.Contact = req.Contact
	listing.Available = req.Available
	listing.Facebook = req.Facebook
	listing.Website = req.Website
	listing.Fields = req.Fields
	listing.Arrays = req.Arrays
	listing.Images = req.Images
	listing.UpdatedAt = time.Now().UTC()
	return copyListing(listing), nil
}

func (s *memoryStore) listByOwner(category, ownerEmail string) []models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Listing{}
	for id, listing := range s.listings {
		if listing.Category == category && s.owners[id] == ownerEmail {
			out = append(out, *copyListing(listing))
		}
	}
	return out
}

func (s *memoryStore) listReviews(category, id string) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listing, ok := s.listings[id]
	if !ok || listing.Category != category {
		return nil, errListingNotFound
	}
	return append([]models.Review{}, s.reviews[id]...), nil
}

func (s *memoryStore) addReview(category, id, userName, email string, req *models.SubmitReviewRequest) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing, ok := s.listings[id]
	if !ok || listing.Category != category {
		return nil, errListingNotFound
	}

	review := models.Review{
		ID:        uuid.NewString(),
		ListingID: id,
		Rating:    req.Rating,
		Comment:   req.Comment,
		UserName:  userName,
		CreatedAt: time.Now().UTC(),
	}
	s.reviews[id] = append(s.reviews[id], review)
	s.authors[review.ID] = email
	s.recomputeAggregates(listing)
	return &review, nil
}

func (s *memoryStore) deleteReview(category, id, reviewID, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing, ok := s.listings[id]
	if !ok || listing.Category != category {
		return errListingNotFound
	}

	for i, r := range s.reviews[id] {
		if r.ID != reviewID {
			continue
		}
		if s.authors[reviewID] != email {
			return errNotReviewOwner
		}
		s.reviews[id] = append(s.reviews[id][:i], s.reviews[id][i+1:]...)
		delete(s.authors, reviewID)
		s.recomputeAggregates(listing)
		return nil
	}
	return errReviewNotFound
}

// recomputeAggregates refreshes averageRating/totalReviews; callers hold
// the write lock.
func (s *memoryStore) recomputeAggregates(listing *models.Listing) {
	reviews := s.reviews[listing.ID]
	listing.TotalReviews = len(reviews)
	if len(reviews) == 0 {
		listing.AverageRating = 0
		return
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	listing.AverageRating = float64(sum) / float64(len(reviews))
}

func copyListing(l *models.Listing) *models.Listing {
	out := *l
	out.Images = append([]models.UploadedImage(nil), l.Images...)
	return &out
}
