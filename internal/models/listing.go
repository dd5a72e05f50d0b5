package models

import "time"

// UploadedImage is the opaque handle pair returned by the asset host.
// The client never interprets image bytes; it only carries these values
// into listing payloads and previews.
type UploadedImage struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Listing is one category-specific advertisement record. Category-specific
// scalar fields live in Fields and array-valued fields (tags, services,
// payment methods, amenities) live in Arrays, keyed by schema field name.
type Listing struct {
	ID              string              `json:"id,omitempty"`
	AdvertisementID string              `json:"advertisementId,omitempty"`
	Category        string              `json:"category"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	Province        string              `json:"province"`
	City            string              `json:"city"`
	Contact         string              `json:"contact"`
	Available       bool                `json:"available"`
	Facebook        string              `json:"facebook,omitempty"`
	Website         string              `json:"website,omitempty"`
	Fields          map[string]any      `json:"fields,omitempty"`
	Arrays          map[string][]string `json:"arrays,omitempty"`
	Images          []UploadedImage     `json:"images"`
	AverageRating   float64             `json:"averageRating"`
	TotalReviews    int                 `json:"totalReviews"`
	CreatedAt       time.Time           `json:"createdAt,omitempty"`
	UpdatedAt       time.Time           `json:"updatedAt,omitempty"`
}

// PublishRequest is the body for POST /api/{category}/publish. The
// advertisement slot id is supplied by the caller's navigation context and
// is required; everything else mirrors Listing.
type PublishRequest struct {
	AdvertisementID string              `json:"advertisementId" binding:"required"`
	Name            string              `json:"name" binding:"required,max=200"`
	Description     string              `json:"description" binding:"required,max=5000"`
	Province        string              `json:"province" binding:"required"`
	City            string              `json:"city" binding:"required"`
	Contact         string              `json:"contact" binding:"required,max=20"`
	Available       bool                `json:"available"`
	Facebook        string              `json:"facebook,omitempty" binding:"omitempty,url"`
	Website         string              `json:"website,omitempty" binding:"omitempty,url"`
	Fields          map[string]any      `json:"fields,omitempty"`
	Arrays          map[string][]string `json:"arrays,omitempty"`
	Images          []UploadedImage     `json:"images"`
}

// UpdateRequest is the body for PUT /api/{category}/{id}. Same shape as
// PublishRequest minus the advertisement slot, which is fixed at publish.
type UpdateRequest struct {
	Name        string              `json:"name" binding:"required,max=200"`
	Description string              `json:"description" binding:"required,max=5000"`
	Province    string              `json:"province" binding:"required"`
	City        string              `json:"city" binding:"required"`
	Contact     string              `json:"contact" binding:"required,max=20"`
	Available   bool                `json:"available"`
	Facebook    string              `json:"facebook,omitempty" binding:"omitempty,url"`
	Website     string              `json:"website,omitempty" binding:"omitempty,url"`
	Fields      map[string]any      `json:"fields,omitempty"`
	Arrays      map[string][]string `json:"arrays,omitempty"`
	Images      []UploadedImage     `json:"images"`
}
