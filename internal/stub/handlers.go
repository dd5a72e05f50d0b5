package stub

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/holidaysri/holidaysri-client/internal/catalog"
	"github.com/holidaysri/holidaysri-client/internal/location"
	"github.com/holidaysri/holidaysri-client/internal/models"
)

// handlers serves the backend contract the client consumes:
// {success, message, data} envelopes over the /api/{category}/... routes.
type handlers struct {
	store  *memoryStore
	tokens *TokenManager
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// checkCategory rejects slugs the catalog does not know
func (h *handlers) checkCategory(c *gin.Context) (string, bool) {
	category := c.Param("category")
	if _, err := catalog.Get(category); err != nil {
		fail(c, http.StatusNotFound, "Unknown category")
		return "", false
	}
	return category, true
}

// DevLogin issues a signed dev token: POST /api/auth/dev-login
func (h *handlers) DevLogin(c *gin.Context) {
	var req struct {
		UserName string `json:"userName" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "userName and a valid email are required")
		return
	}

	token, err := h.tokens.GenerateToken(req.UserName, req.Email)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	ok(c, gin.H{"token": token})
}

// GetProvinces serves the static reference table: GET /api/:category/provinces
func (h *handlers) GetProvinces(c *gin.Context) {
	if _, valid := h.checkCategory(c); !valid {
		return
	}
	ok(c, location.Table())
}

// Publish creates a listing: POST /api/:category/publish
func (h *handlers) Publish(c *gin.Context) {
	category, valid := h.checkCategory(c)
	if !valid {
		return
	}

	var req models.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}
	if !location.ValidPair(req.Province, req.City) {
		fail(c, http.StatusBadRequest, "City does not belong to the selected province")
		return
	}

	listing, err := h.store.createListing(category, c.GetString("userEmail"), &req)
	if err != nil {
		if errors.Is(err, errSlotConsumed) {
			fail(c, http.StatusConflict, "This advertisement slot has already been published")
			return
		}
		fail(c, http.StatusInternalServerError, "Failed to publish listing")
		return
	}
	ok(c, listing)
}

// GetListing returns one record: GET /api/:category/:id
func (h *handlers) GetListing(c *gin.Context) {
	category, valid := h.checkCategory(c)
	if !valid {
		return
	}

	listing, err := h.store.getListing(category, c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Listing not found")
		return
	}
	ok(c, listing)
}

// UpdateListing mutates one record: PUT /api/:category/:id
func (h *handlers) UpdateListing(c *gin.Context) {
	category, valid := h.checkCategory(c)
	if !valid {
		return
	}

	var req models.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}
	if !location.ValidPair(req.Province, req.City) {
		fail(c, http.StatusBadRequest, "City does not belong to the selected province")
		return
	}

	listing, err := h.store.updateListing(category, c.Param("id"), c.GetString("userEmail"), &req)
	switch {
	case err == nil:
		ok(c, listing)
	case errors.Is(err, errNotListingOwner):
		fail(c, http.StatusForbidden, "You can only edit your own listings")
	default:
		fail(c, http.StatusNotFound, "Listing not found")
	}
}

// ListMine returns the caller's listings: GET /api/:category/mine
func (h *handlers) ListMine(c *gin.Context) {
	category, valid := h.checkCategory(c)
	if !valid {
		return
	}
	ok(c, h.store.listByOwner(category, c.GetString("userEmail")))
}

// GetReviews returns a listing's reviews: GET /api/:category/:id/reviews
func (h *handlers) GetReviews(c *gin.Context) {
	category, valid := h.checkCategory(c)
	if !valid {
		return
	}

	reviews, err := h.store.listReviews(category, c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Listing not found")
		return
	}
	ok(c, reviews)
}

// SubmitReview appends a review: POST /api/:category/:id/reviews
func (h *handlers) SubmitReview(c *gin.Context) {
	category, valid := h.checkCategory(c)
	if !valid {
		return
	}

	var req models.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Rating must be 1-5 and a comment is required")
		return
	}

	review, err := h.store.addReview(category, c.Param("id"),
		c.GetString("userName"), c.GetString("userEmail"), &req)
	if err != nil {
		fail(c, http.StatusNotFound, "Listing not found")
		return
	}
	ok(c, review)
}

// DeleteReview removes the caller's own review:
// DELETE /api/:category/:id/reviews/:reviewId
func (h *handlers) DeleteReview(c *gin.Context) {
	category, valid := h.checkCategory(c)
	if !valid {
		return
	}

	err := h.store.deleteReview(category, c.Param("id"), c.Param("reviewId"), c.GetString("userEmail"))
	switch {
	case err == nil:
		ok(c, gin.H{"deleted": true})
	case errors.Is(err, errNotReviewOwner):
		fail(c, http.StatusForbidden, "You can only delete your own reviews")
	default:
		fail(c, http.StatusNotFound, "Review not found")
	}
}
