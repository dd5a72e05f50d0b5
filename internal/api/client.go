// Package api is the typed client for the Holidaysri backend REST API.
// Every call decodes the uniform {success, message, data} envelope and maps
// failures onto the pkg/errors sentinels; nothing is retried automatically.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/holidaysri/holidaysri-client/internal/location"
	"github.com/holidaysri/holidaysri-client/internal/models"
	"github.com/holidaysri/holidaysri-client/internal/session"
	apperrors "github.com/holidaysri/holidaysri-client/pkg/errors"
	"github.com/holidaysri/holidaysri-client/pkg/logger"
)

const provincesCacheTTL = 10 * time.Minute

// Client talks to the backend on behalf of one (possibly absent) session
type Client struct {
	http           *resty.Client
	sessions       *session.Store
	provincesCache *gocache.Cache
}

// New creates a backend client. The session store may hold no token; only
// authenticated calls require one.
func New(baseURL string, sessions *session.Store) *Client {
	return &Client{
		http:           resty.New().SetBaseURL(baseURL).SetTimeout(30 * time.Second),
		sessions:       sessions,
		provincesCache: gocache.New(provincesCacheTTL, 2*provincesCacheTTL),
	}
}

// bearerToken returns the stored session token or ErrUnauthorized, checked
// client-side so unauthenticated mutations never reach the network.
func (c *Client) bearerToken() (string, error) {
	token, err := c.sessions.Token()
	if err != nil {
		return "", apperrors.ErrUnauthorized
	}
	return token, nil
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx).SetHeader("Accept", "application/json")
}

// decodeEnvelope maps an HTTP exchange onto the envelope contract: transport
// errors and non-success envelopes become sentinel errors carrying the
// server's message verbatim when one was returned.
func decodeEnvelope(resp *resty.Response, err error, operation string) (*models.APIResponse, error) {
	if err != nil {
		return nil, apperrors.FetchError(operation, err)
	}

	var envelope models.APIResponse
	if jsonErr := json.Unmarshal(resp.Body(), &envelope); jsonErr != nil {
		return nil, apperrors.FetchError(operation, fmt.Errorf("malformed response: %w", jsonErr))
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, apperrors.NotFoundError(operation)
	}
	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		return nil, apperrors.ErrUnauthorized
	}
	if resp.IsError() || !envelope.Success {
		return nil, apperrors.SubmitError(envelope.Message)
	}
	return &envelope, nil
}

// DevLogin obtains a dev token from the stub backend: POST /api/auth/dev-login.
// The production backend issues tokens through its own login flow; there the
// caller stores a token directly.
func (c *Client) DevLogin(ctx context.Context, userName, email string) (string, error) {
	resp, err := c.request(ctx).
		SetBody(map[string]string{"userName": userName, "email": email}).
		Post("/api/auth/dev-login")
	envelope, err := decodeEnvelope(resp, err, "login")
	if err != nil {
		return "", err
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		return "", apperrors.FetchError("login", err)
	}
	return payload.Token, nil
}

// GetListing fetches one listing record: GET /api/{category}/{id}
func (c *Client) GetListing(ctx context.Context, category, id string) (*models.Listing, error) {
	start := time.Now()
	resp, err := c.request(ctx).Get(fmt.Sprintf("/api/%s/%s", category, id))
	envelope, err := decodeEnvelope(resp, err, "listing")
	if err != nil {
		logger.LogAPICall("backend", "getListing", "error", time.Since(start).Seconds(),
			zap.String("category", category), zap.String("id", id), zap.Error(err))
		return nil, err
	}

	var listing models.Listing
	if err := json.Unmarshal(envelope.Data, &listing); err != nil {
		return nil, apperrors.FetchError("listing", err)
	}
	logger.LogAPICall("backend", "getListing", "success", time.Since(start).Seconds(),
		zap.String("category", category), zap.String("id", id))
	return &listing, nil
}

// ListMyListings fetches the caller's own records: GET /api/{category}/mine
func (c *Client) ListMyListings(ctx context.Context, category string) ([]models.Listing, error) {
	token, err := c.bearerToken()
	if err != nil {
		return nil, err
	}

	resp, err := c.request(ctx).SetAuthToken(token).Get(fmt.Sprintf("/api/%s/mine", category))
	envelope, err := decodeEnvelope(resp, err, "my listings")
	if err != nil {
		return nil, err
	}

	var listings []models.Listing
	if err := json.Unmarshal(envelope.Data, &listings); err != nil {
		return nil, apperrors.FetchError("my listings", err)
	}
	return listings, nil
}

// Publish creates a listing against a pre-existing advertisement slot:
// POST /api/{category}/publish
func (c *Client) Publish(ctx context.Context, category string, req *models.PublishRequest) (*models.Listing, error) {
	token, err := c.bearerToken()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.request(ctx).SetAuthToken(token).SetBody(req).
		Post(fmt.Sprintf("/api/%s/publish", category))
	envelope, err := decodeEnvelope(resp, err, "publish")
	if err != nil {
		logger.LogAPICall("backend", "publish", "error", time.Since(start).Seconds(),
			zap.String("category", category), zap.Error(err))
		return nil, err
	}

	var listing models.Listing
	if err := json.Unmarshal(envelope.Data, &listing); err != nil {
		return nil, apperrors.FetchError("publish", err)
	}
	logger.LogAPICall("backend", "publish", "success", time.Since(start).Seconds(),
		zap.String("category", category), zap.String("id", listing.ID))
	return &listing, nil
}

// Update mutates an existing listing: PUT /api/{category}/{id}
func (c *Client) Update(ctx context.Context, category, id string, req *models.UpdateRequest) (*models.Listing, error) {
	token, err := c.bearerToken()
	if err != nil {
		return nil, err
	}

	resp, err := c.request(ctx).SetAuthToken(token).SetBody(req).
		Put(fmt.Sprintf("/api/%s/%s", category, id))
	envelope, err := decodeEnvelope(resp, err, "update")
	if err != nil {
		return nil, err
	}

	var listing models.Listing
	if err := json.Unmarshal(envelope.Data, &listing); err != nil {
		return nil, apperrors.FetchError("update", err)
	}
	return &listing, nil
}

// GetReviews fetches a listing's reviews: GET /api/{category}/{id}/reviews
func (c *Client) GetReviews(ctx context.Context, category, id string) ([]models.Review, error) {
	resp, err := c.request(ctx).Get(fmt.Sprintf("/api/%s/%s/reviews", category, id))
	envelope, err := decodeEnvelope(resp, err, "reviews")
	if err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err := json.Unmarshal(envelope.Data, &reviews); err != nil {
		return nil, apperrors.FetchError("reviews", err)
	}
	return reviews, nil
}

// SubmitReview appends a review: POST /api/{category}/{id}/reviews
func (c *Client) SubmitReview(ctx context.Context, category, id string, req *models.SubmitReviewRequest) (*models.Review, error) {
	token, err := c.bearerToken()
	if err != nil {
		return nil, err
	}

	resp, err := c.request(ctx).SetAuthToken(token).SetBody(req).
		Post(fmt.Sprintf("/api/%s/%s/reviews", category, id))
	envelope, err := decodeEnvelope(resp, err, "review")
	if err != nil {
		return nil, err
	}

	var review models.Review
	if err := json.Unmarshal(envelope.Data, &review); err != nil {
		return nil, apperrors.FetchError("review", err)
	}
	return &review, nil
}

// DeleteReview removes the caller's own review: DELETE /api/{category}/{id}/reviews/{reviewId}
func (c *Client) DeleteReview(ctx context.Context, category, id, reviewID string) error {
	token, err := c.bearerToken()
	if err != nil {
		return err
	}

	resp, err := c.request(ctx).SetAuthToken(token).
		Delete(fmt.Sprintf("/api/%s/%s/reviews/%s", category, id, reviewID))
	_, err = decodeEnvelope(resp, err, "delete review")
	return err
}

// FetchProvinces returns the province → cities table from the backend,
// cached for a short TTL. On any failure it degrades silently to the static
// table, matching the forms' behavior when the lookup endpoint is down.
func (c *Client) FetchProvinces(ctx context.Context, category string) map[string][]string {
	if cached, ok := c.provincesCache.Get(category); ok {
		return cached.(map[string][]string)
	}

	var payload models.ProvincesResponse
	resp, err := c.request(ctx).SetResult(&payload).
		Get(fmt.Sprintf("/api/%s/provinces", category))
	if err != nil || resp.IsError() || !payload.Success || len(payload.Data) == 0 {
		logger.Warn("provinces lookup degraded to static table",
			zap.String("category", category), zap.Error(err))
		return location.Table()
	}

	c.provincesCache.Set(category, payload.Data, gocache.DefaultExpiration)
	return payload.Data
}
