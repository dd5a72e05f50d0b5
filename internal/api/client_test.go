package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holidaysri/holidaysri-client/internal/models"
	"github.com/holidaysri/holidaysri-client/internal/session"
	"github.com/holidaysri/holidaysri-client/internal/stub"
	apperrors "github.com/holidaysri/holidaysri-client/pkg/errors"
	"github.com/holidaysri/holidaysri-client/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	// Initialize logger for tests
	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

// newTestClient spins up the stub backend and returns a client bound to it
func newTestClient(t *testing.T) (*Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(stub.NewRouter(stub.Options{DisableRateLimit: true}))
	t.Cleanup(srv.Close)

	sessions := session.NewStore(filepath.Join(t.TempDir(), "token"))
	return New(srv.URL, sessions), sessions
}

func login(t *testing.T, client *Client, sessions *session.Store, name, email string) {
	t.Helper()
	token, err := client.DevLogin(context.Background(), name, email)
	require.NoError(t, err)
	require.NoError(t, sessions.Save(token))
}

func validPublish(adID string) *models.PublishRequest {
	return &models.PublishRequest{
		AdvertisementID: adID,
		Name:            "Jane",
		Description:     "Experienced and caring babysitter.",
		Province:        "Western Province",
		City:            "Colombo",
		Contact:         "0771234567",
		Available:       true,
		Fields:          map[string]any{"category": "Full-time", "experience": 5},
		Arrays:          map[string][]string{"services": {"Infant Care"}},
		Images:          []models.UploadedImage{{URL: "https://res/img1", PublicID: "p1"}},
	}
}

func TestPublish_WithoutSessionBlockedClientSide(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("unauthenticated publish must not reach the network")
	}))
	defer srv.Close()

	sessions := session.NewStore(filepath.Join(t.TempDir(), "token"))
	client := New(srv.URL, sessions)

	_, err := client.Publish(context.Background(), "babysitters-childcare", validPublish("ad-1"))
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestPublishAndGetListing(t *testing.T) {
	client, sessions := newTestClient(t)
	login(t, client, sessions, "Jane", "jane@example.com")

	created, err := client.Publish(context.Background(), "babysitters-childcare", validPublish("ad-1"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "babysitters-childcare", created.Category)

	got, err := client.GetListing(context.Background(), "babysitters-childcare", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.Name)
	assert.EqualValues(t, 5, got.Fields["experience"])
	require.Len(t, got.Images, 1)
	assert.Equal(t, "p1", got.Images[0].PublicID)
}

func TestPublish_ReusedSlotSurfacesServerMessage(t *testing.T) {
	client, sessions := newTestClient(t)
	login(t, client, sessions, "Jane", "jane@example.com")

	_, err := client.Publish(context.Background(), "babysitters-childcare", validPublish("ad-1"))
	require.NoError(t, err)

	_, err = client.Publish(context.Background(), "babysitters-childcare", validPublish("ad-1"))
	require.ErrorIs(t, err, apperrors.ErrSubmitFailed)
	assert.Contains(t, err.Error(), "already been published", "server message is surfaced verbatim")
}

func TestGetListing_NotFound(t *testing.T) {
	client, _ := newTestClient(t)
	_, err := client.GetListing(context.Background(), "babysitters-childcare", "missing-id")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdate_RoundTrip(t *testing.T) {
	client, sessions := newTestClient(t)
	login(t, client, sessions, "Jane", "jane@example.com")

	created, err := client.Publish(context.Background(), "babysitters-childcare", validPublish("ad-1"))
	require.NoError(t, err)

	updated, err := client.Update(context.Background(), "babysitters-childcare", created.ID, &models.UpdateRequest{
		Name:        "Jane Perera",
		Description: "Updated description.",
		Province:    "Western Province",
		City:        "Negombo",
		Contact:     "0771234567",
		Available:   false,
		Fields:      map[string]any{"category": "Part-time", "experience": 6},
		Images:      []models.UploadedImage{{URL: "https://res/img2", PublicID: "p2"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Perera", updated.Name)
	assert.Equal(t, "Negombo", updated.City)
	assert.False(t, updated.Available)
}

func TestListMyListings_OnlyOwnPosts(t *testing.T) {
	client, sessions := newTestClient(t)

	login(t, client, sessions, "Jane", "jane@example.com")
	_, err := client.Publish(context.Background(), "babysitters-childcare", validPublish("ad-1"))
	require.NoError(t, err)

	login(t, client, sessions, "Amal", "amal@example.com")
	_, err = client.Publish(context.Background(), "babysitters-childcare", validPublish("ad-2"))
	require.NoError(t, err)

	mine, err := client.ListMyListings(context.Background(), "babysitters-childcare")
	require.NoError(t, err)
	require.Len(t, mine, 1, "only the current session's posts are returned")
	assert.Equal(t, "ad-2", mine[0].AdvertisementID)
}

func TestReviews_SubmitAndServerAggregates(t *testing.T) {
	client, sessions := newTestClient(t)
	login(t, client, sessions, "Jane", "jane@example.com")

	created, err := client.Publish(context.Background(), "babysitters-childcare", validPublish("ad-1"))
	require.NoError(t, err)
	assert.Zero(t, created.TotalReviews)

	review, err := client.SubmitReview(context.Background(), "babysitters-childcare", created.ID,
		&models.SubmitReviewRequest{Rating: 4, Comment: "Great service"})
	require.NoError(t, err)
	assert.Equal(t, "Jane", review.UserName)

	_, err = client.SubmitReview(context.Background(), "babysitters-childcare", created.ID,
		&models.SubmitReviewRequest{Rating: 2, Comment: "Could be better"})
	require.NoError(t, err)

	refetched, err := client.GetListing(context.Background(), "babysitters-childcare", created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, refetched.TotalReviews)
	assert.InDelta(t, 3.0, refetched.AverageRating, 0.001, "aggregates are computed server-side")

	reviews, err := client.GetReviews(context.Background(), "babysitters-childcare", created.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}

func TestDeleteReview_OwnOnly(t *testing.T) {
	client, sessions := newTestClient(t)
	login(t, client, sessions, "Jane", "jane@example.com")

	created, err := client.Publish(context.Background(), "babysitters-childcare", validPublish("ad-1"))
	require.NoError(t, err)

	review, err := client.SubmitReview(context.Background(), "babysitters-childcare", created.ID,
		&models.SubmitReviewRequest{Rating: 5, Comment: "Excellent"})
	require.NoError(t, err)

	// A different user cannot delete Jane's review
	login(t, client, sessions, "Amal", "amal@example.com")
	err = client.DeleteReview(context.Background(), "babysitters-childcare", created.ID, review.ID)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	login(t, client, sessions, "Jane", "jane@example.com")
	err = client.DeleteReview(context.Background(), "babysitters-childcare", created.ID, review.ID)
	require.NoError(t, err)

	refetched, err := client.GetListing(context.Background(), "babysitters-childcare", created.ID)
	require.NoError(t, err)
	assert.Zero(t, refetched.TotalReviews)
	assert.Zero(t, refetched.AverageRating)
}

func TestSubmitReview_InvalidRatingRejectedByBackend(t *testing.T) {
	client, sessions := newTestClient(t)
	login(t, client, sessions, "Jane", "jane@example.com")

	created, err := client.Publish(context.Background(), "babysitters-childcare", validPublish("ad-1"))
	require.NoError(t, err)

	_, err = client.SubmitReview(context.Background(), "babysitters-childcare", created.ID,
		&models.SubmitReviewRequest{Rating: 6, Comment: "Too good"})
	assert.ErrorIs(t, err, apperrors.ErrSubmitFailed)
}

func TestFetchProvinces_FromBackendAndCached(t *testing.T) {
	client, _ := newTestClient(t)

	table := client.FetchProvinces(context.Background(), "properties")
	require.Len(t, table, 9)
	assert.Contains(t, table["Western Province"], "Colombo")

	// Second call is served from cache
	again := client.FetchProvinces(context.Background(), "properties")
	assert.Equal(t, table, again)
}

func TestFetchProvinces_DegradesToStaticTable(t *testing.T) {
	sessions := session.NewStore(filepath.Join(t.TempDir(), "token"))
	client := New("http://127.0.0.1:0", sessions) // unreachable backend

	table := client.FetchProvinces(context.Background(), "properties")
	require.Len(t, table, 9, "a failed lookup degrades silently to the static table")
	assert.Contains(t, table["Central Province"], "Kandy")
}

func TestUnknownCategory_NotFound(t *testing.T) {
	client, _ := newTestClient(t)
	_, err := client.GetListing(context.Background(), "hoverboards", "any")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
