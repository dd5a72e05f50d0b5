// Package form implements the listing-form controller shared by every
// publish/edit page: cascading province→city selects, bounded image slots,
// array-toggle fields, and a validate→submit→success lifecycle. Each
// category instantiates it with a catalog.Schema instead of re-deriving the
// whole flow.
package form

import (
	"context"
	"errors"
	"io"

	"github.com/holidaysri/holidaysri-client/internal/catalog"
	"github.com/holidaysri/holidaysri-client/internal/location"
	"github.com/holidaysri/holidaysri-client/internal/models"
	apperrors "github.com/holidaysri/holidaysri-client/pkg/errors"
)

// State is the controller's lifecycle position. Submitting is only
// reachable through a passing Validate; Success is terminal.
type State string

const (
	StateLoadingReference State = "loading-reference"
	StateEditing          State = "editing"
	StateSubmitting       State = "submitting"
	StateSuccess          State = "success"
)

// Backend is the slice of the API client the controller needs
type Backend interface {
	GetListing(ctx context.Context, category, id string) (*models.Listing, error)
	Publish(ctx context.Context, category string, req *models.PublishRequest) (*models.Listing, error)
	Update(ctx context.Context, category, id string, req *models.UpdateRequest) (*models.Listing, error)
	FetchProvinces(ctx context.Context, category string) map[string][]string
}

// Uploader is the slice of the asset-host client the controller needs
type Uploader interface {
	Upload(ctx context.Context, fileName string, size int64, r io.Reader) (models.UploadedImage, error)
}

// File is one image selected for upload
type File struct {
	Name   string
	Size   int64
	Reader io.Reader
}

// Controller owns the state of one form instance. It is not safe for
// concurrent use: each form instance is owned by a single flow, mirroring
// the page-per-component model it replaces.
type Controller struct {
	schema   catalog.Schema
	backend  Backend
	uploader Uploader

	// create mode carries the advertisement slot id; edit mode carries
	// the record id loaded from the route.
	advertisementID string
	editID          string

	state     State
	lastError string

	provinces map[string][]string

	Name        string
	Description string
	Contact     string
	Province    string
	City        string
	Available   bool
	Facebook    string
	Website     string

	fields map[string]string
	arrays map[string][]string
	images []models.UploadedImage

	uploading  bool
	submitting bool

	result *models.Listing
}

// NewPublish creates a controller in create mode, bound to a pre-existing
// advertisement slot.
func NewPublish(schema catalog.Schema, backend Backend, uploader Uploader, advertisementID string) *Controller {
	return &Controller{
		schema:          schema,
		backend:         backend,
		uploader:        uploader,
		advertisementID: advertisementID,
		state:           StateLoadingReference,
		Available:       true,
		fields:          make(map[string]string),
		arrays:          make(map[string][]string),
	}
}

// NewEdit creates a controller in edit mode for an existing record
func NewEdit(schema catalog.Schema, backend Backend, uploader Uploader, id string) *Controller {
	c := NewPublish(schema, backend, uploader, "")
	c.editID = id
	return c
}

// State returns the controller's current lifecycle state
func (c *Controller) State() State { return c.state }

// LastError returns the inline banner message, empty when none
func (c *Controller) LastError() string { return c.lastError }

// Result returns the listing the backend returned after a successful submit
func (c *Controller) Result() *models.Listing { return c.result }

// Images returns the current image slots
func (c *Controller) Images() []models.UploadedImage {
	out := make([]models.UploadedImage, len(c.images))
	copy(out, c.images)
	return out
}

// Schema returns the category schema this form was built from
func (c *Controller) Schema() catalog.Schema { return c.schema }

// EditMode reports whether the form mutates an existing record
func (c *Controller) EditMode() bool { return c.editID != "" }

// LoadReferenceData fetches provinces and, in edit mode, the existing
// record. A missing record is terminal for the form; a failed provinces
// lookup degrades silently to the static table inside the backend client.
func (c *Controller) LoadReferenceData(ctx context.Context) error {
	if c.schema.ProvincesFromAPI {
		c.provinces = c.backend.FetchProvinces(ctx, c.schema.Slug)
	} else {
		c.provinces = location.Table()
	}

	if c.editID != "" {
		listing, err := c.backend.GetListing(ctx, c.schema.Slug, c.editID)
		if err != nil {
			c.lastError = err.Error()
			return apperrors.FetchError("existing record", err)
		}
		c.seed(listing)
	}

	c.state = StateEditing
	return nil
}

// seed fills the form from a previously saved record
func (c *Controller) seed(listing *models.Listing) {
	c.Name = listing.Name
	c.Description = listing.Description
	c.Contact = listing.Contact
	c.Province = listing.Province
	c.City = listing.City
	c.Available = listing.Available
	c.Facebook = listing.Facebook
	c.Website = listing.Website
	for name, value := range listing.Fields {
		c.fields[name] = coerceToString(value)
	}
	for name, values := range listing.Arrays {
		c.arrays[name] = append([]string(nil), values...)
	}
	c.images = append([]models.UploadedImage(nil), listing.Images...)
}

// SetField records a category-specific field value as entered
func (c *Controller) SetField(name, value string) {
	c.fields[name] = value
}

// FieldValue returns the raw value of a category-specific field
func (c *Controller) FieldValue(name string) string {
	return c.fields[name]
}

// SetProvince changes the province and always clears the dependent city
func (c *Controller) SetProvince(province string) {
	c.Province = province
	c.City = ""
}

// CityOptions returns the valid city list for the selected province, empty
// when no province is selected.
func (c *Controller) CityOptions() []string {
	if c.Province == "" {
		return nil
	}
	return append([]string(nil), c.provinces[c.Province]...)
}

// Toggle flips membership of value in an array field: absent values are
// appended, present values removed. No network call, no duplicates.
func (c *Controller) Toggle(field, value string) {
	current := c.arrays[field]
	for i, v := range current {
		if v == value {
			c.arrays[field] = append(current[:i], current[i+1:]...)
			return
		}
	}
	c.arrays[field] = append(current, value)
}

// ArrayValues returns the current membership of an array field
func (c *Controller) ArrayValues(field string) []string {
	return append([]string(nil), c.arrays[field]...)
}

// AddImages uploads a batch of files into the image slots. The cumulative
// count-vs-cap invariant is checked before any upload begins: a batch that
// would exceed the cap is rejected whole and the slots stay untouched.
// Uploads run sequentially; the first failure stops the batch but keeps
// everything already stored. A single-slot (avatar) schema is different:
// one incoming file replaces whatever the slot holds, and the old handle
// is only dropped once the new upload succeeded.
func (c *Controller) AddImages(ctx context.Context, files []File) error {
	if c.uploading {
		return apperrors.ValidationError("images", "an upload is already in progress")
	}
	if len(files) == 0 {
		return nil
	}

	if c.schema.SingleImage {
		if len(files) > 1 {
			return apperrors.ValidationError("images",
				imageCapMessage(c.schema.ImageCap, len(c.images), len(files)))
		}
		c.uploading = true
		defer func() { c.uploading = false }()

		img, err := c.uploader.Upload(ctx, files[0].Name, files[0].Size, files[0].Reader)
		if err != nil {
			c.lastError = err.Error()
			return err
		}
		c.images = []models.UploadedImage{img}
		c.lastError = ""
		return nil
	}

	if len(c.images)+len(files) > c.schema.ImageCap {
		return apperrors.ValidationError("images",
			imageCapMessage(c.schema.ImageCap, len(c.images), len(files)))
	}

	c.uploading = true
	defer func() { c.uploading = false }()

	for _, f := range files {
		img, err := c.uploader.Upload(ctx, f.Name, f.Size, f.Reader)
		if err != nil {
			c.lastError = err.Error()
			return err
		}
		c.images = append(c.images, img)
	}
	c.lastError = ""
	return nil
}

// RemoveImage drops the slot at index; out-of-range indexes are ignored
func (c *Controller) RemoveImage(index int) {
	if index < 0 || index >= len(c.images) {
		return
	}
	c.images = append(c.images[:index], c.images[index+1:]...)
}

// Submit validates and sends the record exactly once per call. A submit
// already in flight blocks re-entry, so a double-trigger cannot create a
// duplicate listing. On failure the form keeps all entered data and returns
// to editing with the error surfaced.
func (c *Controller) Submit(ctx context.Context) (*models.Listing, error) {
	if c.submitting || c.state == StateSubmitting {
		return nil, apperrors.ValidationError("submit", "a submission is already in progress")
	}
	if c.state == StateSuccess {
		return nil, apperrors.ValidationError("submit", "the form was already submitted")
	}

	if msg := c.Validate(); msg != "" {
		c.lastError = msg
		return nil, apperrors.ValidationError("form", msg)
	}

	c.submitting = true
	c.state = StateSubmitting
	defer func() { c.submitting = false }()

	var (
		listing *models.Listing
		err     error
	)
	if c.editID != "" {
		listing, err = c.backend.Update(ctx, c.schema.Slug, c.editID, c.buildUpdateRequest())
	} else {
		listing, err = c.backend.Publish(ctx, c.schema.Slug, c.buildPublishRequest())
	}

	if err != nil {
		c.state = StateEditing
		c.lastError = serverMessage(err)
		return nil, err
	}

	c.state = StateSuccess
	c.lastError = ""
	c.result = listing
	return listing, nil
}

// serverMessage surfaces the backend's message verbatim when present, and
// falls back to a generic string otherwise.
func serverMessage(err error) string {
	if msg := apperrors.SubmitMessage(err); msg != "" {
		return msg
	}
	if errors.Is(err, apperrors.ErrUnauthorized) {
		return "Please login to continue"
	}
	return "Something went wrong. Please try again."
}
