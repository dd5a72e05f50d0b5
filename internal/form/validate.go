package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/holidaysri/holidaysri-client/internal/catalog"
	"github.com/holidaysri/holidaysri-client/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Payload structs carry gin-style binding tags; reuse them here so the
	// form and the stub server enforce the same rules.
	v.SetTagName("binding")
	return v
}

// Validate checks the whole form and returns the first violated rule as a
// human-readable message, or "" when the form is submittable. No partial
// submission is ever attempted.
func (c *Controller) Validate() string {
	type requiredField struct {
		label, value string
	}
	for _, f := range []requiredField{
		{"Name", c.Name},
		{"Description", c.Description},
		{"Contact number", c.Contact},
		{"Province", c.Province},
		{"City", c.City},
	} {
		if strings.TrimSpace(f.value) == "" {
			return f.label + " is required"
		}
	}

	if _, ok := c.provinces[c.Province]; !ok {
		return fmt.Sprintf("Unknown province %q", c.Province)
	}
	if !containsString(c.provinces[c.Province], c.City) {
		return fmt.Sprintf("%q is not a city in %s", c.City, c.Province)
	}

	for _, field := range c.schema.Fields {
		if msg := c.validateField(field); msg != "" {
			return msg
		}
	}

	for _, arr := range c.schema.ArrayFields {
		for _, v := range c.arrays[arr.Name] {
			if !containsString(arr.Options, v) {
				return fmt.Sprintf("%q is not a valid %s option", v, arr.Name)
			}
		}
	}

	if c.schema.ImagesRequired && len(c.images) == 0 {
		return "At least one image is required"
	}
	if len(c.images) > c.schema.ImageCap {
		return imageCapMessage(c.schema.ImageCap, len(c.images), 0)
	}

	if msg := c.validateStruct(); msg != "" {
		return msg
	}
	return ""
}

func (c *Controller) validateField(field catalog.Field) string {
	raw := strings.TrimSpace(c.fields[field.Name])
	if raw == "" {
		if field.Required {
			return fmt.Sprintf("%s is required", field.Name)
		}
		return ""
	}

	switch field.Kind {
	case catalog.FieldSelect:
		if !containsString(field.Options, raw) {
			return fmt.Sprintf("%s must be one of: %s", field.Name, strings.Join(field.Options, ", "))
		}
	case catalog.FieldInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Sprintf("%s must be a whole number", field.Name)
		}
		if float64(n) < field.Min || (field.Max > 0 && float64(n) > field.Max) {
			return numericBoundsMessage(field)
		}
	case catalog.FieldFloat:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Sprintf("%s must be a number", field.Name)
		}
		if n < field.Min || (field.Max > 0 && n > field.Max) {
			return numericBoundsMessage(field)
		}
	case catalog.FieldText:
		if field.MaxLen > 0 && len(raw) > field.MaxLen {
			return fmt.Sprintf("%s must not exceed %d characters", field.Name, field.MaxLen)
		}
	}
	return ""
}

// validateStruct runs the binding-tag rules (URL formats, length caps) over
// the assembled payload, mirroring what the backend will enforce.
func (c *Controller) validateStruct() string {
	var err error
	if c.editID != "" {
		err = validate.Struct(c.buildUpdateRequest())
	} else {
		err = validate.Struct(c.buildPublishRequest())
	}
	if err == nil {
		return ""
	}
	if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
		return bindingErrorMessage(fieldErrors[0])
	}
	return "Form contains invalid values"
}

func bindingErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "url":
		return fe.Field() + " must be a valid URL"
	case "max":
		return fe.Field() + " must not exceed " + fe.Param() + " characters"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}

func numericBoundsMessage(field catalog.Field) string {
	if field.Max > 0 {
		return fmt.Sprintf("%s must be between %s and %s",
			field.Name, trimFloat(field.Min), trimFloat(field.Max))
	}
	return fmt.Sprintf("%s must be at least %s", field.Name, trimFloat(field.Min))
}

func imageCapMessage(limit, existing, adding int) string {
	if adding > 0 {
		return fmt.Sprintf("A maximum of %d images is allowed (you have %d and tried to add %d)",
			limit, existing, adding)
	}
	return fmt.Sprintf("A maximum of %d images is allowed", limit)
}

// buildPublishRequest assembles the payload with numeric-looking strings
// coerced to their real types, matching the shape the backend stores.
func (c *Controller) buildPublishRequest() *models.PublishRequest {
	return &models.PublishRequest{
		AdvertisementID: c.advertisementID,
		Name:            strings.TrimSpace(c.Name),
		Description:     strings.TrimSpace(c.Description),
		Province:        c.Province,
		City:            c.City,
		Contact:         strings.TrimSpace(c.Contact),
		Available:       c.Available,
		Facebook:        strings.TrimSpace(c.Facebook),
		Website:         strings.TrimSpace(c.Website),
		Fields:          c.coercedFields(),
		Arrays:          c.copiedArrays(),
		Images:          c.Images(),
	}
}

func (c *Controller) buildUpdateRequest() *models.UpdateRequest {
	return &models.UpdateRequest{
		Name:        strings.TrimSpace(c.Name),
		Description: strings.TrimSpace(c.Description),
		Province:    c.Province,
		City:        c.City,
		Contact:     strings.TrimSpace(c.Contact),
		Available:   c.Available,
		Facebook:    strings.TrimSpace(c.Facebook),
		Website:     strings.TrimSpace(c.Website),
		Fields:      c.coercedFields(),
		Arrays:      c.copiedArrays(),
		Images:      c.Images(),
	}
}

// coercedFields converts each raw field string to the schema's declared
// type: ints and floats are parsed, everything else passes through.
func (c *Controller) coercedFields() map[string]any {
	out := make(map[string]any, len(c.fields))
	for name, raw := range c.fields {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		field, ok := c.schema.Field(name)
		if !ok {
			out[name] = raw
			continue
		}
		switch field.Kind {
		case catalog.FieldInt:
			if n, err := strconv.Atoi(raw); err == nil {
				out[name] = n
				continue
			}
			out[name] = raw
		case catalog.FieldFloat:
			if n, err := strconv.ParseFloat(raw, 64); err == nil {
				out[name] = n
				continue
			}
			out[name] = raw
		default:
			out[name] = raw
		}
	}
	return out
}

func (c *Controller) copiedArrays() map[string][]string {
	out := make(map[string][]string, len(c.arrays))
	for name, values := range c.arrays {
		if len(values) == 0 {
			continue
		}
		out[name] = append([]string(nil), values...)
	}
	return out
}

// coerceToString renders a stored field value back into form-input shape
func coerceToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return trimFloat(v)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
