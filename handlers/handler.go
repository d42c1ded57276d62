package handlers

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Madhav-Gupta-28/catalog-backend-go/errs"
	"github.com/Madhav-Gupta-28/catalog-backend-go/repository"
	"github.com/Madhav-Gupta-28/catalog-backend-go/storage"
)

// ProductHandler serves the product collection, single products, their
// embedded images and the image upload.
type ProductHandler struct {
	products repository.ProductRepository
	images   storage.ImageStore
	uploads  *prometheus.CounterVec
	now      func() time.Time
}

func NewProductHandler(products repository.ProductRepository, images storage.ImageStore) *ProductHandler {
	return &ProductHandler{
		products: products,
		images:   images,
		now:      func() time.Time { return time.Now().UTC() },
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_image_uploads_total",
			Help: "Image uploads by outcome.",
		}, []string{"result"}),
	}
}

// bindAndValidate decodes the JSON body into v and runs the registered validator.
func bindAndValidate(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		return errs.Validation("malformed request body")
	}
	return c.Validate(v)
}

// bindStrictAndValidate is bindAndValidate for bodies whose every key must be
// known to v. An empty body decodes to the zero value.
func bindStrictAndValidate(c echo.Context, v interface{}) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		if field, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
			return errs.Validation("%s cannot be updated", strings.Trim(field, `"`))
		}
		return errs.Validation("malformed request body")
	}
	return c.Validate(v)
}

// Collectors returns the handler's metrics for registration.
func (h *ProductHandler) Collectors() []prometheus.Collector {
	return []prometheus.Collector{h.uploads}
}
