package handlers

import (
	"net/http"
	"regexp"

	"github.com/go-faster/errors"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/Madhav-Gupta-28/catalog-backend-go/errs"
)

// UploadField is the multipart field carrying the image.
const UploadField = "imageFile"

// Lower- or upper-case extensions only, as accepted historically.
var imageFilePattern = regexp.MustCompile(`\.(jpg|jpeg|png|gif|JPG|JPEG|PNG|GIF)$`)

func IsAllowedImageName(name string) bool {
	return imageFilePattern.MatchString(name)
}

// UploadImage stores one image and answers its generated filename as a JSON string.
// The caller attaches that filename to an image record with a separate write.
func (h *ProductHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile(UploadField)
	if err != nil {
		return errs.Validation("no file uploaded in field %q", UploadField)
	}

	if !IsAllowedImageName(file.Filename) {
		h.uploads.WithLabelValues("rejected").Inc()
		return errs.UnsupportedFileType()
	}

	src, err := file.Open()
	if err != nil {
		return errors.Wrap(err, "open multipart file")
	}
	defer src.Close()

	filename, err := h.images.Store(c.Request().Context(), file.Filename, src)
	if err != nil {
		return err
	}
	h.uploads.WithLabelValues("stored").Inc()

	log.Ctx(c.Request().Context()).Info().
		Str("component", "UploadImage").
		Str("filename", filename).
		Int64("size", file.Size).
		Msg("image uploaded")

	return c.JSON(http.StatusOK, filename)
}
