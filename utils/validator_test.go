package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Madhav-Gupta-28/catalog-backend-go/errs"
	"github.com/Madhav-Gupta-28/catalog-backend-go/models"
)

func TestRequestValidator(t *testing.T) {
	v := NewRequestValidator()

	valid := models.ProductInput{NameTR: "Elma", NameAR: "تفاح", DescriptionTR: "taze", DescriptionAR: "طازج"}
	assert.NoError(t, v.Validate(&valid))

	missing := valid
	missing.DescriptionAR = ""
	err := v.Validate(&missing)
	assert.True(t, errs.IsKind(err, errs.KindValidation))
	assert.EqualError(t, err, "descriptionAR is required")

	badImage := valid
	badImage.Images = []models.ImageInput{{Image: "a.png", Width: 0, Height: 10}}
	assert.EqualError(t, v.Validate(&badImage), "images[0].width is required")

	empty := ""
	assert.EqualError(t, v.Validate(&models.ProductUpdate{NameAR: &empty}), "nameAR must be at least 1 characters")
	assert.NoError(t, v.Validate(&models.ProductUpdate{}))

	assert.EqualError(t, v.Validate(&models.ImageInput{Image: "a.png", Width: -1, Height: 2}), "width must be greater than 0")
}
