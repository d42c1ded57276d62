package handlers

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Madhav-Gupta-28/catalog-backend-go/errs"
	customMiddleware "github.com/Madhav-Gupta-28/catalog-backend-go/middleware"
	"github.com/Madhav-Gupta-28/catalog-backend-go/models"
	"github.com/Madhav-Gupta-28/catalog-backend-go/repository"
)

// Image writes below follow read whole product, mutate in memory, replace
// whole product, then re-read. Concurrent writers on the same product race
// and the last replace wins.

func (h *ProductHandler) loadProduct(c echo.Context) (*models.Product, error) {
	id := c.Param("productId")
	product, err := h.products.FindByID(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errs.ProductNotFound(id)
	}
	return product, nil
}

func (h *ProductHandler) loadImage(c echo.Context) (*models.Product, *models.Image, error) {
	product, err := h.loadProduct(c)
	if err != nil {
		return nil, nil, err
	}
	imageID := c.Param("imageId")
	image := product.FindImage(imageID)
	if image == nil {
		return nil, nil, errs.ImageNotFound(imageID)
	}
	return product, image, nil
}

func (h *ProductHandler) save(ctx context.Context, product *models.Product) error {
	err := h.products.Save(ctx, product)
	if errors.Is(err, repository.ErrNotFound) {
		return errs.ProductNotFound(product.ID.Hex())
	}
	return err
}

// saveAndReload persists product and returns the stored copy.
func (h *ProductHandler) saveAndReload(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := h.save(ctx, product); err != nil {
		return nil, err
	}
	fresh, err := h.products.FindByID(ctx, product.ID.Hex())
	if err != nil {
		return nil, err
	}
	if fresh == nil {
		return nil, errs.ProductNotFound(product.ID.Hex())
	}
	return fresh, nil
}

func (h *ProductHandler) ListImages(c echo.Context) error {
	product, err := h.loadProduct(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product.Images)
}

// AppendImage adds an image authored by the caller and returns the fresh product.
func (h *ProductHandler) AppendImage(c echo.Context) error {
	product, err := h.loadProduct(c)
	if err != nil {
		return err
	}

	var input models.ImageInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	var author *primitive.ObjectID
	if user := customMiddleware.CurrentUser(c); user != nil {
		id := user.ID
		author = &id
	}
	product.AppendImage(input, author, h.now())

	fresh, err := h.saveAndReload(c.Request().Context(), product)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fresh)
}

// DeleteImages empties the image sequence. Repeating it is a no-op.
func (h *ProductHandler) DeleteImages(c echo.Context) error {
	product, err := h.loadProduct(c)
	if err != nil {
		return err
	}

	product.ClearImages()
	if err := h.save(c.Request().Context(), product); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) GetImage(c echo.Context) error {
	_, image, err := h.loadImage(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, image)
}

// UpdateImage only replaces the image reference; a body without it changes nothing.
func (h *ProductHandler) UpdateImage(c echo.Context) error {
	product, image, err := h.loadImage(c)
	if err != nil {
		return err
	}

	var patch models.ImagePatch
	if err := c.Bind(&patch); err != nil {
		return errs.Validation("malformed request body")
	}
	image.Apply(patch, h.now())

	fresh, err := h.saveAndReload(c.Request().Context(), product)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fresh)
}

func (h *ProductHandler) DeleteImage(c echo.Context) error {
	product, image, err := h.loadImage(c)
	if err != nil {
		return err
	}

	product.RemoveImage(image.ID)

	fresh, err := h.saveAndReload(c.Request().Context(), product)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fresh)
}
