package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/Madhav-Gupta-28/catalog-backend-go/models"
)

// ListProducts returns every product matching the allow-listed query filter.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	filter, err := models.ParseProductFilter(c.QueryParams())
	if err != nil {
		return err
	}

	products, err := h.products.Find(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input models.ProductInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	product := input.NewProduct(h.now())
	if err := h.products.Create(c.Request().Context(), &product); err != nil {
		return err
	}

	log.Ctx(c.Request().Context()).Info().
		Str("component", "CreateProduct").
		Str("product_id", product.ID.Hex()).
		Msg("product created")

	return c.JSON(http.StatusOK, product)
}

// DeleteProducts removes the whole collection.
func (h *ProductHandler) DeleteProducts(c echo.Context) error {
	summary, err := h.products.DeleteAll(c.Request().Context())
	if err != nil {
		return err
	}

	log.Ctx(c.Request().Context()).Warn().
		Str("component", "DeleteProducts").
		Int64("deleted", summary.DeletedCount).
		Msg("all products deleted")

	return c.JSON(http.StatusOK, summary)
}

// GetProduct answers null rather than 404 when the id does not resolve.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.products.FindByID(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

// UpdateProduct merges the body onto the stored document and returns the result, or null.
// Only the four text fields can be changed; any other key is rejected.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var update models.ProductUpdate
	if err := bindStrictAndValidate(c, &update); err != nil {
		return err
	}

	product, err := h.products.UpdateByID(c.Request().Context(), c.Param("productId"), update)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	product, err := h.products.DeleteByID(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}
