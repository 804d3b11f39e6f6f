package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/solestore/storefront-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /api/products.
//
// Recognized query parameters are category and featured; anything else is
// ignored.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Param        featured  query     bool    false  "Filter by featured flag"
// @Success      200       {array}   productResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	filter := ports.ProductFilter{
		Category: c.QueryParam("category"),
	}
	if raw := c.QueryParam("featured"); raw != "" {
		if featured, err := strconv.ParseBool(raw); err == nil {
			filter.Featured = &featured
		}
	}

	products, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProductListResponse(products))
}

// Get handles GET /api/products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Create handles POST /api/products (admin only).
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// Update handles PUT /api/products/:id (admin only). Only provided fields
// change.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to change"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Delete handles DELETE /api/products/:id (admin only).
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "product deleted"})
}
