package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jfcardenas/inventra/internal/application/dto"
	"github.com/jfcardenas/inventra/internal/application/usecase"
)

// CatalogHandler agrupa marcas, categorías y vendedores.
type CatalogHandler struct {
	brands     *usecase.BrandUseCase
	categories *usecase.CategoryUseCase
	sellers    *usecase.SellerUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(b *usecase.BrandUseCase, c *usecase.CategoryUseCase, s *usecase.SellerUseCase) *CatalogHandler {
	return &CatalogHandler{brands: b, categories: c, sellers: s}
}

func listPage(c *fiber.Ctx) (string, dto.PageRequest) {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	return c.Query("search"), page
}

// CreateBrand godoc
// @Summary      Crear marca
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBrandRequest  true  "Datos de la marca"
// @Success      201   {object}  dto.BrandResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/brands [post]
func (h *CatalogHandler) CreateBrand(c *fiber.Ctx) error {
	var in dto.CreateBrandRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.brands.Create(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetBrand godoc
// @Summary      Obtener marca por ID
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la marca"
// @Success      200  {object}  dto.BrandResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/brands/{id} [get]
func (h *CatalogHandler) GetBrand(c *fiber.Ctx) error {
	out, err := h.brands.GetByID(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// ListBrands godoc
// @Summary      Listar marcas
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Busca en nombre"
// @Success      200     {object}  map[string]interface{}
// @Router       /api/brands [get]
func (h *CatalogHandler) ListBrands(c *fiber.Ctx) error {
	search, page := listPage(c)
	items, pageOut, err := h.brands.List(search, page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"items": items, "page": pageOut})
}

// UpdateBrand godoc
// @Summary      Actualizar marca
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la marca"
// @Param        body  body  dto.UpdateBrandRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.BrandResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/brands/{id} [put]
func (h *CatalogHandler) UpdateBrand(c *fiber.Ctx) error {
	var in dto.UpdateBrandRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.brands.Update(c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// DeleteBrand godoc
// @Summary      Eliminar marca
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  string  true  "ID de la marca"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/brands/{id} [delete]
func (h *CatalogHandler) DeleteBrand(c *fiber.Ctx) error {
	if err := h.brands.Delete(c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCategory godoc
// @Summary      Crear categoría
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.categories.Create(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetCategory godoc
// @Summary      Obtener categoría por ID
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CatalogHandler) GetCategory(c *fiber.Ctx) error {
	out, err := h.categories.GetByID(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Busca en nombre"
// @Success      200     {object}  map[string]interface{}
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	search, page := listPage(c)
	items, pageOut, err := h.categories.List(search, page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"items": items, "page": pageOut})
}

// UpdateCategory godoc
// @Summary      Actualizar categoría
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.categories.Update(c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// DeleteCategory godoc
// @Summary      Eliminar categoría
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  string  true  "ID de la categoría"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.categories.Delete(c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateSeller godoc
// @Summary      Crear vendedor
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSellerRequest  true  "Datos del vendedor"
// @Success      201   {object}  dto.SellerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sellers [post]
func (h *CatalogHandler) CreateSeller(c *fiber.Ctx) error {
	var in dto.CreateSellerRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.sellers.Create(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetSeller godoc
// @Summary      Obtener vendedor por ID
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del vendedor"
// @Success      200  {object}  dto.SellerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sellers/{id} [get]
func (h *CatalogHandler) GetSeller(c *fiber.Ctx) error {
	out, err := h.sellers.GetByID(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// ListSellers godoc
// @Summary      Listar vendedores
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Busca en nombre y email"
// @Success      200     {object}  map[string]interface{}
// @Router       /api/sellers [get]
func (h *CatalogHandler) ListSellers(c *fiber.Ctx) error {
	search, page := listPage(c)
	items, pageOut, err := h.sellers.List(search, page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"items": items, "page": pageOut})
}

// UpdateSeller godoc
// @Summary      Actualizar vendedor
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del vendedor"
// @Param        body  body  dto.UpdateSellerRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SellerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sellers/{id} [put]
func (h *CatalogHandler) UpdateSeller(c *fiber.Ctx) error {
	var in dto.UpdateSellerRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.sellers.Update(c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// DeleteSeller godoc
// @Summary      Eliminar vendedor
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  string  true  "ID del vendedor"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sellers/{id} [delete]
func (h *CatalogHandler) DeleteSeller(c *fiber.Ctx) error {
	if err := h.sellers.Delete(c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
