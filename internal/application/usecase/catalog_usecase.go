package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jfcardenas/inventra/internal/application/dto"
	"github.com/jfcardenas/inventra/internal/domain"
	"github.com/jfcardenas/inventra/internal/domain/entity"
	"github.com/jfcardenas/inventra/internal/domain/repository"
)

// BrandUseCase CRUD de marcas.
type BrandUseCase struct {
	repo repository.BrandRepository
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(repo repository.BrandRepository) *BrandUseCase {
	return &BrandUseCase{repo: repo}
}

// Create crea una marca. Nombre duplicado devuelve ErrDuplicate.
func (uc *BrandUseCase) Create(in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	now := time.Now()
	brand := &entity.Brand{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Website:     in.Website,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// GetByID obtiene una marca. Devuelve nil si no existe.
func (uc *BrandUseCase) GetByID(id string) (*dto.BrandResponse, error) {
	brand, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// Update actualiza una marca existente.
func (uc *BrandUseCase) Update(id string, in dto.UpdateBrandRequest) (*dto.BrandResponse, error) {
	brand, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, nil
	}
	if in.Name != nil {
		brand.Name = *in.Name
	}
	if in.Description != nil {
		brand.Description = *in.Description
	}
	if in.Website != nil {
		brand.Website = *in.Website
	}
	if in.IsActive != nil {
		brand.IsActive = *in.IsActive
	}
	brand.UpdatedAt = time.Now()
	if err := uc.repo.Update(brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// List lista marcas con búsqueda por nombre.
func (uc *BrandUseCase) List(search string, page dto.PageRequest) ([]dto.BrandResponse, dto.PageResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(search, page.Limit, page.Offset)
	if err != nil {
		return nil, dto.PageResponse{}, err
	}
	items := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBrandResponse(b))
	}
	return items, dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total}, nil
}

// Delete elimina una marca.
func (uc *BrandUseCase) Delete(id string) error {
	brand, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if brand == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toBrandResponse(b *entity.Brand) *dto.BrandResponse {
	if b == nil {
		return nil
	}
	return &dto.BrandResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Website:     b.Website,
		IsActive:    b.IsActive,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// CategoryUseCase CRUD de categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. Nombre duplicado devuelve ErrDuplicate.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría. Devuelve nil si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update actualiza una categoría existente.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista categorías con búsqueda por nombre.
func (uc *CategoryUseCase) List(search string, page dto.PageRequest) ([]dto.CategoryResponse, dto.PageResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(search, page.Limit, page.Offset)
	if err != nil {
		return nil, dto.PageResponse{}, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total}, nil
}

// Delete elimina una categoría.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// SellerUseCase CRUD de vendedores.
type SellerUseCase struct {
	repo repository.SellerRepository
}

// NewSellerUseCase construye el caso de uso.
func NewSellerUseCase(repo repository.SellerRepository) *SellerUseCase {
	return &SellerUseCase{repo: repo}
}

// Create crea un vendedor.
func (uc *SellerUseCase) Create(in dto.CreateSellerRequest) (*dto.SellerResponse, error) {
	now := time.Now()
	seller := &entity.Seller{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(seller); err != nil {
		return nil, err
	}
	return toSellerResponse(seller), nil
}

// GetByID obtiene un vendedor. Devuelve nil si no existe.
func (uc *SellerUseCase) GetByID(id string) (*dto.SellerResponse, error) {
	seller, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toSellerResponse(seller), nil
}

// Update actualiza un vendedor existente.
func (uc *SellerUseCase) Update(id string, in dto.UpdateSellerRequest) (*dto.SellerResponse, error) {
	seller, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, nil
	}
	if in.Name != nil {
		seller.Name = *in.Name
	}
	if in.Email != nil {
		seller.Email = *in.Email
	}
	if in.Phone != nil {
		seller.Phone = *in.Phone
	}
	if in.Address != nil {
		seller.Address = *in.Address
	}
	if in.IsActive != nil {
		seller.IsActive = *in.IsActive
	}
	seller.UpdatedAt = time.Now()
	if err := uc.repo.Update(seller); err != nil {
		return nil, err
	}
	return toSellerResponse(seller), nil
}

// List lista vendedores con búsqueda por nombre o email.
func (uc *SellerUseCase) List(search string, page dto.PageRequest) ([]dto.SellerResponse, dto.PageResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(search, page.Limit, page.Offset)
	if err != nil {
		return nil, dto.PageResponse{}, err
	}
	items := make([]dto.SellerResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSellerResponse(s))
	}
	return items, dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total}, nil
}

// Delete elimina un vendedor.
func (uc *SellerUseCase) Delete(id string) error {
	seller, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if seller == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toSellerResponse(s *entity.Seller) *dto.SellerResponse {
	if s == nil {
		return nil
	}
	return &dto.SellerResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
