package repository

import "github.com/jfcardenas/inventra/internal/domain/entity"

// BrandRepository puerto de persistencia para marcas.
type BrandRepository interface {
	Create(brand *entity.Brand) error
	GetByID(id string) (*entity.Brand, error)
	Update(brand *entity.Brand) error
	List(search string, limit, offset int) ([]*entity.Brand, int64, error)
	Delete(id string) error
}

// CategoryRepository puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	List(search string, limit, offset int) ([]*entity.Category, int64, error)
	Delete(id string) error
}

// SellerRepository puerto de persistencia para vendedores.
type SellerRepository interface {
	Create(seller *entity.Seller) error
	GetByID(id string) (*entity.Seller, error)
	Update(seller *entity.Seller) error
	List(search string, limit, offset int) ([]*entity.Seller, int64, error)
	Delete(id string) error
}
