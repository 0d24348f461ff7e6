package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jfcardenas/inventra/internal/domain"
	"github.com/jfcardenas/inventra/internal/domain/entity"
	"github.com/jfcardenas/inventra/internal/domain/repository"
)

var (
	_ repository.BrandRepository    = (*BrandRepo)(nil)
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.SellerRepository   = (*SellerRepo)(nil)
)

// BrandRepo implementación de BrandRepository sobre PostgreSQL.
type BrandRepo struct {
	q Querier
}

// NewBrandRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

// Create persiste una marca. Nombre duplicado devuelve ErrDuplicate.
func (r *BrandRepo) Create(b *entity.Brand) error {
	query := `
		INSERT INTO brands (id, name, description, website, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Name, b.Description, b.Website, b.IsActive, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert brand: %w", err)
	}
	return nil
}

// GetByID obtiene una marca por ID. Devuelve nil si no existe.
func (r *BrandRepo) GetByID(id string) (*entity.Brand, error) {
	query := `SELECT id, name, description, website, is_active, created_at, updated_at
		FROM brands WHERE id = $1`
	var b entity.Brand
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Name, &b.Description, &b.Website, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return &b, nil
}

// Update actualiza una marca existente.
func (r *BrandRepo) Update(b *entity.Brand) error {
	query := `
		UPDATE brands SET name = $2, description = $3, website = $4, is_active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Name, b.Description, b.Website, b.IsActive, b.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update brand: %w", err)
	}
	return nil
}

// List lista marcas con búsqueda por nombre y paginación.
func (r *BrandRepo) List(search string, limit, offset int) ([]*entity.Brand, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	n := 0
	if search != "" {
		n++
		where += fmt.Sprintf(` AND name ILIKE $%d`, n)
		args = append(args, "%"+search+"%")
	}

	var total int64
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM brands`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count brands: %w", err)
	}

	query := `SELECT id, name, description, website, is_active, created_at, updated_at FROM brands` +
		where + fmt.Sprintf(` ORDER BY name ASC LIMIT $%d OFFSET $%d`, n+1, n+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	var list []*entity.Brand
	for rows.Next() {
		var b entity.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.Website, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, &b)
	}
	return list, total, rows.Err()
}

// Delete elimina una marca por ID.
func (r *BrandRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	return nil
}

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría. Nombre duplicado devuelve ErrDuplicate.
func (r *CategoryRepo) Create(c *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Description, c.IsActive, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. Devuelve nil si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `SELECT id, name, description, is_active, created_at, updated_at
		FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(c *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, description = $3, is_active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Description, c.IsActive, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// List lista categorías con búsqueda por nombre y paginación.
func (r *CategoryRepo) List(search string, limit, offset int) ([]*entity.Category, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	n := 0
	if search != "" {
		n++
		where += fmt.Sprintf(` AND name ILIKE $%d`, n)
		args = append(args, "%"+search+"%")
	}

	var total int64
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM categories`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	query := `SELECT id, name, description, is_active, created_at, updated_at FROM categories` +
		where + fmt.Sprintf(` ORDER BY name ASC LIMIT $%d OFFSET $%d`, n+1, n+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, total, rows.Err()
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// SellerRepo implementación de SellerRepository sobre PostgreSQL.
type SellerRepo struct {
	q Querier
}

// NewSellerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSellerRepository(q Querier) *SellerRepo {
	return &SellerRepo{q: q}
}

// Create persiste un vendedor.
func (r *SellerRepo) Create(s *entity.Seller) error {
	query := `
		INSERT INTO sellers (id, name, email, phone, address, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.Email, s.Phone, s.Address, s.IsActive, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert seller: %w", err)
	}
	return nil
}

// GetByID obtiene un vendedor por ID. Devuelve nil si no existe.
func (r *SellerRepo) GetByID(id string) (*entity.Seller, error) {
	query := `SELECT id, name, email, phone, address, is_active, created_at, updated_at
		FROM sellers WHERE id = $1`
	var s entity.Seller
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get seller: %w", err)
	}
	return &s, nil
}

// Update actualiza un vendedor existente.
func (r *SellerRepo) Update(s *entity.Seller) error {
	query := `
		UPDATE sellers SET name = $2, email = $3, phone = $4, address = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.Email, s.Phone, s.Address, s.IsActive, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update seller: %w", err)
	}
	return nil
}

// List lista vendedores con búsqueda por nombre o email y paginación.
func (r *SellerRepo) List(search string, limit, offset int) ([]*entity.Seller, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	n := 0
	if search != "" {
		n++
		where += fmt.Sprintf(` AND (name ILIKE $%d OR email ILIKE $%d)`, n, n)
		args = append(args, "%"+search+"%")
	}

	var total int64
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM sellers`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sellers: %w", err)
	}

	query := `SELECT id, name, email, phone, address, is_active, created_at, updated_at FROM sellers` +
		where + fmt.Sprintf(` ORDER BY name ASC LIMIT $%d OFFSET $%d`, n+1, n+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list sellers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Seller
	for rows.Next() {
		var s entity.Seller
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan seller: %w", err)
		}
		list = append(list, &s)
	}
	return list, total, rows.Err()
}

// Delete elimina un vendedor por ID.
func (r *SellerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sellers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete seller: %w", err)
	}
	return nil
}
