package entity

import "time"

// Brand marca de producto. Name es único.
type Brand struct {
	ID          string
	Name        string
	Description string
	Website     string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Category categoría de producto. Name es único.
type Category struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Seller vendedor asociado a las ventas.
type Seller struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
