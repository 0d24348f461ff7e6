package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jfcardenas/inventra/internal/domain/entity"
	"github.com/jfcardenas/inventra/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, kind, product_id, product_name, counterparty_id, counterparty_name,
	reference, quantity, price, total, created_at, updated_at`

// TransactionRepo implementación de TransactionRepository sobre PostgreSQL (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una nueva transacción de compra o venta.
func (r *TransactionRepo) Create(t *entity.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Kind, t.ProductID, t.ProductName, t.CounterpartyID, t.CounterpartyName,
		t.Reference, t.Quantity, t.Price, t.Total, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID. Devuelve nil si no existe.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	var t entity.Transaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Kind, &t.ProductID, &t.ProductName, &t.CounterpartyID, &t.CounterpartyName,
		&t.Reference, &t.Quantity, &t.Price, &t.Total, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// Update actualiza los campos mutables de una transacción.
func (r *TransactionRepo) Update(t *entity.Transaction) error {
	query := `
		UPDATE transactions
		SET counterparty_id = $2, counterparty_name = $3, quantity = $4, price = $5,
		    total = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.CounterpartyID, t.CounterpartyName, t.Quantity, t.Price, t.Total, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// Delete elimina una transacción por ID (hard delete).
func (r *TransactionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// List lista transacciones con filtros y paginación, las más recientes primero.
func (r *TransactionRepo) List(filter repository.TransactionFilter) ([]*entity.Transaction, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	n := 0
	if filter.Kind != "" {
		n++
		where += fmt.Sprintf(` AND kind = $%d`, n)
		args = append(args, filter.Kind)
	}
	if filter.ProductID != "" {
		n++
		where += fmt.Sprintf(` AND product_id = $%d`, n)
		args = append(args, filter.ProductID)
	}
	if filter.Search != "" {
		n++
		where += fmt.Sprintf(` AND (product_name ILIKE $%d OR counterparty_name ILIKE $%d)`, n, n)
		args = append(args, "%"+filter.Search+"%")
	}
	if filter.StartDate != nil {
		n++
		where += fmt.Sprintf(` AND created_at >= $%d`, n)
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		n++
		where += fmt.Sprintf(` AND created_at < $%d`, n)
		args = append(args, *filter.EndDate)
	}

	var total int64
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM transactions`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, n+1, n+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.Kind, &t.ProductID, &t.ProductName, &t.CounterpartyID,
			&t.CounterpartyName, &t.Reference, &t.Quantity, &t.Price, &t.Total,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, total, rows.Err()
}
