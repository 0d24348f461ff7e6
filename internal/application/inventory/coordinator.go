package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jfcardenas/inventra/internal/application/dto"
	"github.com/jfcardenas/inventra/internal/domain"
	"github.com/jfcardenas/inventra/internal/domain/entity"
	"github.com/jfcardenas/inventra/internal/domain/repository"
)

// TransactionUseCase coordina el ciclo de vida de compras y ventas junto con
// el ajuste de stock correspondiente. Cada mutación (crear, actualizar,
// eliminar) corre dentro de una transacción de BD: el registro y el stock se
// confirman juntos o no se confirma ninguno.
type TransactionUseCase struct {
	txRunner  TxRunner
	repo      repository.TransactionRepository // atado al pool, solo lecturas
	ledger    Ledger
	publisher StockPublisher // opcional
}

// NewTransactionUseCase construye el coordinador. publisher puede ser nil.
func NewTransactionUseCase(txRunner TxRunner, repo repository.TransactionRepository, publisher StockPublisher) *TransactionUseCase {
	return &TransactionUseCase{txRunner: txRunner, repo: repo, publisher: publisher}
}

// Create registra una compra o venta y ajusta el stock del producto en la
// misma transacción de BD. Para ventas, el bloqueo de fila del producto hace
// que la verificación de stock y el descuento sean una unidad: de dos ventas
// concurrentes que excedan el stock, exactamente una falla con
// ErrInsufficientStock.
func (uc *TransactionUseCase) Create(ctx context.Context, kind string, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if !entity.ValidKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 1 || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Total != nil && in.Total.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	total := entity.DefaultTotal(in.Quantity, in.Price)
	if in.Total != nil {
		// Total explícito del caller: se conserva tal cual
		total = *in.Total
	}

	now := time.Now()
	rec := &entity.Transaction{
		ID:               uuid.New().String(),
		Kind:             kind,
		ProductID:        in.ProductID,
		CounterpartyID:   in.CounterpartyID,
		CounterpartyName: in.CounterpartyName,
		Quantity:         in.Quantity,
		Price:            in.Price,
		Total:            total,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if kind == entity.KindSale {
		rec.Reference = entity.NewBillNumber()
	}

	var stockAfter int64
	err := uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto: serializa verificación + ajuste por producto
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if kind == entity.KindSale && product.Stock < in.Quantity {
			return domain.ErrInsufficientStock
		}
		rec.ProductName = product.Name

		if err := txRepo.Create(rec); err != nil {
			return err
		}
		// Si el ajuste falla, el rollback elimina también el registro recién creado
		stockAfter, err = uc.ledger.Apply(productRepo, rec.ProductID, rec.StockEffect())
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.publishStock(rec.ProductID, stockAfter)
	return toTransactionResponse(rec, &stockAfter), nil
}

// Update modifica una transacción existente. Si cambia la cantidad, el delta
// aplicado al stock revierte exactamente el efecto anterior y aplica el
// nuevo: (nueva - vieja) con el signo del tipo. Si el nuevo stock sería
// negativo, falla con ErrInsufficientStock y no cambia ni el registro ni el
// stock.
func (uc *TransactionUseCase) Update(ctx context.Context, kind, id string, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.Quantity != nil && *in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.Price != nil && in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Total != nil && in.Total.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var rec *entity.Transaction
	var stockAfter *int64
	err := uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		productRepo repository.ProductRepository,
	) error {
		existing, err := txRepo.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil || existing.Kind != kind {
			return domain.ErrNotFound
		}

		newQty := existing.Quantity
		if in.Quantity != nil {
			newQty = *in.Quantity
		}
		newPrice := existing.Price
		if in.Price != nil {
			newPrice = *in.Price
		}

		changed := newQty != existing.Quantity || !newPrice.Equal(existing.Price)
		switch {
		case in.Total != nil:
			existing.Total = *in.Total
		case changed:
			existing.Total = entity.DefaultTotal(newQty, newPrice)
		}

		// Delta neto sobre el stock: revierte el efecto viejo y aplica el nuevo
		oldEffect := existing.StockEffect()
		existing.Quantity = newQty
		existing.Price = newPrice
		delta := existing.StockEffect() - oldEffect

		if delta != 0 {
			newStock, err := uc.ledger.Apply(productRepo, existing.ProductID, delta)
			if err != nil {
				return err
			}
			stockAfter = &newStock
		}

		if in.CounterpartyID != nil {
			existing.CounterpartyID = *in.CounterpartyID
		}
		if in.CounterpartyName != nil {
			existing.CounterpartyName = *in.CounterpartyName
		}
		existing.UpdatedAt = time.Now()
		if err := txRepo.Update(existing); err != nil {
			return err
		}
		rec = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	if stockAfter != nil {
		uc.publishStock(rec.ProductID, *stockAfter)
	}
	return toTransactionResponse(rec, stockAfter), nil
}

// Delete elimina una transacción aplicando primero el delta inverso sobre el
// stock (compra: -cantidad, venta: +cantidad). Eliminar una compra cuya
// reversión dejaría el stock negativo (porque ventas posteriores ya
// consumieron esas unidades) se rechaza con ErrInsufficientStock.
func (uc *TransactionUseCase) Delete(ctx context.Context, kind, id string) error {
	var productID string
	var stockAfter int64
	err := uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		productRepo repository.ProductRepository,
	) error {
		existing, err := txRepo.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil || existing.Kind != kind {
			return domain.ErrNotFound
		}
		productID = existing.ProductID

		stockAfter, err = uc.ledger.Apply(productRepo, existing.ProductID, -existing.StockEffect())
		if err != nil {
			return err
		}
		return txRepo.Delete(id)
	})
	if err != nil {
		return err
	}

	uc.publishStock(productID, stockAfter)
	return nil
}

// AdjustStock aplica una corrección administrativa directa sobre el stock.
func (uc *TransactionUseCase) AdjustStock(ctx context.Context, productID string, delta int64) (*dto.AdjustStockResponse, error) {
	if delta == 0 {
		return nil, domain.ErrInvalidInput
	}
	var stockAfter int64
	err := uc.txRunner.Run(ctx, func(
		_ repository.TransactionRepository,
		productRepo repository.ProductRepository,
	) error {
		var err error
		stockAfter, err = uc.ledger.Apply(productRepo, productID, delta)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.publishStock(productID, stockAfter)
	return &dto.AdjustStockResponse{ProductID: productID, Stock: stockAfter}, nil
}

// GetByID obtiene una transacción por id y tipo.
func (uc *TransactionUseCase) GetByID(ctx context.Context, kind, id string) (*dto.TransactionResponse, error) {
	rec, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.Kind != kind {
		return nil, domain.ErrNotFound
	}
	return toTransactionResponse(rec, nil), nil
}

// List lista transacciones de un tipo con búsqueda, rango de fechas y paginación.
func (uc *TransactionUseCase) List(ctx context.Context, kind string, in dto.ListTransactionsRequest) (*dto.TransactionListResponse, error) {
	in.DefaultPage()
	filter := repository.TransactionFilter{
		Kind:      kind,
		ProductID: in.ProductID,
		Search:    in.Search,
		Limit:     in.Limit,
		Offset:    in.Offset,
	}
	if in.StartDate != "" {
		start, err := time.Parse("2006-01-02", in.StartDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.StartDate = &start
	}
	if in.EndDate != "" {
		end, err := time.Parse("2006-01-02", in.EndDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		// Fin inclusivo: cubre el día completo
		end = end.Add(24 * time.Hour)
		filter.EndDate = &end
	}

	list, total, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, rec := range list {
		items = append(items, *toTransactionResponse(rec, nil))
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

func (uc *TransactionUseCase) publishStock(productID string, stock int64) {
	if uc.publisher != nil {
		uc.publisher.PublishStockChanged(productID, stock)
	}
}

func toTransactionResponse(t *entity.Transaction, stockAfter *int64) *dto.TransactionResponse {
	if t == nil {
		return nil
	}
	return &dto.TransactionResponse{
		ID:               t.ID,
		Kind:             t.Kind,
		ProductID:        t.ProductID,
		ProductName:      t.ProductName,
		CounterpartyID:   t.CounterpartyID,
		CounterpartyName: t.CounterpartyName,
		Reference:        t.Reference,
		Quantity:         t.Quantity,
		Price:            t.Price,
		Total:            t.Total,
		StockAfter:       stockAfter,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}
