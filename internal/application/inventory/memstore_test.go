package inventory_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jfcardenas/inventra/internal/domain/entity"
	"github.com/jfcardenas/inventra/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// memStore emula el comportamiento transaccional de Postgres que el coordinador
// necesita: memTxRunner toma el mutex global durante todo el callback (el
// equivalente al FOR UPDATE que serializa por fila) y, si el callback falla,
// restaura el snapshot tomado al inicio (el equivalente al rollback).
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	txs      map[string]*entity.Transaction
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[string]*entity.Product),
		txs:      make(map[string]*entity.Transaction),
	}
}

func (s *memStore) snapshot() (map[string]*entity.Product, map[string]*entity.Transaction) {
	products := make(map[string]*entity.Product, len(s.products))
	for id, p := range s.products {
		cp := *p
		products[id] = &cp
	}
	txs := make(map[string]*entity.Transaction, len(s.txs))
	for id, t := range s.txs {
		cp := *t
		txs[id] = &cp
	}
	return products, txs
}

// ── repos ─────────────────────────────────────────────────────────────────────

type memProductRepo struct{ s *memStore }

var _ repository.ProductRepository = (*memProductRepo)(nil)

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// GetForUpdate no bloquea nada aquí: el mutex del memTxRunner ya serializa
// transacciones completas, que es una garantía más fuerte.
func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) Update(p *entity.Product) error {
	existing, ok := r.s.products[p.ID]
	if !ok {
		return nil
	}
	stock := existing.Stock
	cp := *p
	cp.Stock = stock // Update nunca toca stock
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) UpdateStock(productID string, stock int64) error {
	if p, ok := r.s.products[productID]; ok {
		p.Stock = stock
	}
	return nil
}

func (r *memProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (r *memProductRepo) ListLowStock(threshold int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.Stock <= threshold {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.s.products, id)
	return nil
}

type memTransactionRepo struct{ s *memStore }

var _ repository.TransactionRepository = (*memTransactionRepo)(nil)

func (r *memTransactionRepo) Create(t *entity.Transaction) error {
	cp := *t
	r.s.txs[t.ID] = &cp
	return nil
}

func (r *memTransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	t, ok := r.s.txs[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *memTransactionRepo) Update(t *entity.Transaction) error {
	cp := *t
	r.s.txs[t.ID] = &cp
	return nil
}

func (r *memTransactionRepo) Delete(id string) error {
	delete(r.s.txs, id)
	return nil
}

func (r *memTransactionRepo) List(filter repository.TransactionFilter) ([]*entity.Transaction, int64, error) {
	var all []*entity.Transaction
	for _, t := range r.s.txs {
		if filter.Kind != "" && t.Kind != filter.Kind {
			continue
		}
		if filter.ProductID != "" && t.ProductID != filter.ProductID {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(t.ProductName), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(t.CounterpartyName), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.StartDate != nil && t.CreatedAt.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && !t.CreatedAt.Before(*filter.EndDate) {
			continue
		}
		cp := *t
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := int64(len(all))
	if filter.Offset > 0 {
		if filter.Offset >= len(all) {
			all = nil
		} else {
			all = all[filter.Offset:]
		}
	}
	if filter.Limit > 0 && filter.Limit < len(all) {
		all = all[:filter.Limit]
	}
	return all, total, nil
}

// ── tx runner ─────────────────────────────────────────────────────────────────

// memTxRunner ejecuta el callback bajo el mutex global del store con
// semántica de rollback sobre snapshot.
type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(ctx context.Context, fn func(
	txRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	products, txs := r.s.snapshot()
	err := fn(&memTransactionRepo{s: r.s}, &memProductRepo{s: r.s})
	if err != nil {
		r.s.products = products
		r.s.txs = txs
	}
	return err
}

// ── publisher ─────────────────────────────────────────────────────────────────

type stockEvent struct {
	ProductID string
	Stock     int64
}

type memPublisher struct {
	mu     sync.Mutex
	events []stockEvent
}

func (p *memPublisher) PublishStockChanged(productID string, stock int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, stockEvent{ProductID: productID, Stock: stock})
}

func (p *memPublisher) last() (stockEvent, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.events) == 0 {
		return stockEvent{}, false
	}
	return p.events[len(p.events)-1], true
}
