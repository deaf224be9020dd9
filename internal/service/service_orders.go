package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/internal/store"
	"github.com/MKhiriev/go-table-order/models"
)

type orderService struct {
	store store.StateStore

	logger *logger.Logger
}

// NewOrderService constructs the read side of the order history.
func NewOrderService(stateStore store.StateStore, logger *logger.Logger) OrderService {
	return &orderService{store: stateStore, logger: logger}
}

func (s *orderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading orders: %w", err)
	}
	return snap.Orders, nil
}

func (s *orderService) Summary(ctx context.Context) ([]models.ItemSummary, error) {
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return Summarize(orders), nil
}

// Summarize groups order items by name. Each entry carries the total
// quantity and the distinct tables that ordered the item. Entries are sorted
// by name and tables ascending.
func Summarize(orders []models.Order) []models.ItemSummary {
	type acc struct {
		qty    int
		tables map[models.TableID]struct{}
	}
	byName := make(map[string]*acc)

	for _, order := range orders {
		for _, item := range order.Items {
			a, ok := byName[item.Name]
			if !ok {
				a = &acc{tables: make(map[models.TableID]struct{})}
				byName[item.Name] = a
			}
			a.qty += item.Qty
			a.tables[order.TableID] = struct{}{}
		}
	}

	summary := make([]models.ItemSummary, 0, len(byName))
	for name, a := range byName {
		tables := make([]models.TableID, 0, len(a.tables))
		for id := range a.tables {
			tables = append(tables, id)
		}
		slices.Sort(tables)
		summary = append(summary, models.ItemSummary{ItemName: name, TotalQty: a.qty, Tables: tables})
	}
	slices.SortFunc(summary, func(a, b models.ItemSummary) int {
		return cmp.Compare(a.ItemName, b.ItemName)
	})

	return summary
}
