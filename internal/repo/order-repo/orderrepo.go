package orderrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mariamstore/backend/internal/domain"
	"github.com/mariamstore/backend/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	orderQuery := `
        INSERT INTO orders (folio, user_id, branch_id, status, total, notes)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	itemQuery := `
        INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price, subtotal)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, orderQuery,
			order.Folio, order.UserID, order.BranchID, order.Status, order.Total, order.Notes)
		if err := row.Scan(&order.ID, &order.CreatedAt); err != nil {
			zap.L().Error("can't save order", zap.Error(err))
			return err
		}
		for i := range order.Items {
			item := &order.Items[i]
			item.OrderID = order.ID
			row := r.db.QueryRow(ctx, itemQuery,
				order.ID, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice, item.Subtotal)
			if err := row.Scan(&item.ID); err != nil {
				zap.L().Error("can't save order item", zap.Error(err))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT id, folio, user_id, branch_id, status, total, notes, created_at, confirmed_at, ready_at
        FROM orders
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var order domain.Order
	err := row.Scan(&order.ID, &order.Folio, &order.UserID, &order.BranchID, &order.Status,
		&order.Total, &order.Notes, &order.CreatedAt, &order.ConfirmedAt, &order.ReadyAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}

	items, err := r.findItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *Repository) findItems(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	query := `
        SELECT id, order_id, product_id, product_name, quantity, unit_price, is_available, confirmed_quantity, subtotal
        FROM order_items
        WHERE order_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get order items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.IsAvailable, &item.ConfirmedQuantity, &item.Subtotal)
		if err != nil {
			zap.L().Error("can't scan order item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// FindAll returns orders newest first. userID 0 means all users; status ""
// means any status.
func (r *Repository) FindAll(ctx context.Context, userID int, status string) ([]domain.Order, error) {
	query := `
        SELECT id, folio, user_id, branch_id, status, total, notes, created_at, confirmed_at, ready_at
        FROM orders
        WHERE ($1 = 0 OR user_id = $1) AND ($2 = '' OR status = $2)
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID, status)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(&order.ID, &order.Folio, &order.UserID, &order.BranchID, &order.Status,
			&order.Total, &order.Notes, &order.CreatedAt, &order.ConfirmedAt, &order.ReadyAt)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	for i := range orders {
		items, err := r.findItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *Repository) Update(ctx context.Context, order *domain.Order) error {
	query := `
        UPDATE orders
        SET status = $1, total = $2, confirmed_at = $3, ready_at = $4
        WHERE id = $5
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, order.Status, order.Total, order.ConfirmedAt, order.ReadyAt, order.ID)
		if err != nil {
			zap.L().Error("failed to update order", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// ApplyReview writes the reviewed items, the recomputed total and the new
// status in a single transaction. Either everything lands or nothing does.
func (r *Repository) ApplyReview(ctx context.Context, order *domain.Order) error {
	itemQuery := `
        UPDATE order_items
        SET is_available = $1, confirmed_quantity = $2, subtotal = $3
        WHERE id = $4 AND order_id = $5
    `
	orderQuery := `
        UPDATE orders
        SET status = $1, total = $2
        WHERE id = $3
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, item := range order.Items {
			_, err := r.db.Exec(ctx, itemQuery,
				item.IsAvailable, item.ConfirmedQuantity, item.Subtotal, item.ID, order.ID)
			if err != nil {
				zap.L().Error("failed to update order item review", zap.Error(err))
				return err
			}
		}
		_, err := r.db.Exec(ctx, orderQuery, order.Status, order.Total, order.ID)
		if err != nil {
			zap.L().Error("failed to update order after review", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
