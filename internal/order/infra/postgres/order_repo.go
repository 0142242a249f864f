package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	catalogdomain "github.com/dwikikusuma/gamecock-shop/internal/catalog/domain"
	"github.com/dwikikusuma/gamecock-shop/internal/order/app"
	"github.com/dwikikusuma/gamecock-shop/internal/order/domain"
)

type OrderRepo struct {
	db *pgxpool.Pool
}

func NewOrderRepo(db *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) execTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// CreateOrderTx inserts the order row, then walks the items in the
// given order: each step decrements stock with a guarded update and
// inserts the order item. Any miss aborts the transaction, which also
// reverts stock already decremented for earlier items in this call.
func (r *OrderRepo) CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error) {
	customerID, err := uuid.Parse(order.CustomerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("invalid customer id: %w", err)
	}

	var created domain.Order

	err = r.execTx(ctx, func(tx pgx.Tx) error {
		var orderID uuid.UUID
		err := tx.QueryRow(ctx,
			`INSERT INTO orders (customer_id, total_price)
			 VALUES ($1, $2)
			 RETURNING id, created_at`,
			customerID, order.TotalPrice,
		).Scan(&orderID, &created.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		created.ID = orderID.String()
		created.CustomerID = order.CustomerID
		created.TotalPrice = order.TotalPrice

		for i, item := range order.Items {
			productID, err := uuid.Parse(item.ProductID)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, catalogdomain.ErrProductNotFound)
			}

			if err := decrementStock(ctx, tx, productID, item); err != nil {
				return err
			}

			var itemID uuid.UUID
			err = tx.QueryRow(ctx,
				`INSERT INTO order_items (order_id, product_id, name, unit_price, quantity, subtotal)
				 VALUES ($1, $2, $3, $4, $5, $6)
				 RETURNING id`,
				orderID, productID, item.Name, item.UnitPrice, item.Quantity, item.Subtotal,
			).Scan(&itemID)
			if err != nil {
				return fmt.Errorf("failed to insert item %d: %w", i, err)
			}

			item.ID = itemID.String()
			item.OrderID = created.ID
			created.Items = append(created.Items, item)
		}

		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return created, nil
}

func decrementStock(ctx context.Context, tx pgx.Tx, productID uuid.UUID, item domain.Item) error {
	var remaining int32
	err := tx.QueryRow(ctx,
		`UPDATE products
		 SET stock = stock - $1, updated_at = NOW()
		 WHERE id = $2 AND NOT archived AND stock >= $1
		 RETURNING stock`,
		item.Quantity, productID,
	).Scan(&remaining)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to decrement stock for %s: %w", productID, err)
	}

	var (
		name      string
		available int32
		archived  bool
	)
	err = tx.QueryRow(ctx,
		`SELECT name, stock, archived FROM products WHERE id = $1`, productID,
	).Scan(&name, &available, &archived)
	if errors.Is(err, pgx.ErrNoRows) {
		return catalogdomain.ErrProductNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to inspect stock for %s: %w", productID, err)
	}
	if archived {
		return catalogdomain.ErrProductNotFound
	}
	return &catalogdomain.InsufficientStockError{
		ProductID: productID.String(),
		Name:      name,
		Available: available,
		Requested: item.Quantity,
	}
}

func (r *OrderRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return domain.Order{}, app.ErrOrderNotFound
	}

	var order domain.Order
	var oid, customerID uuid.UUID
	err = r.db.QueryRow(ctx,
		`SELECT id, customer_id, total_price, created_at FROM orders WHERE id = $1`,
		orderID,
	).Scan(&oid, &customerID, &order.TotalPrice, &order.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, app.ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to get order %s: %w", id, err)
	}
	order.ID = oid.String()
	order.CustomerID = customerID.String()

	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, name, unit_price, quantity, subtotal
		 FROM order_items WHERE order_id = $1 ORDER BY id`,
		orderID,
	)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to list items for order %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.Item
		var itemID, productID uuid.UUID
		if err := rows.Scan(&itemID, &productID, &item.Name, &item.UnitPrice, &item.Quantity, &item.Subtotal); err != nil {
			return domain.Order{}, fmt.Errorf("failed to scan order item: %w", err)
		}
		item.ID = itemID.String()
		item.OrderID = order.ID
		item.ProductID = productID.String()
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return order, nil
}

func (r *OrderRepo) ListWithCustomer(ctx context.Context) ([]domain.Summary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT o.id, o.customer_id, u.username, o.total_price, o.created_at
		 FROM orders o
		 JOIN users u ON u.id = o.customer_id
		 ORDER BY o.created_at DESC, o.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var summaries []domain.Summary
	for rows.Next() {
		var s domain.Summary
		var orderID, customerID uuid.UUID
		if err := rows.Scan(&orderID, &customerID, &s.CustomerName, &s.TotalPrice, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order summary: %w", err)
		}
		s.ID = orderID.String()
		s.CustomerID = customerID.String()
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}
	return summaries, nil
}

// Delete removes the order and, via cascade, its items. Stock is not
// re-credited; this is an administrative removal, not a cancellation
// flow.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return app.ErrOrderNotFound
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return app.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return n, nil
}
