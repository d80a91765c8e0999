package orders

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

// CreateOrder inserts the order header and returns the new id. The items
// write is a separate, dependent call: callers must only attempt it after
// this one succeeds.
func (r *Repo) CreateOrder(ctx context.Context, reference, email string, totalAmount int) (string, error) {
	id := uuid.NewString()
	_, err := r.DB.Exec(ctx, `
		INSERT INTO orders(id, reference, customer_email, total_amount)
		VALUES ($1, $2, $3, $4)
	`, id, reference, email, totalAmount)
	if err != nil {
		return "", fmt.Errorf("insert order %s: %w", reference, err)
	}
	return id, nil
}

// InsertItems records the line items for an already-created order. There is
// no transaction spanning the header and the items; a failure here leaves
// the header row in place for manual review.
func (r *Repo) InsertItems(ctx context.Context, orderID string, items []ItemInput) error {
	for _, it := range items {
		_, err := r.DB.Exec(ctx, `
			INSERT INTO order_items(order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)
		`, orderID, it.ProductID, it.Quantity, it.Price)
		if err != nil {
			return fmt.Errorf("insert item %s for order %s: %w", it.ProductID, orderID, err)
		}
	}
	return nil
}

// ListByEmail returns all orders for the email, newest first, each with its
// items and the associated product name/image.
func (r *Repo) ListByEmail(ctx context.Context, email string) ([]Order, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, reference, customer_email, total_amount, created_at
		FROM orders
		WHERE customer_email = $1
		ORDER BY created_at DESC
	`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	ids := make([]string, 0, 8)
	byID := map[string]int{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.Reference, &o.CustomerEmail, &o.TotalAmount, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Items = []Item{}
		byID[o.ID] = len(out)
		ids = append(ids, o.ID)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	itemRows, err := r.DB.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price,
		       COALESCE(p.name, ''), COALESCE(p.image_url, '')
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.id
	`, ids)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var it Item
		if err := itemRows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price,
			&it.Product.Name, &it.Product.ImageURL); err != nil {
			return nil, err
		}
		if i, ok := byID[it.OrderID]; ok {
			out[i].Items = append(out[i].Items, it)
		}
	}
	return out, itemRows.Err()
}
