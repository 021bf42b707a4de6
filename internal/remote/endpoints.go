// Per-kind endpoint bindings. Reads append only the recognized, non-empty
// query options. Bulk rewrites go to dedicated /bulk endpoints where the
// service has them; products and sales are translated into per-item
// create/update calls instead.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/despensa-labs/almacen/pkg/types"
)

func (c *Client) GetExpenses(ctx context.Context, opts types.QueryOptions) ([]types.Record, error) {
	q := url.Values{}
	setParam(q, "from", opts.From)
	setParam(q, "to", opts.To)
	setParam(q, "category", opts.Category)
	setIntParam(q, "limit", opts.Limit)
	env, err := c.get(ctx, "/api/expenses", q)
	if err != nil {
		return nil, err
	}
	return env.collection(), nil
}

func (c *Client) SaveExpenses(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return c.bulkReplace(ctx, "/api/expenses/bulk", items)
}

func (c *Client) GetExpenseCategories(ctx context.Context, opts types.QueryOptions) ([]types.Record, error) {
	q := url.Values{}
	setIntParam(q, "limit", opts.Limit)
	env, err := c.get(ctx, "/api/expense-categories", q)
	if err != nil {
		return nil, err
	}
	return env.collection(), nil
}

func (c *Client) SaveExpenseCategories(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return c.bulkReplace(ctx, "/api/expense-categories/bulk", items)
}

func (c *Client) GetSuppliers(ctx context.Context, opts types.QueryOptions) ([]types.Record, error) {
	q := url.Values{}
	setIntParam(q, "limit", opts.Limit)
	env, err := c.get(ctx, "/api/suppliers", q)
	if err != nil {
		return nil, err
	}
	return env.collection(), nil
}

func (c *Client) SaveSuppliers(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return c.bulkReplace(ctx, "/api/suppliers/bulk", items)
}

func (c *Client) GetCustomers(ctx context.Context, opts types.QueryOptions) ([]types.Record, error) {
	q := url.Values{}
	setParam(q, "q", opts.Query)
	setIntParam(q, "limit", opts.Limit)
	setIntParam(q, "offset", opts.Offset)
	env, err := c.get(ctx, "/api/customers", q)
	if err != nil {
		return nil, err
	}
	return env.collection(), nil
}

func (c *Client) SaveCustomers(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return c.bulkReplace(ctx, "/api/customers/bulk", items)
}

func (c *Client) GetEmployees(ctx context.Context, opts types.QueryOptions) ([]types.Record, error) {
	q := url.Values{}
	setIntParam(q, "limit", opts.Limit)
	env, err := c.get(ctx, "/api/employees", q)
	if err != nil {
		return nil, err
	}
	return env.collection(), nil
}

func (c *Client) SaveEmployees(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return c.bulkReplace(ctx, "/api/employees/bulk", items)
}

func (c *Client) GetInventoryProducts(ctx context.Context, opts types.QueryOptions) ([]types.Record, error) {
	q := url.Values{}
	setIntParam(q, "limit", opts.Limit)
	if opts.Active != nil {
		if *opts.Active {
			q.Set("active", "1")
		} else {
			q.Set("active", "0")
		}
	}
	env, err := c.get(ctx, "/api/products", q)
	if err != nil {
		return nil, err
	}
	return env.collection(), nil
}

// SaveInventoryProducts has no bulk endpoint: each item becomes an update
// when it already carries a non-empty id, otherwise a create. A failed
// item's position echoes the original input item and the loop continues;
// only context cancellation aborts the batch.
func (c *Client) SaveInventoryProducts(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return c.savePerItem(ctx, items, "product", func(ctx context.Context, item types.Record) (types.Record, error) {
		if id := item.ID(); id != "" {
			return c.saveOne(ctx, http.MethodPut, "/api/products/"+url.PathEscape(id), item)
		}
		return c.saveOne(ctx, http.MethodPost, "/api/products", item)
	})
}

func (c *Client) GetInventoryLots(ctx context.Context, opts types.QueryOptions) ([]types.Record, error) {
	q := url.Values{}
	setIntParam(q, "limit", opts.Limit)
	setParam(q, "product_id", opts.ProductID)
	env, err := c.get(ctx, "/api/lots", q)
	if err != nil {
		return nil, err
	}
	return env.collection(), nil
}

// SaveInventoryLots is a permanent no-op: the service has no bulk rewrite
// for lots (they are only appended to through lot creation). The input is
// echoed unchanged and no request is issued.
func (c *Client) SaveInventoryLots(_ context.Context, items []types.Record) ([]types.Record, error) {
	if items == nil {
		items = []types.Record{}
	}
	return items, nil
}

func (c *Client) GetInventoryMovements(ctx context.Context, opts types.QueryOptions) ([]types.Record, error) {
	q := url.Values{}
	setParam(q, "from", opts.From)
	setParam(q, "to", opts.To)
	setParam(q, "product_id", opts.ProductID)
	setIntParam(q, "limit", opts.Limit)
	env, err := c.get(ctx, "/api/movements", q)
	if err != nil {
		return nil, err
	}
	return env.collection(), nil
}

// SaveInventoryMovements is a permanent no-op, like SaveInventoryLots.
func (c *Client) SaveInventoryMovements(_ context.Context, items []types.Record) ([]types.Record, error) {
	if items == nil {
		items = []types.Record{}
	}
	return items, nil
}

func (c *Client) GetSales(ctx context.Context, opts types.QueryOptions) ([]types.Record, error) {
	q := url.Values{}
	setParam(q, "from", opts.From)
	setParam(q, "to", opts.To)
	if opts.IncludeReplaced {
		q.Set("include_replaced", "1")
	}
	if opts.ExcludeCC {
		q.Set("exclude_cc", "1")
	}
	setIntParam(q, "limit", opts.Limit)
	env, err := c.get(ctx, "/api/sales", q)
	if err != nil {
		return nil, err
	}
	return env.collection(), nil
}

// SaveSales mirrors SaveInventoryProducts but keys on the sale ticket.
func (c *Client) SaveSales(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return c.savePerItem(ctx, items, "sale", func(ctx context.Context, item types.Record) (types.Record, error) {
		if ticket := item.Ticket(); ticket != "" {
			return c.saveOne(ctx, http.MethodPut, "/api/sales/"+url.PathEscape(ticket), item)
		}
		return c.saveOne(ctx, http.MethodPost, "/api/sales", item)
	})
}

func (c *Client) GetCashCounts(ctx context.Context, opts types.QueryOptions) ([]types.Record, error) {
	q := url.Values{}
	setParam(q, "from", opts.From)
	setParam(q, "to", opts.To)
	env, err := c.get(ctx, "/api/cash-counts", q)
	if err != nil {
		return nil, err
	}
	return env.collection(), nil
}

func (c *Client) GetOverdueCustomersCount(ctx context.Context, days int) (int, error) {
	q := url.Values{}
	setIntParam(q, "days", days)
	env, err := c.get(ctx, "/api/customers/overdue-count", q)
	if err != nil {
		return 0, err
	}
	if env.Count == nil {
		return 0, nil
	}
	return *env.Count, nil
}

// saveOne issues a single create/update call and returns the server's echo
// of the item, falling back to the input when the body carries none.
func (c *Client) saveOne(ctx context.Context, method, path string, item types.Record) (types.Record, error) {
	env, err := c.do(ctx, method, path, nil, item)
	if err != nil {
		return nil, err
	}
	if env.Item != nil {
		return env.Item, nil
	}
	return item, nil
}

// savePerItem runs the per-item bulk translation. Item failures are
// recorded, the original input item keeps its position in the output, and
// the remaining items still go out. When partial-failure reporting is on,
// the joined errors are returned alongside the completed output.
func (c *Client) savePerItem(
	ctx context.Context,
	items []types.Record,
	label string,
	save func(context.Context, types.Record) (types.Record, error),
) ([]types.Record, error) {
	out := make([]types.Record, len(items))
	var failures []error
	for i, item := range items {
		saved, err := save(ctx, item)
		if err != nil {
			if ctx.Err() != nil {
				return out, ctx.Err()
			}
			out[i] = item
			failures = append(failures, fmt.Errorf("%s %d (%s): %w", label, i, types.IDString(item[keyOf(label)]), err))
			continue
		}
		out[i] = saved
	}
	if c.reportPartial && len(failures) > 0 {
		return out, errors.Join(failures...)
	}
	return out, nil
}

// keyOf returns the identifier field for a per-item loop label.
func keyOf(label string) string {
	if label == "sale" {
		return "ticket"
	}
	return "id"
}
