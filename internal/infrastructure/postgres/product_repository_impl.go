package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rizkyamp/go-store-api/internal/domain/entity"
	"github.com/rizkyamp/go-store-api/internal/domain/repository"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `id, name, description, price, created_at, updated_at`

func (r *ProductRepository) Create(p *entity.Product) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (name, description, price)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, p.Name, p.Description, p.Price)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	return r.getBy(`id = $1`, id)
}

func (r *ProductRepository) GetByName(name string) (*entity.Product, error) {
	return r.getBy(`name = $1`, name)
}

func (r *ProductRepository) getBy(cond string, arg any) (*entity.Product, error) {
	ctx := context.Background()
	p := &entity.Product{}

	row := r.pool.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE `+cond+`
	`, arg)

	if err := scanProduct(row, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *ProductRepository) Find(q repository.ProductQuery) ([]entity.Product, error) {
	ctx := context.Background()

	where, args := filterClause(q)
	sql := `SELECT ` + productColumns + ` FROM products` + where + orderClause(q.SortField, q.SortDirection)
	if q.Limit > 0 {
		args = append(args, q.Limit)
		sql += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if q.Offset > 0 {
		args = append(args, q.Offset)
		sql += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Count(q repository.ProductQuery) (int64, error) {
	ctx := context.Background()

	where, args := filterClause(q)
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM products`+where, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ProductRepository) Update(id string, upd repository.ProductUpdate) (*entity.Product, error) {
	ctx := context.Background()

	sets := []string{"name = $1", "price = $2", "updated_at = $3"}
	args := []any{upd.Name, upd.Price, time.Now()}
	if upd.Description != nil {
		args = append(args, *upd.Description)
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}
	args = append(args, id)

	p := &entity.Product{}
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE products
		SET %s
		WHERE id = $%d
		RETURNING `+productColumns,
		strings.Join(sets, ", "), len(args)), args...)

	if err := scanProduct(row, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *ProductRepository) Delete(id string) error {
	ctx := context.Background()

	res, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row, p *entity.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CreatedAt, &p.UpdatedAt)
}

// filterClause builds the WHERE fragment for a product query. The price
// filter compares the text rendering of the stored value, matching the
// prefix-of-decimal-string contract rather than numeric equality.
func filterClause(q repository.ProductQuery) (string, []any) {
	var conds []string
	var args []any
	if q.NameContains != "" {
		args = append(args, "%"+q.NameContains+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if q.PricePrefix != "" {
		args = append(args, q.PricePrefix+"%")
		conds = append(conds, fmt.Sprintf("price::text LIKE $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// sortColumns whitelists sortable fields; both the API spelling and the
// column spelling are accepted.
var sortColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"createdAt":  "created_at",
	"created_at": "created_at",
	"updatedAt":  "updated_at",
	"updated_at": "updated_at",
}

// orderClause returns the ORDER BY fragment. An unknown field or a
// direction other than asc/desc keeps the natural store order.
func orderClause(field, direction string) string {
	col, ok := sortColumns[field]
	if !ok {
		return ""
	}
	switch direction {
	case "asc":
		return " ORDER BY " + col + " ASC"
	case "desc":
		return " ORDER BY " + col + " DESC"
	}
	return ""
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
