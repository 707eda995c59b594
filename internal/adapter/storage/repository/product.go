package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jvillalobos/ventasapi/internal/core/domain"
)

func (r *Repository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	statement := r.db.QueryBuilder.Insert("productos").
		Columns("nombre", "descripcion", "precio", "existencia").
		Values(product.Name, product.Description, product.Price, product.Stock).
		Suffix("RETURNING producto_id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&product.ID)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *Repository) ReadProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select("producto_id", "nombre", "descripcion", "precio", "existencia").
		From("productos").
		Where(sq.Eq{"producto_id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	product := domain.Product{}

	err = r.db.Querier(ctx).QueryRow(ctx, sql, args...).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &product, nil
}

func (r *Repository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select("producto_id", "nombre", "descripcion", "precio", "existencia").
		From("productos").
		OrderBy("producto_id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Querier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Product, 0)
	for rows.Next() {
		product := domain.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Stock,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &product)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	statement := r.db.QueryBuilder.Update("productos").
		Set("nombre", product.Name).
		Set("descripcion", product.Description).
		Set("precio", product.Price).
		Set("existencia", product.Stock).
		Where(sq.Eq{"producto_id": product.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}
	return product, nil
}

// DecrementProductStock is the conditional decrement: it takes units off
// the stock only when enough remain, in one statement, so concurrent
// orders for the same product cannot drive existencia negative.
func (r *Repository) DecrementProductStock(ctx context.Context, productID int64, units int64) error {
	statement := r.db.QueryBuilder.Update("productos").
		Set("existencia", sq.Expr("existencia - ?", units)).
		Where(sq.Eq{"producto_id": productID}).
		Where(sq.Expr("existencia >= ?", units))

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// either the product is gone or the stock ran out
		if _, err := r.ReadProduct(ctx, productID); err != nil {
			return err
		}
		return domain.ErrInsufficientStock
	}
	return nil
}
