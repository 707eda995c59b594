package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jvillalobos/ventasapi/internal/core/domain"
)

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := r.db.QueryBuilder.Insert("ordenes").
		Columns("cliente_id", "subtotal", "impuesto", "total", "fecha_creacion").
		Values(order.ClientID, order.Subtotal, order.Tax, order.Total, order.CreatedAt).
		Suffix("RETURNING orden_id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&order.ID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("orden_id", "cliente_id", "subtotal", "impuesto", "total", "fecha_creacion").
		From("ordenes").
		Where(sq.Eq{"orden_id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}

	err = r.db.Querier(ctx).QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.ClientID,
		&order.Subtotal,
		&order.Tax,
		&order.Total,
		&order.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &order, nil
}

func (r *Repository) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := r.db.QueryBuilder.Update("ordenes").
		Set("subtotal", order.Subtotal).
		Set("impuesto", order.Tax).
		Set("total", order.Total).
		Where(sq.Eq{"orden_id": order.ID})

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
	return order, nil
}

func (r *Repository) CreateOrderLine(ctx context.Context, line *domain.OrderLine) (*domain.OrderLine, error) {
	statement := r.db.QueryBuilder.Insert("detalle_ordenes").
		Columns("orden_id", "producto_id", "cantidad", "subtotal", "impuesto", "total").
		Values(line.OrderID, line.ProductID, line.Quantity, line.Subtotal, line.Tax, line.Total).
		Suffix("RETURNING detalle_orden_id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&line.ID)
	if err != nil {
		return nil, err
	}
	return line, nil
}

func (r *Repository) ReadOrderLine(ctx context.Context, lineID int64) (*domain.OrderLine, error) {
	statement := r.db.QueryBuilder.
		Select("detalle_orden_id", "orden_id", "producto_id", "cantidad", "subtotal", "impuesto", "total").
		From("detalle_ordenes").
		Where(sq.Eq{"detalle_orden_id": lineID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	line := domain.OrderLine{}

	err = r.db.Querier(ctx).QueryRow(ctx, sql, args...).Scan(
		&line.ID,
		&line.OrderID,
		&line.ProductID,
		&line.Quantity,
		&line.Subtotal,
		&line.Tax,
		&line.Total,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &line, nil
}

func (r *Repository) ListOrderLines(ctx context.Context) ([]*domain.OrderLine, error) {
	statement := r.db.QueryBuilder.
		Select("detalle_orden_id", "orden_id", "producto_id", "cantidad", "subtotal", "impuesto", "total").
		From("detalle_ordenes").
		OrderBy("detalle_orden_id")

	return r.scanOrderLines(ctx, statement)
}

func (r *Repository) ListOrderLinesByOrder(ctx context.Context, orderID int64) ([]*domain.OrderLine, error) {
	statement := r.db.QueryBuilder.
		Select("detalle_orden_id", "orden_id", "producto_id", "cantidad", "subtotal", "impuesto", "total").
		From("detalle_ordenes").
		Where(sq.Eq{"orden_id": orderID}).
		OrderBy("detalle_orden_id")

	return r.scanOrderLines(ctx, statement)
}

func (r *Repository) scanOrderLines(ctx context.Context, statement sq.SelectBuilder) ([]*domain.OrderLine, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Querier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.OrderLine, 0)
	for rows.Next() {
		line := domain.OrderLine{}
		err := rows.Scan(
			&line.ID,
			&line.OrderID,
			&line.ProductID,
			&line.Quantity,
			&line.Subtotal,
			&line.Tax,
			&line.Total,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &line)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) UpdateOrderLine(ctx context.Context, line *domain.OrderLine) (*domain.OrderLine, error) {
	statement := r.db.QueryBuilder.Update("detalle_ordenes").
		Set("cantidad", line.Quantity).
		Set("subtotal", line.Subtotal).
		Set("impuesto", line.Tax).
		Set("total", line.Total).
		Where(sq.Eq{"detalle_orden_id": line.ID})

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
	return line, nil
}

func (r *Repository) DeleteOrderLine(ctx context.Context, lineID int64) error {
	statement := r.db.QueryBuilder.Delete("detalle_ordenes").
		Where(sq.Eq{"detalle_orden_id": lineID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}
