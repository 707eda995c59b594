package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jvillalobos/ventasapi/internal/core/domain"
)

func (r *Repository) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	statement := r.db.QueryBuilder.Insert("clientes").
		Columns("nombre", "identidad").
		Values(client.Name, client.Identity).
		Suffix("RETURNING cliente_id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&client.ID)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return client, nil
}

func (r *Repository) ReadClient(ctx context.Context, clientID int64) (*domain.Client, error) {
	statement := r.db.QueryBuilder.
		Select("cliente_id", "nombre", "identidad").
		From("clientes").
		Where(sq.Eq{"cliente_id": clientID})

	return r.scanClient(ctx, statement)
}

func (r *Repository) ReadClientByIdentity(ctx context.Context, identity string) (*domain.Client, error) {
	statement := r.db.QueryBuilder.
		Select("cliente_id", "nombre", "identidad").
		From("clientes").
		Where(sq.Eq{"identidad": identity})

	return r.scanClient(ctx, statement)
}

func (r *Repository) scanClient(ctx context.Context, statement sq.SelectBuilder) (*domain.Client, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	client := domain.Client{}

	err = r.db.Querier(ctx).QueryRow(ctx, sql, args...).Scan(
		&client.ID,
		&client.Name,
		&client.Identity,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &client, nil
}

func (r *Repository) ListClients(ctx context.Context) ([]*domain.Client, error) {
	statement := r.db.QueryBuilder.
		Select("cliente_id", "nombre", "identidad").
		From("clientes").
		OrderBy("cliente_id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Querier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Client, 0)
	for rows.Next() {
		client := domain.Client{}
		err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.Identity,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &client)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) UpdateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	statement := r.db.QueryBuilder.Update("clientes").
		Set("nombre", client.Name).
		Set("identidad", client.Identity).
		Where(sq.Eq{"cliente_id": client.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}
	return client, nil
}
