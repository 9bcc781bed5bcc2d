package order

import (
	"context"
	"errors"
	"fmt"

	"bookshop/internal/entities"
	"bookshop/internal/service/order"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, book_isbn, book_name, book_price, quantity, status, created_at, last_modified_at, version`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create сохраняет заказ с version = 0, id назначает БД.
func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderModel := FromDomain(&orderEntity)
	query := `INSERT INTO orders (book_isbn, book_name, book_price, quantity, status, created_at, last_modified_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0)
		RETURNING ` + orderColumns

	var created OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModel.BookISBN,
		orderModel.BookName,
		orderModel.BookPrice,
		orderModel.Quantity,
		orderModel.Status,
		orderModel.CreatedAt,
		orderModel.LastModifiedAt,
	).Scan(
		&created.ID,
		&created.BookISBN,
		&created.BookName,
		&created.BookPrice,
		&created.Quantity,
		&created.Status,
		&created.CreatedAt,
		&created.LastModifiedAt,
		&created.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&orderModel.ID,
			&orderModel.BookISBN,
			&orderModel.BookName,
			&orderModel.BookPrice,
			&orderModel.Quantity,
			&orderModel.Status,
			&orderModel.CreatedAt,
			&orderModel.LastModifiedAt,
			&orderModel.Version,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Order, error) {
	query := `
	SELECT ` + orderColumns + `
	FROM orders
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.BookISBN,
			&orderModel.BookName,
			&orderModel.BookPrice,
			&orderModel.Quantity,
			&orderModel.Status,
			&orderModel.CreatedAt,
			&orderModel.LastModifiedAt,
			&orderModel.Version,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

// Update пишет новый статус с optimistic-concurrency проверкой:
// строка обновляется только при совпадении version, version растет на 1.
func (r *Repository) Update(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderModel := FromDomain(&orderEntity)

	builder := qb.
		Update("orders").
		Set("status", orderModel.Status).
		Set("last_modified_at", orderModel.LastModifiedAt).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": orderModel.ID, "version": orderModel.Version}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var updated OrderDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&updated.ID,
			&updated.BookISBN,
			&updated.BookName,
			&updated.BookPrice,
			&updated.Quantity,
			&updated.Status,
			&updated.CreatedAt,
			&updated.LastModifiedAt,
			&updated.Version,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMissingRow(ctx, orderModel.ID)
		}

		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&updated), nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	query := `SELECT status, COUNT(*) FROM orders GROUP BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.OrderStatusType]int64, 4)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
		}
		counts[entities.OrderStatusType(status)] = count
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
	}

	return counts, nil
}

// classifyMissingRow различает пропавшую строку и устаревший version.
func (r *Repository) classifyMissingRow(ctx context.Context, id int64) error {
	_, err := r.GetByID(ctx, id)
	if errors.Is(err, order.ErrOrderNotFound) {
		return order.ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("unexpected order repository update error: %w", err)
	}
	return order.ErrVersionConflict
}
