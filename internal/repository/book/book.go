package book

import (
	"context"
	"errors"
	"fmt"

	"bookshop/internal/entities"
	"bookshop/internal/repository"
	"bookshop/internal/service/book"
	"github.com/jackc/pgx/v5"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, bookModifyEntity entities.BookModify) (int64, error) {
	bookModifyModel := FromDomainModify(&bookModifyEntity)
	query := `INSERT INTO books (isbn, title, author, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		bookModifyModel.ISBN,
		bookModifyModel.Title,
		bookModifyModel.Author,
		bookModifyModel.Price,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, book.ErrConflict
		}
		return 0, fmt.Errorf("unexpected book repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByISBN(ctx context.Context, isbn string) (*entities.Book, error) {
	query := `SELECT id, isbn, title, author, price, created_at, updated_at
		FROM books
		WHERE isbn = $1`

	var bookModel BookDB
	err := r.querier.QueryRow(ctx, query, isbn).
		Scan(
			&bookModel.ID,
			&bookModel.ISBN,
			&bookModel.Title,
			&bookModel.Author,
			&bookModel.Price,
			&bookModel.CreatedAt,
			&bookModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}

		return nil, fmt.Errorf("unexpected book repository getbyisbn error: %w", err)
	}

	return ToDomain(&bookModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Book, error) {
	query := `
	SELECT id, isbn, title, author, price, created_at, updated_at
	FROM books
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected book repository getall error: %w", err)
	}
	defer rows.Close()

	bookModels := make([]BookDB, 0, 8)
	for rows.Next() {
		var bookModel BookDB
		err := rows.Scan(
			&bookModel.ID,
			&bookModel.ISBN,
			&bookModel.Title,
			&bookModel.Author,
			&bookModel.Price,
			&bookModel.CreatedAt,
			&bookModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected book repository getall error: %w", err)
		}
		bookModels = append(bookModels, bookModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected book repository getall error: %w", err)
	}

	return ToDomainList(bookModels), nil
}

func (r *Repository) DeleteByISBN(ctx context.Context, isbn string) error {
	query := `DELETE FROM books WHERE isbn = $1`

	result, err := r.querier.Exec(ctx, query, isbn)
	if err != nil {
		return fmt.Errorf("unexpected book repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	return nil
}
