package book

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidISBN           = errors.New("invalid isbn")
	ErrInvalidTitle          = errors.New("invalid title")
	ErrInvalidAuthor         = errors.New("invalid author")
	ErrInvalidPrice          = errors.New("invalid price")

	ErrBookNotFound = errors.New("book not found")
	ErrConflict     = errors.New("book already exists")
)
