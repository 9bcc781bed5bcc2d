package order

import "errors"

var (
	ErrInvalidISBN     = errors.New("invalid isbn")
	ErrInvalidQuantity = errors.New("invalid quantity")

	ErrBookNotFound  = errors.New("book not found in catalog")
	ErrOrderNotFound = errors.New("order not found")

	// ErrVersionConflict: version в БД ушел вперед, запись не перезаписываем.
	ErrVersionConflict = errors.New("order version conflict")
)
