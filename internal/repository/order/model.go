package order

import "time"

type OrderDB struct {
	ID             int64
	BookISBN       string
	BookName       *string
	BookPrice      *float64
	Quantity       int
	Status         string
	CreatedAt      time.Time
	LastModifiedAt time.Time
	Version        int64
}
