package entities

import "time"

type Book struct {
	ID        int64
	ISBN      string
	Title     string
	Author    string
	Price     *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BookModify struct {
	ISBN   *string
	Title  *string
	Author *string
	Price  *float64
}
