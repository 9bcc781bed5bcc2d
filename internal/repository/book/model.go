package book

import "time"

type BookDB struct {
	ID        int64
	ISBN      string
	Title     string
	Author    string
	Price     *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BookModifyDB struct {
	ISBN   *string
	Title  *string
	Author *string
	Price  *float64
}
