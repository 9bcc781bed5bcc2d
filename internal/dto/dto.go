// Package dto содержит тела HTTP запросов и ответов.
package dto

import "time"

type Book struct {
	ISBN   string   `json:"isbn"`
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Price  *float64 `json:"price,omitempty"`
}

type BookCreateResponse struct {
	ID int64 `json:"id"`
}

type OrderRequest struct {
	ISBN     string `json:"isbn"`
	Quantity int    `json:"quantity"`
}

type Order struct {
	ID             int64     `json:"id"`
	BookISBN       string    `json:"bookIsbn"`
	BookName       *string   `json:"bookName,omitempty"`
	BookPrice      *float64  `json:"bookPrice,omitempty"`
	Quantity       int       `json:"quantity"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	LastModifiedAt time.Time `json:"lastModifiedAt"`
	Version        int64     `json:"version"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
