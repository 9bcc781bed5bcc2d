package order

import (
	"bookshop/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:             o.ID,
		BookISBN:       o.BookISBN,
		BookName:       o.BookName,
		BookPrice:      o.BookPrice,
		Quantity:       o.Quantity,
		Status:         entities.OrderStatusType(o.Status),
		CreatedAt:      o.CreatedAt,
		LastModifiedAt: o.LastModifiedAt,
		Version:        o.Version,
	}
}

func FromDomain(orderEntity *entities.Order) *OrderDB {
	if orderEntity == nil {
		return nil
	}

	return &OrderDB{
		ID:             orderEntity.ID,
		BookISBN:       orderEntity.BookISBN,
		BookName:       orderEntity.BookName,
		BookPrice:      orderEntity.BookPrice,
		Quantity:       orderEntity.Quantity,
		Status:         orderEntity.Status.String(),
		CreatedAt:      orderEntity.CreatedAt,
		LastModifiedAt: orderEntity.LastModifiedAt,
		Version:        orderEntity.Version,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
