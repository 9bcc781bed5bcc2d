package entities

import "time"

type Order struct {
	ID             int64
	BookISBN       string
	BookName       *string
	BookPrice      *float64
	Quantity       int
	Status         OrderStatusType
	CreatedAt      time.Time
	LastModifiedAt time.Time
	Version        int64
}

type OrderStatusType string

const (
	// OrderPending живет только между созданием заказа и первым переходом,
	// наружу не отдается: создание и первый переход — одна запись в БД.
	OrderPending    OrderStatusType = "pending"
	OrderAccepted   OrderStatusType = "accepted"
	OrderRejected   OrderStatusType = "rejected"
	OrderDispatched OrderStatusType = "dispatched"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Terminal: из rejected и dispatched переходов нет.
func (s OrderStatusType) Terminal() bool {
	return s == OrderRejected || s == OrderDispatched
}

// OrderStatuses перечисляет все статусы, которые видны снаружи.
func OrderStatuses() []OrderStatusType {
	return []OrderStatusType{OrderAccepted, OrderRejected, OrderDispatched}
}

// NewAcceptedOrder строит принятый заказ по найденной книге.
// bookName склеивается из названия и автора, как отдает каталог.
func NewAcceptedOrder(book Book, quantity int, now time.Time) Order {
	bookName := book.Title + " - " + book.Author
	return Order{
		BookISBN:       book.ISBN,
		BookName:       &bookName,
		BookPrice:      book.Price,
		Quantity:       quantity,
		Status:         OrderAccepted,
		CreatedAt:      now,
		LastModifiedAt: now,
	}
}

// NewRejectedOrder строит отклоненный заказ: имя и цена книги остаются пустыми.
func NewRejectedOrder(bookISBN string, quantity int, now time.Time) Order {
	return Order{
		BookISBN:       bookISBN,
		Quantity:       quantity,
		Status:         OrderRejected,
		CreatedAt:      now,
		LastModifiedAt: now,
	}
}

// Dispatched возвращает копию заказа в статусе dispatched,
// остальные поля не трогаем, version инкрементирует хранилище.
func (o Order) Dispatched(now time.Time) Order {
	next := o
	next.Status = OrderDispatched
	next.LastModifiedAt = now
	return next
}
