// Package events описывает payload-ы доменных событий заказов.
package events

// OrderAcceptedMessage публикуется в topic order-accepted ровно один раз
// на каждый принятый заказ.
type OrderAcceptedMessage struct {
	OrderID int64 `json:"orderId"`
}

// OrderNotifiedMessage публикуется в topic order-notified на каждое
// обработанное OrderAcceptedMessage.
type OrderNotifiedMessage struct {
	OrderID int64 `json:"orderId"`
}
