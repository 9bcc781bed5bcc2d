package dispatch

import "errors"

// ErrStatusMismatch: уведомление пришло по заказу, который не был принят.
var ErrStatusMismatch = errors.New("order status does not allow dispatch")
