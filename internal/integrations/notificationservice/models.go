package notificationservice

// NotifyRequest тело запроса к функции уведомлений
type NotifyRequest struct {
	BookingID string `json:"booking_id"`
}

// NotifyResponse ответ функции уведомлений
type NotifyResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	BookingID string `json:"booking_id,omitempty"`
	Error     string `json:"error,omitempty"`
}
