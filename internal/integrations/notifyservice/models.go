package notifyservice

// NotificationType тип уведомления
type NotificationType string

const (
	TypeAppointmentCreated   NotificationType = "appointment_created"
	TypeAppointmentCancelled NotificationType = "appointment_cancelled"
	TypeStatusChanged        NotificationType = "appointment_status_changed"
)

// Notification модель уведомления для NotifyService
type Notification struct {
	UserID        int64            `json:"user_id"`
	Type          NotificationType `json:"type"`
	AppointmentID string           `json:"appointment_id"`
	Message       string           `json:"message"`
}

// ErrorResponse модель ошибки от NotifyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
