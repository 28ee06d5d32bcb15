package update_appointment_status

import "time"

// Request модель запроса на смену статуса записи
type Request struct {
	AppointmentID string
	NextStatus    string // Целевой статус (pending|confirmed|completed|cancelled)
}

// Response модель ответа с обновленной записью
type Response struct {
	ID              string
	UserID          int64
	BarberID        int64
	Status          string
	StartTime       time.Time
	DurationMinutes int

	// Баллы лояльности, начисленные этим переходом (0, если перехода
	// в completed не было)
	LoyaltyPointsAccrued int
}
