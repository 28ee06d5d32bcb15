package create_appointment

import "time"

// Request модель запроса на создание записи
type Request struct {
	UserID    int64     // ID клиента
	BarberID  int64     // ID барбера
	ServiceID int64     // ID услуги
	StartTime time.Time // Запрошенное время начала (локальное время заведения)
	Notes     *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              string    // ID созданной записи
	EstablishmentID int64     // ID заведения
	UserID          int64     // ID клиента
	BarberID        int64     // ID барбера
	ServiceID       int64     // ID услуги
	StartTime       time.Time // Время начала
	EndTime         time.Time // Время окончания (start + длительность услуги)
	DurationMinutes int       // Длительность в минутах
	Status          string    // Статус записи

	// Денормализованные данные услуги
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
