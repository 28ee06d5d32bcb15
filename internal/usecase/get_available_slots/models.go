package get_available_slots

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	EstablishmentID int64     // ID заведения
	BarberID        int64     // ID барбера
	ServiceID       int64     // ID услуги
	Date            time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	EstablishmentID int64
	BarberID        int64
	ServiceID       int64
	DurationMinutes int    // Длительность услуги (шаг сетки слотов)
	Slots           []Slot // Слоты с признаком доступности
}

// Slot модель временного слота
type Slot struct {
	StartTime time.Time // Начало слота
	EndTime   time.Time // Конец слота
	Available bool      // Свободен ли слот у барбера
}
