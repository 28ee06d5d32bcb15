package create_appointment

import (
	"errors"
	"fmt"
)

var (
	// ErrBarberNotFound возвращается, когда барбер не найден или неактивен
	ErrBarberNotFound = errors.New("create_appointment: barber not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrServiceNotAtEstablishment возвращается, когда услуга принадлежит
	// другому заведению, чем выбранный барбер
	ErrServiceNotAtEstablishment = errors.New("create_appointment: service is not available at this establishment")

	// ErrInvalidServiceDuration возвращается, когда длительность услуги
	// нарушает политику длительности (защитная проверка от устаревших
	// данных каталога)
	ErrInvalidServiceDuration = errors.New("create_appointment: invalid service duration")

	// ErrOutsideBusinessHours возвращается, когда запись выходит за рабочие часы
	ErrOutsideBusinessHours = errors.New("create_appointment: outside business hours")

	// ErrDayOff возвращается, когда дата записи приходится на выходной день заведения
	ErrDayOff = errors.New("create_appointment: establishment is closed on this day")

	// ErrInsufficientLeadTime возвращается, когда до начала записи остаётся
	// меньше минимального времени предупреждения (включая даты в прошлом)
	ErrInsufficientLeadTime = errors.New("create_appointment: insufficient lead time")

	// ErrTooFarInAdvance возвращается, когда дата записи превышает горизонт бронирования
	ErrTooFarInAdvance = errors.New("create_appointment: date is too far in advance")

	// ErrSlotConflict возвращается, когда запись пересекается с существующей
	ErrSlotConflict = errors.New("create_appointment: slot conflicts with another appointment")

	// ErrConcurrentConflict возвращается, когда сериализуемая транзакция
	// не смогла зафиксироваться из-за конкурентного бронирования
	ErrConcurrentConflict = errors.New("create_appointment: concurrent booking conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

// ConflictError несёт идентификатор записи, с которой обнаружен конфликт.
// Оборачивает ErrSlotConflict, поэтому errors.Is(err, ErrSlotConflict)
// продолжает работать.
type ConflictError struct {
	AppointmentID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: appointment id=%s", ErrSlotConflict, e.AppointmentID)
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotConflict
}
