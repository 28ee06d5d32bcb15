package create_appointment

import (
	"fmt"
	"time"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateAppointment — чистая функция допуска записи. Не выполняет I/O,
// не мутирует аргументы, текущее время передаётся параметром. Проверки
// идут по порядку, первая неудача прерывает валидацию.
//
// Возвращает допущенный полуинтервал [start, start+duration) либо
// sentinel-ошибку с причиной отказа (для конфликта - *ConflictError с ID
// пересекающейся записи).
func validateAppointment(
	req *Request,
	service *domain.ServiceDefinition,
	calendar *domain.BusinessCalendar,
	existing []*domain.Appointment,
	now time.Time,
) (domain.TimeInterval, error) {
	// 1. Защитная проверка длительности услуги: устаревший или чужой
	// каталог мог отдать значение вне политики
	if !service.HasValidDuration() {
		return domain.TimeInterval{}, fmt.Errorf("%w: duration must be between %d and %d minutes, got %d",
			ErrInvalidServiceDuration, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes,
			service.DurationMinutes)
	}

	requested := domain.NewTimeInterval(req.StartTime, service.DurationMinutes)

	// 2. Рабочие часы с точностью до часа. Конечный час считается как
	// startHour + ceil(duration/60) - огрубление, унаследованное от
	// исходной системы: запись 19:45+30мин при закрытии в 20 допускается.
	// Точное сравнение конца записи с closing:00 здесь сознательно НЕ
	// используется ради совместимости.
	startHour := req.StartTime.Hour()
	endHour := startHour + (service.DurationMinutes+59)/60
	if startHour < calendar.OpeningHour || endHour > calendar.ClosingHour {
		return domain.TimeInterval{}, fmt.Errorf("%w: appointments are only available between %d:00 and %d:00",
			ErrOutsideBusinessHours, calendar.OpeningHour, calendar.ClosingHour)
	}

	// 3. Выходной день заведения
	if calendar.IsDayOff(req.StartTime.Weekday()) {
		return domain.TimeInterval{}, ErrDayOff
	}

	// 4. Минимальное время предупреждения. Строгое неравенство: ровно
	// MinLeadTimeMinutes до начала - допустимо. Отрицательная разница
	// (дата в прошлом) отклоняется этой же проверкой.
	minutesUntil := req.StartTime.Sub(now).Minutes()
	if minutesUntil < float64(calendar.MinLeadTimeMinutes) {
		return domain.TimeInterval{}, fmt.Errorf("%w: appointments must be made at least %d minutes in advance",
			ErrInsufficientLeadTime, calendar.MinLeadTimeMinutes)
	}

	// 5. Горизонт бронирования, дробные дни. Строго больше - отказ,
	// ровно MaxAdvanceDays - допустимо.
	daysUntil := req.StartTime.Sub(now).Hours() / 24
	if daysUntil > float64(calendar.MaxAdvanceDays) {
		return domain.TimeInterval{}, fmt.Errorf("%w: appointments can only be made up to %d days in advance",
			ErrTooFarInAdvance, calendar.MaxAdvanceDays)
	}

	// 6. Конфликты с существующими записями того же барбера. Отменённые
	// записи в проверке не участвуют. Полуинтервалы: стык записей
	// (end == start) конфликтом не считается.
	for _, appt := range existing {
		if appt.BarberID != req.BarberID {
			continue
		}
		if !appt.IsActive() {
			continue
		}
		if requested.Overlaps(appt.Interval()) {
			return domain.TimeInterval{}, &ConflictError{AppointmentID: appt.ID}
		}
	}

	return requested, nil
}
