package get_available_slots

import (
	"time"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
)

// generateTimeSlots генерирует сетку слотов на день: от часа открытия с
// шагом, равным длительности услуги, пока конец слота не выходит за час
// закрытия. Для выходного дня заведения и дат в прошлом сетка пустая.
// Для сегодняшней даты слоты дополнительно фильтруются по минимальному
// времени предупреждения.
func generateTimeSlots(
	calendar *domain.BusinessCalendar,
	durationMinutes int,
	requestDate time.Time,
	now time.Time,
) []domain.TimeInterval {
	if isDateInPast(requestDate, now) {
		return []domain.TimeInterval{}
	}

	if calendar.IsDayOff(requestDate.Weekday()) {
		return []domain.TimeInterval{}
	}

	y, m, d := requestDate.Date()
	opening := time.Date(y, m, d, calendar.OpeningHour, 0, 0, 0, requestDate.Location())
	closing := time.Date(y, m, d, calendar.ClosingHour, 0, 0, 0, requestDate.Location())

	step := time.Duration(durationMinutes) * time.Minute

	// Шаг 1: все слоты рабочего дня
	allSlots := make([]domain.TimeInterval, 0)
	for cursor := opening; cursor.Before(closing); cursor = cursor.Add(step) {
		slot := domain.NewTimeInterval(cursor, durationMinutes)
		if slot.End.After(closing) {
			break
		}
		allSlots = append(allSlots, slot)
	}

	// Шаг 2: для будущих дат фильтрация не нужна
	if !isSameDay(requestDate, now) {
		return allSlots
	}

	// Шаг 3: сегодня - оставляем только слоты, начинающиеся не раньше
	// now + minLeadTime
	minAllowed := now.Add(time.Duration(calendar.MinLeadTimeMinutes) * time.Minute)

	available := make([]domain.TimeInterval, 0, len(allSlots))
	for _, slot := range allSlots {
		if !slot.Start.Before(minAllowed) {
			available = append(available, slot)
		}
	}

	return available
}

// markAvailability отмечает занятость каждого слота по активным записям барбера
func markAvailability(slots []domain.TimeInterval, appointments []*domain.Appointment) []Slot {
	result := make([]Slot, len(slots))

	for i, slot := range slots {
		result[i] = Slot{
			StartTime: slot.Start,
			EndTime:   slot.End,
			Available: !hasOverlap(slot, appointments),
		}
	}

	return result
}

// hasOverlap проверяет пересечение слота хотя бы с одной активной записью.
// Полуинтервалы: граничащие записи пересечением не считаются.
func hasOverlap(slot domain.TimeInterval, appointments []*domain.Appointment) bool {
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if slot.Overlaps(appt.Interval()) {
			return true
		}
	}
	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
