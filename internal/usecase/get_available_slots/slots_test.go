package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
)

func TestGenerateTimeSlots_FullGridForFutureDate(t *testing.T) {
	cal := domain.DefaultCalendar(1)
	now := time.Date(2026, 3, 24, 10, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC) // среда, завтра

	slots := generateTimeSlots(cal, 30, date, now)

	// 8:00-20:00 с шагом 30 минут: 24 слота
	require.Len(t, slots, 24)
	assert.Equal(t, time.Date(2026, 3, 25, 8, 0, 0, 0, time.UTC), slots[0].Start)
	assert.Equal(t, time.Date(2026, 3, 25, 19, 30, 0, 0, time.UTC), slots[len(slots)-1].Start)
	assert.Equal(t, time.Date(2026, 3, 25, 20, 0, 0, 0, time.UTC), slots[len(slots)-1].End)
}

func TestGenerateTimeSlots_GridRespectsClosing(t *testing.T) {
	cal := domain.DefaultCalendar(1)
	now := time.Date(2026, 3, 24, 10, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC)

	// 90 минут: последний слот обязан закончиться не позже 20:00
	slots := generateTimeSlots(cal, 90, date, now)

	require.NotEmpty(t, slots)
	last := slots[len(slots)-1]
	assert.False(t, last.End.After(time.Date(2026, 3, 25, 20, 0, 0, 0, time.UTC)))
	// 12 часов / 1.5 часа = 8 слотов
	assert.Len(t, slots, 8)
}

func TestGenerateTimeSlots_EmptyForDayOff(t *testing.T) {
	cal := domain.DefaultCalendar(1) // воскресенье - выходной
	now := time.Date(2026, 3, 24, 10, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 29, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, sunday.Weekday())

	slots := generateTimeSlots(cal, 30, sunday, now)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_EmptyForPastDate(t *testing.T) {
	cal := domain.DefaultCalendar(1)
	now := time.Date(2026, 3, 24, 10, 0, 0, 0, time.UTC)
	yesterday := time.Date(2026, 3, 23, 0, 0, 0, 0, time.UTC)

	slots := generateTimeSlots(cal, 30, yesterday, now)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_TodayFiltersByLeadTime(t *testing.T) {
	cal := domain.DefaultCalendar(1)
	// Сейчас 10:15, минимум 60 минут: первый доступный слот 11:30
	now := time.Date(2026, 3, 24, 10, 15, 0, 0, time.UTC)
	today := time.Date(2026, 3, 24, 0, 0, 0, 0, time.UTC)

	slots := generateTimeSlots(cal, 30, today, now)

	require.NotEmpty(t, slots)
	assert.Equal(t, time.Date(2026, 3, 24, 11, 30, 0, 0, time.UTC), slots[0].Start)
}

func TestMarkAvailability(t *testing.T) {
	slotAt := func(hour, minute int) domain.TimeInterval {
		return domain.NewTimeInterval(time.Date(2026, 3, 25, hour, minute, 0, 0, time.UTC), 30)
	}

	slots := []domain.TimeInterval{slotAt(14, 0), slotAt(14, 30), slotAt(15, 0)}

	appointments := []*domain.Appointment{
		{
			ID:              "busy",
			BarberID:        2,
			StartTime:       time.Date(2026, 3, 25, 14, 30, 0, 0, time.UTC),
			DurationMinutes: 30,
			Status:          domain.StatusConfirmed,
		},
		{
			// Отменённая запись слот не занимает
			ID:              "cancelled",
			BarberID:        2,
			StartTime:       time.Date(2026, 3, 25, 15, 0, 0, 0, time.UTC),
			DurationMinutes: 30,
			Status:          domain.StatusCancelled,
		},
	}

	marked := markAvailability(slots, appointments)

	require.Len(t, marked, 3)
	assert.True(t, marked[0].Available)
	assert.False(t, marked[1].Available)
	assert.True(t, marked[2].Available)
}
