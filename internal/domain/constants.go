package domain

// Default business calendar values
const (
	DefaultOpeningHour        = 8  // 8:00
	DefaultClosingHour        = 20 // 20:00
	DefaultMinLeadTimeMinutes = 60 // 1 hour
	DefaultMaxAdvanceDays     = 30
)

// Business validation constants
const (
	MinServiceDurationMinutes = 30
	MaxServiceDurationMinutes = 180 // 3 hours

	MinLeadTimeMinutesLimit = 0
	MaxLeadTimeMinutesLimit = 10080 // 1 week
	MinAdvanceDaysLimit     = 1
	MaxAdvanceDaysLimit     = 365 // 1 year

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Loyalty program constants
const (
	LoyaltyPointsPerAppointment = 10
	LoyaltyPointsForDiscount    = 100
	LoyaltyDiscountPercent      = 20
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не участвующих в проверке конфликтов
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
}

// ActiveStatuses список активных статусов записи
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
