package domain

import "time"

// ServiceDefinition represents a service from the establishment's catalog
type ServiceDefinition struct {
	ID              int64
	EstablishmentID int64
	Name            string
	Category        string
	Price           float64
	DurationMinutes int
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasValidDuration returns true if the duration satisfies the policy bounds
func (s *ServiceDefinition) HasValidDuration() bool {
	return s.DurationMinutes >= MinServiceDurationMinutes &&
		s.DurationMinutes <= MaxServiceDurationMinutes
}

// Barber represents a staff member appointments are assigned to.
// Барбер - единица проверки конфликтов: два активных визита одного барбера
// не могут пересекаться во времени.
type Barber struct {
	ID              int64
	EstablishmentID int64
	FirstName       string
	LastName        string
	Specialties     []string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
