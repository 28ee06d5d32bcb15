package calendar

import "errors"

var (
	// ErrInvalidCalendar возвращается при нарушении инвариантов календаря
	// (opening >= closing, недопустимые часы и т.д.)
	ErrInvalidCalendar = errors.New("calendar.service: invalid calendar configuration")

	// ErrPermissionDenied возвращается, когда у актора нет прав на операцию
	ErrPermissionDenied = errors.New("calendar.service: permission denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar.service: internal error")
)
