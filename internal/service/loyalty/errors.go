package loyalty

import "errors"

var (
	// ErrInsufficientPoints возвращается, когда баллов не хватает для скидки
	ErrInsufficientPoints = errors.New("loyalty.service: insufficient points")

	// ErrPermissionDenied возвращается, когда у актора нет прав на операцию
	ErrPermissionDenied = errors.New("loyalty.service: permission denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("loyalty.service: internal error")
)
