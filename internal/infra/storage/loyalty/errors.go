package loyalty

import "errors"

var (
	// ErrAccountNotFound возвращается, когда счёт лояльности не найден
	ErrAccountNotFound = errors.New("loyalty.repository: loyalty account not found")

	// ErrInsufficientPoints возвращается при попытке списать больше баллов, чем есть на счету
	ErrInsufficientPoints = errors.New("loyalty.repository: insufficient points")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("loyalty.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("loyalty.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("loyalty.repository: failed to scan row")
)
