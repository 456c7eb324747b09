package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidBookingDate возвращается при некорректной дате бронирования
	ErrInvalidBookingDate = errors.New("invalid booking date")

	// ErrTooLateToBook возвращается, когда до визита осталось меньше
	// минимального времени уведомления
	ErrTooLateToBook = errors.New("too late to book this time")

	// ErrUnsupportedCurrency возвращается при неподдерживаемой валюте
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings service: internal error")
)
