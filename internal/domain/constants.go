package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Currency constants. PLN is the default: the platform serves the Polish
// market, EUR and USD are accepted for international clients.
const DefaultCurrency = "PLN"

// SupportedCurrencies валюты, принимаемые при создании бронирования
var SupportedCurrencies = []string{"PLN", "EUR", "USD"}

// Business validation constants
const (
	MaxNotesLength        = 500
	MaxClientNameLength   = 200
	MaxServiceRefLength   = 200
	MinBookingNoticeHours = 1 // Минимальное время до визита при создании бронирования
)
