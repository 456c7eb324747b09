package create_booking

import (
	"time"

	"github.com/peycheff-com/mariia-hub-booking/internal/service/bookings/models"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BookingDate string  `json:"bookingDate"` // ISO 8601, например "2026-03-15T10:00:00+01:00"
	ServiceRef  string  `json:"serviceRef"`
	ServiceType string  `json:"serviceType"` // beauty / fitness
	Location    string  `json:"location"`    // studio / online / fitness-location
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	AmountPaid  float64 `json:"amountPaid"`
	Currency    string  `json:"currency,omitempty"` // По умолчанию PLN
	Notes       *string `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом даты)
func (r *CreateBookingRequest) ToServiceRequest() (*models.CreateBookingRequest, error) {
	bookingDate, err := time.Parse(time.RFC3339, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &models.CreateBookingRequest{
		BookingDate: bookingDate,
		ServiceRef:  r.ServiceRef,
		ServiceType: r.ServiceType,
		Location:    r.Location,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		ClientPhone: r.ClientPhone,
		AmountPaid:  r.AmountPaid,
		Currency:    r.Currency,
		Notes:       r.Notes,
	}, nil
}
