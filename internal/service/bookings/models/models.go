package models

import (
	"errors"
	"time"

	"github.com/peycheff-com/mariia-hub-booking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CreateBookingRequest запрос на создание бронирования
type CreateBookingRequest struct {
	BookingDate time.Time `json:"bookingDate"` // Абсолютные дата и время визита
	ServiceRef  string    `json:"serviceRef"`
	ServiceType string    `json:"serviceType"`
	Location    string    `json:"location"`
	ClientName  string    `json:"clientName"`
	ClientEmail string    `json:"clientEmail"`
	ClientPhone *string   `json:"clientPhone,omitempty"`
	AmountPaid  float64   `json:"amountPaid"`
	Currency    string    `json:"currency,omitempty"` // По умолчанию PLN
	Notes       *string   `json:"notes,omitempty"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status     string  `json:"status"`
	AdminNotes *string `json:"adminNotes,omitempty"`
}

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	StartDate        *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate          *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
	Status           *string    `json:"status,omitempty"`    // Фильтр по статусу (опционально)
	Location         *string    `json:"location,omitempty"`  // Фильтр по локации (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.Location != nil {
		location := domain.Location(*r.Location)
		if !location.Valid() {
			return filter, errors.New("unknown location")
		}
		filter.Location = &location
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          string  `json:"id"`
	BookingDate string  `json:"bookingDate"` // ISO 8601
	Status      string  `json:"status"`
	ServiceRef  string  `json:"serviceRef"`
	ServiceType string  `json:"serviceType"`
	Location    string  `json:"location"`
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	AmountPaid  float64 `json:"amountPaid"`
	Currency    string  `json:"currency"`
	Notes       *string `json:"notes,omitempty"`
	AdminNotes  *string `json:"adminNotes,omitempty"`
	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// CalendarDayResponse свод бронирований одного дня для календаря
type CalendarDayResponse struct {
	Date     string         `json:"date"` // "2025-10-15"
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
}

// CalendarResponse свод бронирований по дням за период
type CalendarResponse struct {
	Days []CalendarDayResponse `json:"days"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:          b.ID.String(),
		BookingDate: b.BookingDate.Format(time.RFC3339),
		Status:      string(b.Status),
		ServiceRef:  b.ServiceRef,
		ServiceType: string(b.ServiceType),
		Location:    string(b.Location),
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
		ClientPhone: b.ClientPhone,
		AmountPaid:  b.AmountPaid,
		Currency:    b.Currency,
		Notes:       b.Notes,
		AdminNotes:  b.AdminNotes,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if bookingResp := FromDomainBooking(b); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDaySummaries конвертирует свод по дням в DTO
func FromDaySummaries(summaries []domain.DaySummary) *CalendarResponse {
	resp := &CalendarResponse{
		Days: make([]CalendarDayResponse, 0, len(summaries)),
	}

	for _, s := range summaries {
		byStatus := make(map[string]int, len(s.ByStatus))
		for status, count := range s.ByStatus {
			byStatus[string(status)] = count
		}
		resp.Days = append(resp.Days, CalendarDayResponse{
			Date:     s.Date,
			Total:    s.Total,
			ByStatus: byStatus,
		})
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
