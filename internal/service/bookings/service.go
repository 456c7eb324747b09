package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/peycheff-com/mariia-hub-booking/internal/domain"
	bookingRepo "github.com/peycheff-com/mariia-hub-booking/internal/infra/storage/booking"
	"github.com/peycheff-com/mariia-hub-booking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями.
// Бронирования независимы от недельной сетки слотов: слоты — витрина
// доступности, источником правды для календаря является само бронирование.
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create создает бронирование из клиентского запроса.
// Новое бронирование всегда начинает жизнь в статусе pending —
// подтверждение выполняет администратор.
func (s *Service) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Create: booking request service=%s, location=%s, date=%s",
		req.ServiceRef, req.Location, req.BookingDate.Format(time.RFC3339))

	if err := s.validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	now := s.timeProvider.Now()

	// Дата визита должна быть в будущем с запасом на минимальное уведомление
	if req.BookingDate.Before(now) {
		s.logger.Warn("Create: booking date %s is in the past", req.BookingDate.Format(time.RFC3339))
		return nil, ErrInvalidBookingDate
	}
	if req.BookingDate.Before(now.Add(domain.MinBookingNoticeHours * time.Hour)) {
		s.logger.Warn("Create: booking date %s violates min notice", req.BookingDate.Format(time.RFC3339))
		return nil, fmt.Errorf("%w: must book at least %d hour(s) in advance", ErrTooLateToBook, domain.MinBookingNoticeHours)
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	if !isSupportedCurrency(currency) {
		s.logger.Warn("Create: unsupported currency %q", req.Currency)
		return nil, ErrUnsupportedCurrency
	}

	booking := &domain.Booking{
		BookingDate: req.BookingDate,
		Status:      domain.StatusPending,
		ServiceRef:  req.ServiceRef,
		ServiceType: domain.ServiceType(req.ServiceType),
		Location:    domain.Location(req.Location),
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		AmountPaid:  req.AmountPaid,
		Currency:    currency,
		Notes:       req.Notes,
	}

	created, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: booking id=%s created, date=%s", created.ID, created.BookingDate.Format(time.RFC3339))
	return models.FromDomainBooking(created), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(b), nil
}

// List получает бронирования с фильтрацией по периоду, статусу и локации
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus обновляет статус бронирования.
// Матрицы переходов нет: администратор может перевести бронирование
// из любого статуса в любой.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%s to status=%s", id, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, id)
		return nil, ErrInvalidStatus
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, newStatus, req.AdminNotes); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to reload booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%s now %s", id, b.Status)
	return models.FromDomainBooking(b), nil
}

// Calendar возвращает свод бронирований по дням за период для календаря.
// Отмененные бронирования не включаются — они не занимают календарь.
func (s *Service) Calendar(ctx context.Context, start, end time.Time) (*models.CalendarResponse, error) {
	if end.Before(start) {
		s.logger.Warn("Calendar: end %s before start %s", end.Format(domain.DateFormat), start.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		s.logger.Error("Calendar: repository error: %v", err)
		return nil, fmt.Errorf("%w: Calendar - repository error: %v", ErrInternal, err)
	}

	summaries := domain.SummarizeBookingsByDate(bookings)

	s.logger.Info("Calendar: %d bookings across %d days", len(bookings), len(summaries))
	return models.FromDaySummaries(summaries), nil
}

// validateCreateRequest валидирует запрос на создание бронирования
func (s *Service) validateCreateRequest(req *models.CreateBookingRequest) error {
	if req.BookingDate.IsZero() {
		return fmt.Errorf("%w: bookingDate is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceRef) == "" {
		return fmt.Errorf("%w: serviceRef is required", ErrInvalidInput)
	}
	if len(req.ServiceRef) > domain.MaxServiceRefLength {
		return fmt.Errorf("%w: serviceRef is too long", ErrInvalidInput)
	}

	if !domain.ServiceType(req.ServiceType).Valid() {
		return fmt.Errorf("%w: unknown service type", ErrInvalidInput)
	}
	if !domain.Location(req.Location).Valid() {
		return fmt.Errorf("%w: unknown location", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientEmail) == "" || !strings.Contains(req.ClientEmail, "@") {
		return fmt.Errorf("%w: clientEmail is invalid", ErrInvalidInput)
	}

	if req.AmountPaid < 0 {
		return fmt.Errorf("%w: amountPaid must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// isSupportedCurrency проверяет валюту по списку поддерживаемых
func isSupportedCurrency(currency string) bool {
	for _, c := range domain.SupportedCurrencies {
		if c == currency {
			return true
		}
	}
	return false
}
