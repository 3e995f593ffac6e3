package create_booking

import (
	"errors"
	"net/http"

	"github.com/avtoline-dev/STO-SiteService/internal/api/handlers"
	createBooking "github.com/avtoline-dev/STO-SiteService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyName          = "укажите ваше имя"
	msgEmptyPhone         = "укажите телефон для связи"
	msgNoDateSelected     = "выберите дату записи"
	msgNoTimeSelected     = "выберите время записи"
	msgEmptySelection     = "выберите хотя бы одну услугу"
	msgDateInPast         = "нельзя записаться на прошедшую дату"
	msgDateClosed         = "сервис не работает в выбранную дату"
	msgInvalidTimeSlot    = "некорректное время записи"
	msgTooLateToBook      = "слишком поздно для записи на это время"
	msgSlotNotAvailable   = "выбранное время уже занято"
	msgInvalidInput       = "некорректные данные формы"
)

type Handler struct {
	useCase CreateBookingUseCase
	counter BookingsCounter // nil, если метрики выключены
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, counter BookingsCounter, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		counter: counter,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrEmptyName):
			h.logger.Warn("POST /bookings - Empty name")
			handlers.RespondBadRequest(w, msgEmptyName)

		case errors.Is(err, createBooking.ErrEmptyPhone):
			h.logger.Warn("POST /bookings - Empty phone")
			handlers.RespondBadRequest(w, msgEmptyPhone)

		case errors.Is(err, createBooking.ErrNoDateSelected):
			h.logger.Warn("POST /bookings - No date selected")
			handlers.RespondBadRequest(w, msgNoDateSelected)

		case errors.Is(err, createBooking.ErrNoTimeSelected):
			h.logger.Warn("POST /bookings - No time selected")
			handlers.RespondBadRequest(w, msgNoTimeSelected)

		case errors.Is(err, createBooking.ErrEmptySelection):
			h.logger.Warn("POST /bookings - Empty selection")
			handlers.RespondBadRequest(w, msgEmptySelection)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: %s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrDateClosed):
			h.logger.Warn("POST /bookings - Closed date: %s", req.Date)
			handlers.RespondBadRequest(w, msgDateClosed)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: %s %s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: %s %s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: %s %s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if h.counter != nil {
		h.counter.Inc()
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, date=%s, time=%s",
		result.ID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
