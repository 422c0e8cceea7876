package create_booking

import (
	"errors"
	"net/http"

	"github.com/inkmatch/booking-service/internal/api/handlers"
	"github.com/inkmatch/booking-service/internal/api/middleware"
	"github.com/inkmatch/booking-service/internal/domain"
	createBooking "github.com/inkmatch/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDate          = "invalid date, expected YYYY-MM-DD"
	msgMissingUserID        = "missing user identity"
	msgClientsOnly          = "only clients can create bookings"
	msgAvailabilityNotFound = "artist availability not found"
	msgInvalidSlot          = "requested slot is not on the artist's availability grid"
	msgSlotConflict         = "requested slot is no longer available"
	msgTooLateToBook        = "too late to book this slot"
	msgPolicyNotConfigured  = "artist has no deposit policy configured"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing actor identity")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if actor.Role != domain.RoleClient {
		h.logger.Warn("POST /bookings - Non-client actor: user_id=%d, role=%s", actor.ID, actor.Role)
		handlers.RespondForbidden(w, msgClientsOnly)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor.ID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrAvailabilityNotFound):
			h.logger.Warn("POST /bookings - Availability not found: artist_id=%d", req.ArtistID)
			handlers.RespondNotFound(w, msgAvailabilityNotFound)

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: artist_id=%d, client_id=%d", req.ArtistID, actor.ID)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBooking.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Invalid slot: artist_id=%d, client_id=%d", req.ArtistID, actor.ID)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: artist_id=%d, client_id=%d", req.ArtistID, actor.ID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrPolicyNotConfigured):
			h.logger.Warn("POST /bookings - Deposit policy not configured: artist_id=%d", req.ArtistID)
			handlers.RespondConflict(w, msgPolicyNotConfigured)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: artist_id=%d, client_id=%d, error=%v",
				req.ArtistID, actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, artist_id=%d, client_id=%d",
		result.ID, req.ArtistID, actor.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
