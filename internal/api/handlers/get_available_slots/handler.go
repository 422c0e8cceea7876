package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/inkmatch/booking-service/internal/api/handlers"
	getAvailableSlots "github.com/inkmatch/booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidArtistID      = "invalid artist ID"
	msgAvailabilityNotFound = "artist availability not found"
	msgInvalidDuration      = "durationMinutes must be a positive multiple of the artist's slot granularity"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/artists/{artistId}/available-slots?date=YYYY-MM-DD&durationMinutes=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	artistID, err := strconv.ParseInt(vars["artistId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /artists/{id}/available-slots - Invalid artist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArtistID)
		return
	}

	req, err := ParseQuery(r, artistID)
	if err != nil {
		h.logger.Warn("GET /artists/{id}/available-slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrAvailabilityNotFound):
			h.logger.Warn("GET /artists/{id}/available-slots - Availability not found: artist_id=%d", artistID)
			handlers.RespondNotFound(w, msgAvailabilityNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Warn("GET /artists/{id}/available-slots - Invalid duration: artist_id=%d, duration=%d",
				artistID, req.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /artists/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /artists/{id}/available-slots - Failed: artist_id=%d, error=%v", artistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /artists/{id}/available-slots - Returned %d slot(s): artist_id=%d, date=%s",
		len(result.Slots), artistID, req.Date.Format("2006-01-02"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
