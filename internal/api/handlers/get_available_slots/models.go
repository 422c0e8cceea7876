package get_available_slots

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/inkmatch/booking-service/internal/domain"
	getAvailableSlots "github.com/inkmatch/booking-service/internal/usecase/get_available_slots"
)

// SlotResponse is one bookable slot.
type SlotResponse struct {
	StartAt   string `json:"startAt"`   // RFC 3339, with the artist's zone offset
	EndAt     string `json:"endAt"`     // RFC 3339
	StartTime string `json:"startTime"` // wall clock "HH:MM" in the artist's timezone
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	ArtistID        int64          `json:"artistId"`
	Date            string         `json:"date"`
	Timezone        string         `json:"timezone"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartAt:   s.StartAt.Format(time.RFC3339),
			EndAt:     s.EndAt.Format(time.RFC3339),
			StartTime: s.StartTime.String(),
		})
	}
	return &SlotsResponse{
		ArtistID:        resp.ArtistID,
		Date:            resp.Date.Format(domain.DateFormat),
		Timezone:        resp.Timezone,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ParseQuery reads date and durationMinutes from the query string.
func ParseQuery(r *http.Request, artistID int64) (*getAvailableSlots.Request, error) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		return nil, fmt.Errorf("date query parameter is required")
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dateStr)
	}

	durationStr := r.URL.Query().Get("durationMinutes")
	if durationStr == "" {
		return nil, fmt.Errorf("durationMinutes query parameter is required")
	}
	duration, err := strconv.Atoi(durationStr)
	if err != nil || duration <= 0 {
		return nil, fmt.Errorf("invalid durationMinutes %q", durationStr)
	}

	return &getAvailableSlots.Request{
		ArtistID:        artistID,
		Date:            date,
		DurationMinutes: duration,
	}, nil
}
