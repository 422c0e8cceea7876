package get_artist_bookings

import (
	"fmt"
	"net/http"
	"time"

	"github.com/inkmatch/booking-service/internal/domain"
	"github.com/inkmatch/booking-service/internal/service/bookings/models"
)

// ParseQuery reads the optional calendar filters from the query string.
// startDate/endDate bound the window, status narrows to one status, and
// includeTerminal adds denied/cancelled/completed/no_show rows.
func ParseQuery(r *http.Request, artistID, userID int64) (*models.GetArtistBookingsRequest, error) {
	req := &models.GetArtistBookingsRequest{
		ArtistID: artistID,
		UserID:   userID,
	}

	query := r.URL.Query()

	if s := query.Get("startDate"); s != "" {
		date, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate %q, expected YYYY-MM-DD", s)
		}
		req.StartDate = &date
	}

	if s := query.Get("endDate"); s != "" {
		date, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate %q, expected YYYY-MM-DD", s)
		}
		req.EndDate = &date
	}

	if s := query.Get("status"); s != "" {
		req.Status = &s
	}

	req.IncludeTerminal = query.Get("includeTerminal") == "true"

	return req, nil
}
