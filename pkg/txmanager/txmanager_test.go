package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	serialization := &pq.Error{Code: "40001"}

	assert.True(t, isSerializationFailure(serialization))

	// Statement-time failures surface through the repository and use case
	// wrapping layers; the chain must stay intact all the way up so the
	// retry loop still recognizes them.
	repoWrapped := fmt.Errorf("%w: GetByArtistWithFilter - execute query: %w",
		errors.New("booking.repository: failed to execute query"), serialization)
	assert.True(t, isSerializationFailure(repoWrapped))

	useCaseWrapped := fmt.Errorf("%w: failed to get bookings: %w",
		errors.New("create_booking: internal error"), repoWrapped)
	assert.True(t, isSerializationFailure(useCaseWrapped))

	assert.False(t, isSerializationFailure(errors.New("connection reset")))
	assert.False(t, isSerializationFailure(&pq.Error{Code: "23505"}))
	assert.False(t, isSerializationFailure(nil))
}
