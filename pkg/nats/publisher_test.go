package nats

import (
	"testing"

	"vehicle-diagnosis-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "events.booking.created", Subject(events.BookingCreated("SR1", "C1", "D1", 10)))
	assert.Equal(t, "events.diagnosis.narrowed", Subject(events.DiagnosisNarrowed("S1", "C1", "V1", nil)))
}
