package converter

import (
	"testing"
	"time"

	"therapy-booking-service/internal/delivery/dto"
	"therapy-booking-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullBooking() *entity.BookingRequest {
	return &entity.BookingRequest{
		FirstName:            "Test",
		LastName:             "User",
		Email:                "test.user@example.com",
		Phone:                "540-555-0199",
		City:                 "Winchester",
		State:                "VA",
		DateOfBirth:          "01/15/1990",
		Address:              "456 Test Avenue",
		ZipCode:              "22601",
		Gender:               "female",
		AppointmentType:      "Free 15-Minute Consultation",
		PreferredDate:        "2025-01-15",
		PreferredTime:        "10:30",
		SessionFormat:        "in-person",
		ReasonForVisit:       "depression",
		AdditionalInfo:       "Test submission",
		ConsultationConsent:  true,
		CommunicationConsent: true,
		PrivacyConsent:       true,
		Status:               entity.BookingStatusPending,
		SubmissionDate:       time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC),
		Type:                 "Free Consultation",
	}
}

func TestBookingToRecord_MapsColumns(t *testing.T) {
	record := BookingToRecord(fullBooking())

	assert.Equal(t, "Test", record.Fields["First Name"])
	assert.Equal(t, "User", record.Fields["Last Name"])
	assert.Equal(t, "Winchester", record.Fields["City"])
	assert.Equal(t, "VA", record.Fields["State"])
	assert.Equal(t, "540-555-0199", record.Fields["Phone"])
	assert.Equal(t, "test.user@example.com", record.Fields["Email"])
	assert.Equal(t, "01/15/1990", record.Fields["Date Of Birth"])
	assert.Equal(t, "456 Test Avenue", record.Fields["Address"])
	assert.Equal(t, "22601", record.Fields["Zip Code"])
	assert.Equal(t, "10:30", record.Fields["Preferred Time"])
	assert.Equal(t, "Yes", record.Fields["Consultation Consent"])
	assert.Equal(t, "Yes", record.Fields["Privacy Consent"])
	assert.Equal(t, "Free Consultation", record.Fields["Type"])
	assert.Equal(t, "Pending Confirmation", record.Fields["Status"])
	assert.Equal(t, "2025-01-10T12:00:00Z", record.Fields["Submitted"])
}

func TestBookingToRecord_OmitsInvalidZip(t *testing.T) {
	booking := fullBooking()
	booking.ZipCode = "1234"

	record := BookingToRecord(booking)

	_, present := record.Fields["Zip Code"]
	assert.False(t, present)
	// Remaining mapped fields still go out
	assert.Equal(t, "Test", record.Fields["First Name"])
}

func TestBookingToRecord_MissingOptionalFieldsBecomeEmptyStrings(t *testing.T) {
	booking := &entity.BookingRequest{
		FirstName: "A",
		LastName:  "B",
		Email:     "a@b.com",
	}

	record := BookingToRecord(booking)

	assert.Equal(t, "", record.Fields["Address"])
	assert.Equal(t, "", record.Fields["Gender"])
	assert.Equal(t, "", record.Fields["Reason For Visit"])
	assert.Equal(t, "No", record.Fields["Consultation Consent"])
	assert.Equal(t, "No", record.Fields["Communication Consent"])
	assert.NotContains(t, record.Fields, "Zip Code")
	assert.NotContains(t, record.Fields, "Submitted")
}

func TestSubmitRequestToBooking_StampsMetadata(t *testing.T) {
	submittedAt := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	req := &dto.SubmitBookingRequest{
		FirstName: "A",
		LastName:  "B",
		Email:     "a@b.com",
	}

	booking := SubmitRequestToBooking(req, "Free Consultation", submittedAt)

	require.NotNil(t, booking)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, submittedAt, booking.SubmissionDate)
	assert.Equal(t, "Free Consultation", booking.Type)
	assert.True(t, booking.IsPending())
}

func TestSubmitRequestToBooking_KeepsExplicitType(t *testing.T) {
	req := &dto.SubmitBookingRequest{Type: "Contact Form"}

	booking := SubmitRequestToBooking(req, "Free Consultation", time.Now())

	assert.Equal(t, "Contact Form", booking.Type)
}

func TestSubmitRequestToBooking_DerivesDateOfBirthFromSelectors(t *testing.T) {
	req := &dto.SubmitBookingRequest{BirthMonth: "01", BirthYear: "1990"}

	booking := SubmitRequestToBooking(req, "Free Consultation", time.Now())

	assert.Equal(t, "01/1990", booking.DateOfBirth)
}

func TestSubmitRequestToBooking_PrefersExplicitDateOfBirth(t *testing.T) {
	req := &dto.SubmitBookingRequest{
		DateOfBirth: "01/15/1990",
		BirthMonth:  "02",
		BirthYear:   "1991",
	}

	booking := SubmitRequestToBooking(req, "Free Consultation", time.Now())

	assert.Equal(t, "01/15/1990", booking.DateOfBirth)
}
