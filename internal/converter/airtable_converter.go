package converter

import (
	"time"

	"therapy-booking-service/internal/domain/entity"
	"therapy-booking-service/internal/infrastructure/airtable"
)

// BookingToRecord projects a BookingRequest onto the Airtable column
// schema. The mapping is a deterministic rename: missing optional fields
// become empty strings, consent flags become "Yes"/"No", and the ZIP code
// is only included when it passes the five-digit rule.
func BookingToRecord(booking *entity.BookingRequest) *airtable.Record {
	fields := map[string]interface{}{
		"First Name": booking.FirstName,
		"Last Name":  booking.LastName,
		"City":       booking.City,
		"State":      booking.State,
		"Phone":      booking.Phone,
		"Email":      booking.Email,

		"Date Of Birth": booking.DateOfBirth,
		"Gender":        booking.Gender,
		"Address":       booking.Address,

		"Appointment Type": booking.AppointmentType,
		"Preferred Date":   booking.PreferredDate,
		"Preferred Time":   booking.PreferredTime,
		"Session Format":   booking.SessionFormat,

		"Reason For Visit":       booking.ReasonForVisit,
		"Additional Information": booking.AdditionalInfo,

		"Consultation Consent":  consentValue(booking.ConsultationConsent),
		"Communication Consent": consentValue(booking.CommunicationConsent),
		"Privacy Consent":       consentValue(booking.PrivacyConsent),

		"Type":   booking.Type,
		"Status": string(booking.Status),
	}

	if !booking.SubmissionDate.IsZero() {
		fields["Submitted"] = booking.SubmissionDate.UTC().Format(time.RFC3339)
	}

	if entity.IsValidZipCode(booking.ZipCode) {
		fields["Zip Code"] = booking.ZipCode
	}

	return &airtable.Record{Fields: fields}
}

func consentValue(given bool) string {
	if given {
		return "Yes"
	}
	return "No"
}
