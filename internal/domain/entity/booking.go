package entity

import (
	"regexp"
	"time"
)

var zipCodePattern = regexp.MustCompile(`^\d{5}$`)

// IsValidZipCode reports whether a ZIP code is exactly five ASCII digits.
// Enforced on the intake path and again before the field is copied into the
// outbound record; the proxy does not trust its caller.
func IsValidZipCode(zip string) bool {
	return zipCodePattern.MatchString(zip)
}

// BookingStatus represents the lifecycle status of a booking request in the
// record-keeping system
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending Confirmation"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCancelled BookingStatus = "Cancelled"
	BookingStatusNoShow    BookingStatus = "No Show"
)

// BookingRequest is the in-memory representation of one submitted
// appointment request. Field names follow the public form contract
// (camelCase), which is also what the legacy proxy endpoint accepts.
type BookingRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	State     string `json:"state"`

	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Address     string `json:"address,omitempty"`
	ZipCode     string `json:"zipCode,omitempty"`
	Gender      string `json:"gender,omitempty"`

	AppointmentType string `json:"appointmentType,omitempty"`
	PreferredDate   string `json:"preferredDate,omitempty"`
	PreferredTime   string `json:"preferredTime,omitempty"`
	SessionFormat   string `json:"sessionFormat,omitempty"`

	ReasonForVisit string `json:"reasonForVisit,omitempty"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`

	ConsultationConsent  bool `json:"consultationConsent"`
	CommunicationConsent bool `json:"communicationConsent"`
	PrivacyConsent       bool `json:"privacyConsent"`

	Status         BookingStatus `json:"status"`
	SubmissionDate time.Time     `json:"submissionDate"`
	Type           string        `json:"type"`
}

// HasSchedulePreference reports whether the user picked both a date and a
// time slot. The lead-time rule only applies when both are present.
func (b *BookingRequest) HasSchedulePreference() bool {
	return b.PreferredDate != "" && b.PreferredTime != ""
}

// IsPending checks if the request is awaiting confirmation
func (b *BookingRequest) IsPending() bool {
	return b.Status == BookingStatusPending
}
