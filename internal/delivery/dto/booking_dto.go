package dto

// Request DTOs

// SubmitBookingRequest is the inbound payload for the validated intake
// endpoint. Field names follow the public form contract (camelCase). The
// required tags cover the stage-one gate; consent, ZIP, schedule and
// date-of-birth rules run as later stages so failures surface in order.
type SubmitBookingRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`

	DateOfBirth string `json:"dateOfBirth"`
	BirthMonth  string `json:"birthMonth"`
	BirthYear   string `json:"birthYear"`
	Address     string `json:"address"`
	ZipCode     string `json:"zipCode"`
	Gender      string `json:"gender"`

	AppointmentType string `json:"appointmentType"`
	PreferredDate   string `json:"preferredDate"`
	PreferredTime   string `json:"preferredTime"`
	SessionFormat   string `json:"sessionFormat"`

	ReasonForVisit string `json:"reasonForVisit"`
	AdditionalInfo string `json:"additionalInfo"`

	ConsultationConsent  bool `json:"consultationConsent"`
	CommunicationConsent bool `json:"communicationConsent"`
	PrivacyConsent       bool `json:"privacyConsent"`

	Type string `json:"type"`

	// DraftKey identifies the caller's auto-saved draft, deleted once the
	// submission succeeds.
	DraftKey string `json:"draftKey"`
}

// Response DTOs

type SubmissionResponse struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	Message           string `json:"message"`
	CloseDelaySeconds int    `json:"close_delay_seconds"`
}

type SlotListResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
	Total int      `json:"total"`
}

// ValidationFailureResponse reports one failed validation stage: a combined
// message plus every form field to highlight.
type ValidationFailureResponse struct {
	Stage   string   `json:"stage"`
	Message string   `json:"message"`
	Fields  []string `json:"fields"`
}
