package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"therapy-booking-service/config"
	"therapy-booking-service/internal/converter"
	"therapy-booking-service/internal/delivery/dto"
	"therapy-booking-service/internal/domain/entity"
	"therapy-booking-service/internal/infrastructure/airtable"
	"therapy-booking-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrInvalidSlotDate = errors.New("invalid slot date")

// Validation stages, in protocol order. Validation short-circuits at the
// first failing stage.
const (
	StageRequiredFields = "required_fields"
	StageConsent        = "consent"
	StageZipFormat      = "zip_format"
	StageSchedule       = "schedule"
	StageDateOfBirth    = "date_of_birth"
)

// ValidationFailedError reports one failed stage: a combined user-facing
// message plus every form field to highlight. Submission is never attempted
// when validation fails.
type ValidationFailedError struct {
	Stage   string
	Message string
	Fields  []string
}

func (e *ValidationFailedError) Error() string {
	return e.Message
}

// SubmissionFailedError wraps a normalized downstream outcome together with
// the user-facing guidance for it.
type SubmissionFailedError struct {
	Outcome entity.SubmissionOutcome
	Message string
}

func (e *SubmissionFailedError) Error() string {
	return e.Message
}

// RecordSubmitter is the outbound half of the pipeline. Implemented by the
// Airtable client; faked in tests.
type RecordSubmitter interface {
	CreateRecord(ctx context.Context, record *airtable.Record) (*airtable.SubmitResult, *entity.SubmissionOutcome)
}

// DraftDiscarder deletes the caller's auto-saved draft once a submission
// has gone through.
type DraftDiscarder interface {
	Discard(ctx context.Context, key string) error
}

type BookingIntakeUsecase interface {
	SubmitBooking(ctx context.Context, req *dto.SubmitBookingRequest) (*dto.SubmissionResponse, error)
	AvailableSlots(ctx context.Context, date string) (*dto.SlotListResponse, error)
}

type bookingIntakeUsecase struct {
	log       *logrus.Logger
	validator *validator.CustomValidator
	submitter RecordSubmitter
	drafts    DraftDiscarder
	policy    config.BookingConfig
	now       func() time.Time
}

func NewBookingIntakeUsecase(
	log *logrus.Logger,
	customValidator *validator.CustomValidator,
	submitter RecordSubmitter,
	drafts DraftDiscarder,
	policy config.BookingConfig,
) BookingIntakeUsecase {
	return &bookingIntakeUsecase{
		log:       log,
		validator: customValidator,
		submitter: submitter,
		drafts:    drafts,
		policy:    policy,
		now:       time.Now,
	}
}

// requiredFields drives stage one. Order here is the order fields are named
// in the combined message.
var requiredFields = []struct {
	name  string // wire name, used for field highlighting
	label string // human label, used in the combined message
}{
	{"firstName", "First Name"},
	{"lastName", "Last Name"},
	{"email", "Email"},
	{"phone", "Phone"},
	{"city", "City"},
	{"state", "State"},
}

// structFieldByWireName maps wire names to the Go field names validator/v10
// reports.
var structFieldByWireName = map[string]string{
	"firstName": "FirstName",
	"lastName":  "LastName",
	"email":     "Email",
	"phone":     "Phone",
	"city":      "City",
	"state":     "State",
}

// SubmitBooking runs the staged validation protocol, projects the request
// onto the external record schema, performs the single outbound write and
// cleans up the caller's draft on success.
func (u *bookingIntakeUsecase) SubmitBooking(ctx context.Context, req *dto.SubmitBookingRequest) (*dto.SubmissionResponse, error) {
	if err := u.validate(req); err != nil {
		return nil, err
	}

	submissionID := uuid.New()
	booking := converter.SubmitRequestToBooking(req, u.policy.FormType, u.now())
	record := converter.BookingToRecord(booking)

	result, outcome := u.submitter.CreateRecord(ctx, record)
	if outcome != nil {
		u.log.Warnf("Submission %s failed: kind=%d status=%d", submissionID, outcome.Kind, outcome.Status)
		return nil, &SubmissionFailedError{
			Outcome: *outcome,
			Message: outcome.Message(u.policy.ContactPhone),
		}
	}

	if req.DraftKey != "" {
		if err := u.drafts.Discard(ctx, req.DraftKey); err != nil {
			// The record is already saved; losing the draft cleanup is
			// recoverable via TTL.
			u.log.Warnf("Failed to discard draft %s after submission %s: %+v", req.DraftKey, submissionID, err)
		}
	}

	u.log.Infof("Submission %s accepted: record=%s type=%s", submissionID, result.ID, booking.Type)

	return &dto.SubmissionResponse{
		ID:     result.ID,
		Status: string(booking.Status),
		Message: fmt.Sprintf("Thank you! I will contact you within 24 hours to schedule your %d-minute consultation.",
			u.policy.ConsultationMinutes),
		CloseDelaySeconds: int(u.policy.CloseDelay.Seconds()),
	}, nil
}

// AvailableSlots derives the offered time-slot list for a date so the
// options shown stay consistent with the submit-time lead rule.
func (u *bookingIntakeUsecase) AvailableSlots(ctx context.Context, date string) (*dto.SlotListResponse, error) {
	slots, err := entity.AvailableSlots(date, u.now())
	if err != nil {
		return nil, ErrInvalidSlotDate
	}

	return &dto.SlotListResponse{
		Date:  date,
		Slots: slots,
		Total: len(slots),
	}, nil
}

// validate executes the staged protocol in order, short-circuiting at the
// first failing stage.
func (u *bookingIntakeUsecase) validate(req *dto.SubmitBookingRequest) error {
	if err := u.checkRequiredFields(req); err != nil {
		return err
	}
	if err := u.checkConsents(req); err != nil {
		return err
	}
	if err := u.checkZipCode(req); err != nil {
		return err
	}
	if err := u.checkSchedule(req); err != nil {
		return err
	}
	return u.checkDateOfBirth(req)
}

// checkRequiredFields reports every missing required field in one combined
// message rather than stopping at the first.
func (u *bookingIntakeUsecase) checkRequiredFields(req *dto.SubmitBookingRequest) error {
	err := u.validator.Validate(req)
	if err == nil {
		return nil
	}

	fieldErrors := u.validator.FormatValidationErrors(err)

	var names, labels []string
	for _, f := range requiredFields {
		if _, missing := fieldErrors[structFieldByWireName[f.name]]; missing {
			names = append(names, f.name)
			labels = append(labels, f.label)
		}
	}

	if len(names) == 0 {
		return nil
	}

	return &ValidationFailedError{
		Stage:   StageRequiredFields,
		Message: "Please fill in the required fields: " + strings.Join(labels, ", "),
		Fields:  names,
	}
}

func (u *bookingIntakeUsecase) checkConsents(req *dto.SubmitBookingRequest) error {
	consents := []struct {
		name  string
		label string
		given bool
	}{
		{"consultationConsent", "Consultation Consent", req.ConsultationConsent},
		{"communicationConsent", "Communication Consent", req.CommunicationConsent},
		{"privacyConsent", "Privacy Consent", req.PrivacyConsent},
	}

	var names, labels []string
	for _, c := range consents {
		if !c.given {
			names = append(names, c.name)
			labels = append(labels, c.label)
		}
	}

	if len(names) == 0 {
		return nil
	}

	return &ValidationFailedError{
		Stage:   StageConsent,
		Message: "Please agree to the required consents: " + strings.Join(labels, ", "),
		Fields:  names,
	}
}

func (u *bookingIntakeUsecase) checkZipCode(req *dto.SubmitBookingRequest) error {
	if err := u.validator.ValidateVar(req.ZipCode, "omitempty,zipcode"); err != nil {
		return &ValidationFailedError{
			Stage:   StageZipFormat,
			Message: "ZIP code must be exactly 5 digits.",
			Fields:  []string{"zipCode"},
		}
	}
	return nil
}

func (u *bookingIntakeUsecase) checkSchedule(req *dto.SubmitBookingRequest) error {
	if req.PreferredDate == "" || req.PreferredTime == "" {
		return nil
	}

	now := u.now()
	at, err := entity.CombineDateTime(req.PreferredDate, req.PreferredTime, now.Location())
	if err != nil {
		return &ValidationFailedError{
			Stage:   StageSchedule,
			Message: "Please choose a valid preferred date and time.",
			Fields:  []string{"preferredDate", "preferredTime"},
		}
	}

	if !entity.IsSchedulable(at, now) {
		return &ValidationFailedError{
			Stage:   StageSchedule,
			Message: "Please choose a time at least one hour from now.",
			Fields:  []string{"preferredDate", "preferredTime"},
		}
	}

	return nil
}

// checkDateOfBirth enforces both-or-neither on the month/year selectors
func (u *bookingIntakeUsecase) checkDateOfBirth(req *dto.SubmitBookingRequest) error {
	if (req.BirthMonth == "") == (req.BirthYear == "") {
		return nil
	}

	return &ValidationFailedError{
		Stage:   StageDateOfBirth,
		Message: "Please select both a birth month and a birth year.",
		Fields:  []string{"birthMonth", "birthYear"},
	}
}
