package converter

import (
	"fmt"
	"time"

	"therapy-booking-service/internal/delivery/dto"
	"therapy-booking-service/internal/domain/entity"
)

// SubmitRequestToBooking builds the BookingRequest entity from a validated
// intake payload, stamping the pending status, the capture-time submission
// date and the form-variant discriminator.
func SubmitRequestToBooking(req *dto.SubmitBookingRequest, defaultType string, submittedAt time.Time) *entity.BookingRequest {
	formType := req.Type
	if formType == "" {
		formType = defaultType
	}

	dateOfBirth := req.DateOfBirth
	if dateOfBirth == "" && req.BirthMonth != "" && req.BirthYear != "" {
		dateOfBirth = fmt.Sprintf("%s/%s", req.BirthMonth, req.BirthYear)
	}

	return &entity.BookingRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		City:      req.City,
		State:     req.State,

		DateOfBirth: dateOfBirth,
		Address:     req.Address,
		ZipCode:     req.ZipCode,
		Gender:      req.Gender,

		AppointmentType: req.AppointmentType,
		PreferredDate:   req.PreferredDate,
		PreferredTime:   req.PreferredTime,
		SessionFormat:   req.SessionFormat,

		ReasonForVisit: req.ReasonForVisit,
		AdditionalInfo: req.AdditionalInfo,

		ConsultationConsent:  req.ConsultationConsent,
		CommunicationConsent: req.CommunicationConsent,
		PrivacyConsent:       req.PrivacyConsent,

		Status:         entity.BookingStatusPending,
		SubmissionDate: submittedAt,
		Type:           formType,
	}
}

// DraftToResponse converts a stored draft to its response DTO
func DraftToResponse(key string, draft *entity.LocalDraft) *dto.DraftResponse {
	if draft == nil {
		return nil
	}
	return &dto.DraftResponse{
		Key:        key,
		Fields:     draft.Fields,
		Checkboxes: draft.Checkboxes,
		UpdatedAt:  draft.UpdatedAt,
	}
}
