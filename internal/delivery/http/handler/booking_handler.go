package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"therapy-booking-service/internal/delivery/dto"
	"therapy-booking-service/internal/usecase"
	"therapy-booking-service/pkg/response"
)

type BookingHandler struct {
	intakeUsecase usecase.BookingIntakeUsecase
}

func NewBookingHandler(intakeUsecase usecase.BookingIntakeUsecase) *BookingHandler {
	return &BookingHandler{
		intakeUsecase: intakeUsecase,
	}
}

func (h *BookingHandler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	result, err := h.intakeUsecase.SubmitBooking(r.Context(), &req)
	if err != nil {
		var validationErr *usecase.ValidationFailedError
		if errors.As(err, &validationErr) {
			response.ValidationError(w, dto.ValidationFailureResponse{
				Stage:   validationErr.Stage,
				Message: validationErr.Message,
				Fields:  validationErr.Fields,
			})
			return
		}

		var submissionErr *usecase.SubmissionFailedError
		if errors.As(err, &submissionErr) {
			response.Error(w, submissionErr.Outcome.HTTPStatus(), submissionErr.Message, submissionErr.Outcome.Detail)
			return
		}

		response.InternalServerError(w, "Failed to submit booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking submitted successfully", result)
}

func (h *BookingHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.Error(w, http.StatusBadRequest, "Query parameter 'date' is required", nil)
		return
	}

	slots, err := h.intakeUsecase.AvailableSlots(r.Context(), date)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidSlotDate) {
			response.Error(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", nil)
			return
		}
		response.InternalServerError(w, "Failed to derive time slots")
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}
