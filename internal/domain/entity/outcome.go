package entity

import (
	"fmt"
	"net/http"
)

// OutcomeKind is the closed set of ways a submission attempt can end short
// of success. Every failure path in the pipeline maps to exactly one kind.
type OutcomeKind int

const (
	OutcomeValidationError OutcomeKind = iota
	OutcomeConfigError
	OutcomeUpstreamRejected
	OutcomeNetworkFailure
	OutcomeInternalFault
)

// SubmissionOutcome is the normalized result of a failed submission.
// Status and Detail are only meaningful for OutcomeUpstreamRejected.
type SubmissionOutcome struct {
	Kind   OutcomeKind
	Status int
	Detail interface{}
}

// HTTPStatus maps the outcome to the status code returned to the caller.
func (o SubmissionOutcome) HTTPStatus() int {
	switch o.Kind {
	case OutcomeValidationError:
		return http.StatusBadRequest
	case OutcomeUpstreamRejected:
		return o.Status
	case OutcomeNetworkFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Message is the total mapping from outcome to user-facing guidance.
// contactPhone is the fallback the practice wants surfaced when the user
// cannot self-serve a fix.
func (o SubmissionOutcome) Message(contactPhone string) string {
	switch o.Kind {
	case OutcomeValidationError:
		return "Please correct the highlighted fields and try again."
	case OutcomeConfigError:
		return withPhone("We are unable to process requests right now.", contactPhone)
	case OutcomeUpstreamRejected:
		switch o.Status {
		case http.StatusInternalServerError:
			return withPhone("The scheduling service had a problem saving your request.", contactPhone)
		case http.StatusUnprocessableEntity:
			return "There was an issue with the form data. Please check your fields and try again."
		case http.StatusTooManyRequests:
			return "We are receiving a lot of requests right now. Please try again in a few minutes."
		case http.StatusUnauthorized:
			return withPhone("There is a configuration problem on our side.", contactPhone)
		default:
			return fmt.Sprintf("Submission failed with status %d. Please try again.", o.Status)
		}
	case OutcomeNetworkFailure:
		return "We could not reach the scheduling service. Please check your connection and try again."
	default:
		return "Something went wrong on our end. Please try again."
	}
}

func withPhone(msg, phone string) string {
	if phone == "" {
		return msg + " Please try again later."
	}
	return fmt.Sprintf("%s Please call us at %s to schedule.", msg, phone)
}
