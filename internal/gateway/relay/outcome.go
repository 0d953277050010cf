package relay

import "net/http"

// OutcomeKind tags the terminal classification of one upstream call.
type OutcomeKind string

const (
	OutcomeSuccess     OutcomeKind = "success"
	OutcomeClientError OutcomeKind = "client_error"
	OutcomeServerError OutcomeKind = "server_error"
	OutcomeUnavailable OutcomeKind = "unavailable"
	OutcomeTimeout     OutcomeKind = "timeout"
)

// Outcome is the classified result of relaying a payload to the AI backend.
// Image is populated only when Kind is OutcomeSuccess.
type Outcome struct {
	Kind       OutcomeKind
	StatusCode int
	Message    string
	Image      []byte
}

func (o Outcome) Success() bool {
	return o.Kind == OutcomeSuccess
}

func success(image []byte) Outcome {
	return Outcome{
		Kind:       OutcomeSuccess,
		StatusCode: http.StatusOK,
		Message:    "background removal succeeded",
		Image:      image,
	}
}

func clientError(code int, message string) Outcome {
	return Outcome{Kind: OutcomeClientError, StatusCode: code, Message: message}
}

func serverError(code int, message string) Outcome {
	return Outcome{Kind: OutcomeServerError, StatusCode: code, Message: message}
}

func unavailable() Outcome {
	return Outcome{
		Kind:       OutcomeUnavailable,
		StatusCode: http.StatusServiceUnavailable,
		Message:    "AI service unavailable",
	}
}

func timeout() Outcome {
	return Outcome{
		Kind:       OutcomeTimeout,
		StatusCode: http.StatusGatewayTimeout,
		Message:    "AI request timed out",
	}
}
