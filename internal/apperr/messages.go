package apperr

import "errors"

// Default user-facing messages per kind. Validation errors carry their
// own message and are rendered verbatim.
var userMessages = map[Kind]string{
	KindNetwork:      "Network error. Please check your internet connection and try again.",
	KindUnauthorized: "You are not authorized to access this content.",
	KindForbidden:    "Access to this content is forbidden.",
	KindNotFound:     "The requested content could not be found.",
	KindRateLimited:  "Too many requests. Please try again in a moment.",
	KindServer:       "The server is having trouble right now. Please try again later.",
	KindValidation:   "Invalid input.",
	KindParse:        "We couldn't read the server response. Please try again.",
	KindUnknown:      "Something went wrong. Please try again.",
}

// UserMessage formats an error chain into a message suitable for
// display. This is a presentation concern layered on top of the
// taxonomy; the pipeline itself never renders messages.
func UserMessage(err error) string {
	kind := KindOf(err)
	if kind == KindValidation {
		var ae *Error
		if errors.As(err, &ae) && ae.Message != "" {
			return ae.Message
		}
	}
	return userMessages[kind]
}
