package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		if e.Error() != "INVALID_REQUEST: Invalid request" {
			t.Fatalf("unexpected message %q", e.Error())
		}
		if e.ToHTTPError() != (HTTPError{Code: "INVALID_REQUEST", Message: "Invalid request"}) {
			t.Fatalf("unexpected http error %+v", e.ToHTTPError())
		}
	})

	t.Run("wrapped cause stays internal", func(t *testing.T) {
		cause := errors.New("dynamodb down")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to unwrap")
		}
		if e.ToHTTPError().Message != "An internal error occurred" {
			t.Fatalf("cause leaked: %+v", e.ToHTTPError())
		}
	})
}
