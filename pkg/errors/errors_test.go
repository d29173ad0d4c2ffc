package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "freezer-inventory/pkg/errors"
)

func TestHTTPErrorAs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", pkgErrors.NewHTTPErrorCode(http.StatusBadRequest, 110001, "text is required"))

	var he *pkgErrors.HTTPError
	if !errors.As(wrapped, &he) {
		t.Fatal("expected errors.As to find HTTPError")
	}
	if he.StatusCode != http.StatusBadRequest || he.Code != 110001 || he.Message != "text is required" {
		t.Errorf("unexpected HTTPError: %+v", he)
	}
	if he.Error() != "400: text is required" {
		t.Errorf("Error() = %q", he.Error())
	}
}

func TestNewHTTPError(t *testing.T) {
	he := pkgErrors.NewHTTPError(http.StatusConflict, "conflict")
	if he.Code != http.StatusConflict {
		t.Errorf("Code = %d, want %d", he.Code, http.StatusConflict)
	}
}
