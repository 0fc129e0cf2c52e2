package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestBusinessErrorMessages(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "invalid param", err: InvalidParam("bookedDate"), expected: "Invalid param: bookedDate"},
		{name: "missing param", err: MissingParam("name"), expected: "Missing param: name"},
		{name: "not found", err: NotFoundErr("Establishment attachment"), expected: "Establishment attachment not found"},
		{name: "already exists", err: AlreadyExists("An Establishment with this name"), expected: "An Establishment with this name already exists"},
		{name: "already booked", err: AlreadyBooked("Booked date provided"), expected: "Booked date provided is already booked"},
		{name: "past date", err: PastDate("Booked date provided"), expected: "Booked date provided can't be a past date"},
		{name: "conflict keeps message", err: Conflict("nope"), expected: "nope"},
		{name: "forbidden keeps message", err: Forbidden("Requester does not owns this establishment"), expected: "Requester does not owns this establishment"},
		{name: "wrong credentials", err: WrongCredentials(), expected: "Wrong credentials"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestIsBusinessThroughWrapping(t *testing.T) {
	err := fmt.Errorf("create booking: %w", AlreadyBooked("Booked date provided"))

	if !IsBusiness(err, CodeAlreadyBooked) {
		t.Fatal("expected wrapped error to match already_booked")
	}
	if IsBusiness(err, CodeConflict) {
		t.Fatal("did not expect conflict code to match")
	}
	if IsBusiness(errors.New("boom"), CodeAlreadyBooked) {
		t.Fatal("plain errors are not business errors")
	}
}

func TestRespondStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
	}{
		{err: InvalidParam("zipcode"), status: http.StatusBadRequest},
		{err: MissingParam("name"), status: http.StatusBadRequest},
		{err: PastDate("Booked date provided"), status: http.StatusBadRequest},
		{err: NotFoundErr("User"), status: http.StatusNotFound},
		{err: Conflict("x"), status: http.StatusConflict},
		{err: AlreadyExists("x"), status: http.StatusConflict},
		{err: AlreadyBooked("x"), status: http.StatusConflict},
		{err: Forbidden("x"), status: http.StatusForbidden},
		{err: WrongCredentials(), status: http.StatusUnauthorized},
		{err: errors.New("connection refused"), status: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			Respond(c, tc.err)

			if rec.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, rec.Code)
			}
		})
	}
}
