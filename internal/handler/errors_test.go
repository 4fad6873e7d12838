package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/coworking-reservation/internal/domain"
)

func TestStatusForCategory(t *testing.T) {
	cases := []struct {
		cat  domain.ErrorCategory
		want int
	}{
		{domain.CategoryValidation, http.StatusBadRequest},
		{domain.CategoryNotFound, http.StatusNotFound},
		{domain.CategoryConflict, http.StatusConflict},
		{domain.CategoryUnauthorized, http.StatusUnauthorized},
		{domain.CategoryForbidden, http.StatusForbidden},
		{domain.CategoryException, http.StatusInternalServerError},
		{domain.CategoryUnexpected, http.StatusInternalServerError},
		{domain.CategoryFailure, http.StatusBadRequest},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusForCategory(tc.cat), tc.cat.String())
	}
}

func TestFailJSONWritesEveryError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	errs := []domain.Error{
		domain.NewError("email.required", "email must not be empty", domain.CategoryValidation),
		domain.NewError("password.too_short", "password must be at least 8 characters", domain.CategoryValidation),
	}
	require.NoError(t, failJSON(c, errs))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors []errorBody `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "email.required", body.Errors[0].Code)
	assert.Equal(t, "validation", body.Errors[0].Category)
	assert.Equal(t, "password.too_short", body.Errors[1].Code)
}

func TestFailJSONConflictStatus(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	errs := []domain.Error{
		domain.NewError("seat.not_available", "seat taken", domain.CategoryConflict),
	}
	require.NoError(t, failJSON(c, errs))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
