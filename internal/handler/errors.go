package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/coworking-reservation/internal/domain"
)

// statusForCategory maps a domain error category to an HTTP status.
// When a failure carries several errors the first one decides the
// status; validation aggregates are homogeneous so this is stable.
func statusForCategory(cat domain.ErrorCategory) int {
	switch cat {
	case domain.CategoryValidation:
		return http.StatusBadRequest
	case domain.CategoryNotFound:
		return http.StatusNotFound
	case domain.CategoryConflict:
		return http.StatusConflict
	case domain.CategoryUnauthorized:
		return http.StatusUnauthorized
	case domain.CategoryForbidden:
		return http.StatusForbidden
	case domain.CategoryException, domain.CategoryUnexpected:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

type errorBody struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Category string `json:"category"`
}

// failJSON writes a failed Result's error list as a JSON body.  Every
// error in the aggregate is returned so the client can surface all
// field problems at once.
func failJSON(c echo.Context, errs []domain.Error) error {
	body := make([]errorBody, 0, len(errs))
	for _, e := range errs {
		body = append(body, errorBody{
			Code:     e.Code,
			Message:  e.Message,
			Category: e.Category.String(),
		})
	}
	status := http.StatusBadRequest
	if len(errs) > 0 {
		status = statusForCategory(errs[0].Category)
	}
	return c.JSON(status, echo.Map{"errors": body})
}
