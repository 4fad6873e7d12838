package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/coworking-reservation/internal/domain"
	"github.com/iliyamo/coworking-reservation/internal/repository"
)

var errSeatHasReservations = domain.NewError(
	"seat.has_reservations", "seat cannot be deleted while reservations exist", domain.CategoryConflict)

// SeatHandler serves the floor-plan administration endpoints.
type SeatHandler struct {
	Seats *repository.SeatRepo
}

func NewSeatHandler(s *repository.SeatRepo) *SeatHandler {
	return &SeatHandler{Seats: s}
}

type seatCreateReq struct {
	SeatNumber  string `json:"seat_number"`
	Row         string `json:"row"`
	Description string `json:"description"`
}

type seatUpdateReq struct {
	SeatNumber  *string `json:"seat_number"`
	Row         *string `json:"row"`
	Description *string `json:"description"`
}

type seatResp struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Row         string    `json:"row"`
	SeatNumber  string    `json:"seat_number"`
	IsBlocked   bool      `json:"is_blocked"`
	Description string    `json:"description,omitempty"`
}

func seatToResp(s *domain.Seat) seatResp {
	return seatResp{
		ID:          s.ID(),
		Name:        s.Name().String(),
		Row:         s.Name().Row().String(),
		SeatNumber:  s.Name().Number().String(),
		IsBlocked:   s.IsBlocked(),
		Description: s.Description().String(),
	}
}

// Create adds a seat to the floor plan.  All field violations come
// back together; a name collision is a conflict.
func (h *SeatHandler) Create(c echo.Context) error {
	var req seatCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	res := domain.NewSeat(uuid.New(),
		strings.TrimSpace(req.SeatNumber), strings.TrimSpace(req.Row), req.Description)
	if res.IsFailure() {
		return failJSON(c, res.Errors())
	}
	seat := res.Value()

	ctx, cancel := reqCtx(c)
	defer cancel()

	unique, err := h.Seats.IsNameUnique(ctx, seat.Name(), uuid.Nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "uniqueness check failed"})
	}
	if !unique {
		return failJSON(c, []domain.Error{domain.SeatNameTaken(seat.Name())})
	}
	if err := h.Seats.Create(ctx, seat); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return failJSON(c, []domain.Error{domain.SeatNameTaken(seat.Name())})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create seat failed"})
	}
	return c.JSON(http.StatusCreated, seatToResp(seat))
}

// List returns the whole floor plan ordered by row and number.
func (h *SeatHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	records, err := h.Seats.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]seatResp, 0, len(records))
	for i := range records {
		seat, err := records[i].Domain()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "corrupt seat row"})
		}
		out = append(out, seatToResp(seat))
	}
	return c.JSON(http.StatusOK, echo.Map{"seats": out})
}

// Get returns one seat.
func (h *SeatHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	seat, err := h.load(c, ctx, id)
	if seat == nil {
		return err
	}
	return c.JSON(http.StatusOK, seatToResp(seat))
}

// Update renames a seat and/or replaces its description.  Omitted
// fields keep their current values; a failed validation leaves the
// seat untouched.
func (h *SeatHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat id"})
	}
	var req seatUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	seat, err := h.load(c, ctx, id)
	if seat == nil {
		return err
	}

	if req.SeatNumber != nil || req.Row != nil {
		number := seat.Name().Number().String()
		row := seat.Name().Row().String()
		if req.SeatNumber != nil {
			number = strings.TrimSpace(*req.SeatNumber)
		}
		if req.Row != nil {
			row = strings.TrimSpace(*req.Row)
		}
		if res := seat.ChangeName(number, row); res.IsFailure() {
			return failJSON(c, res.Errors())
		}
		unique, err := h.Seats.IsNameUnique(ctx, seat.Name(), seat.ID())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "uniqueness check failed"})
		}
		if !unique {
			return failJSON(c, []domain.Error{domain.SeatNameTaken(seat.Name())})
		}
	}
	if req.Description != nil {
		if res := seat.ChangeDescription(*req.Description); res.IsFailure() {
			return failJSON(c, res.Errors())
		}
	}

	if err := h.Seats.Update(ctx, seat); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return failJSON(c, []domain.Error{domain.SeatNameTaken(seat.Name())})
		case errors.Is(err, repository.ErrSeatNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	}
	return c.JSON(http.StatusOK, seatToResp(seat))
}

// Block withholds a seat from new reservations; existing bookings are
// untouched.
func (h *SeatHandler) Block(c echo.Context) error {
	return h.setBlocked(c, true)
}

// Unblock makes a seat bookable again.
func (h *SeatHandler) Unblock(c echo.Context) error {
	return h.setBlocked(c, false)
}

func (h *SeatHandler) setBlocked(c echo.Context, blocked bool) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	seat, err := h.load(c, ctx, id)
	if seat == nil {
		return err
	}
	if blocked {
		seat.Block()
	} else {
		seat.Unblock()
	}
	if err := h.Seats.Update(ctx, seat); err != nil {
		if errors.Is(err, repository.ErrSeatNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, seatToResp(seat))
}

// Delete removes a seat.  Seats with live reservations cannot go; the
// foreign key reports that as a conflict.
func (h *SeatHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Seats.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrConflict):
			return failJSON(c, []domain.Error{errSeatHasReservations})
		case errors.Is(err, repository.ErrSeatNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// load fetches and rehydrates a seat; on failure it writes the
// response and returns (nil, writtenError).
func (h *SeatHandler) load(c echo.Context, ctx context.Context, id uuid.UUID) (*domain.Seat, error) {
	rec, err := h.Seats.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSeatNotFound) {
			return nil, c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
		}
		return nil, c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	seat, err := rec.Domain()
	if err != nil {
		return nil, c.JSON(http.StatusInternalServerError, echo.Map{"error": "corrupt seat row"})
	}
	return seat, nil
}
