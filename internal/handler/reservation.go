package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/coworking-reservation/internal/domain"
	"github.com/iliyamo/coworking-reservation/internal/queue"
	"github.com/iliyamo/coworking-reservation/internal/repository"
	queue_publisher "github.com/iliyamo/coworking-reservation/internal/service"
)

var (
	errSeatIDInvalid = domain.NewError(
		"reservation.seat_id_invalid", "seat_id must be a valid uuid", domain.CategoryValidation)
	errNotOwner = domain.NewError(
		"reservation.not_owner", "reservation belongs to another user", domain.CategoryForbidden)
)

// SeatStore is the slice of the seat repository the reservation
// endpoints need.
type SeatStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Seat, error)
}

// ReservationStore is the reservation repository surface.  It embeds
// the domain availability predicate so the same store backs both
// persistence and the invariant check.
type ReservationStore interface {
	domain.SeatAvailability
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Reservation, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]repository.ReservationDetail, error)
	Update(ctx context.Context, res *domain.Reservation) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// ReservationHandler serves the member-facing reservation endpoints.
// The reservation store doubles as the domain's availability
// predicate.
type ReservationHandler struct {
	Reservations ReservationStore
	Seats        SeatStore
}

func NewReservationHandler(r *repository.ReservationRepo, s *repository.SeatRepo) *ReservationHandler {
	return &ReservationHandler{Reservations: r, Seats: s}
}

type reservationCreateReq struct {
	SeatID string `json:"seat_id"`
	Date   string `json:"date"`
}

// Validate checks the request's shape: both fields present, the seat
// id a parseable uuid.  Date format is left to ParseDate so its error
// carries the domain code.
func (r reservationCreateReq) Validate() []domain.Error {
	var errs []domain.Error
	if strings.TrimSpace(r.SeatID) == "" {
		errs = append(errs, domain.ErrReservationSeatRequired)
	} else if _, err := uuid.Parse(r.SeatID); err != nil {
		errs = append(errs, errSeatIDInvalid)
	}
	if strings.TrimSpace(r.Date) == "" {
		errs = append(errs, domain.ErrDateRequired)
	}
	return errs
}

type reservationUpdateReq struct {
	SeatID *string `json:"seat_id"`
	Date   *string `json:"date"`
}

// Validate checks only the fields the client sent.
func (r reservationUpdateReq) Validate() []domain.Error {
	var errs []domain.Error
	if r.SeatID != nil {
		if _, err := uuid.Parse(*r.SeatID); err != nil {
			errs = append(errs, errSeatIDInvalid)
		}
	}
	if r.Date != nil && strings.TrimSpace(*r.Date) == "" {
		errs = append(errs, domain.ErrDateRequired)
	}
	return errs
}

type reservationResp struct {
	ID         uuid.UUID `json:"id"`
	SeatID     uuid.UUID `json:"seat_id"`
	SeatName   string    `json:"seat_name,omitempty"`
	ReservedOn string    `json:"reserved_on"`
}

// Create books a seat for the authenticated user on one day.  The
// availability check inside the entity decides the happy path; the
// unique (seat, day) index decides races, surfacing as the same
// conflict.
func (h *ReservationHandler) Create(c echo.Context) error {
	uid, ok := getUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req reservationCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if res := domain.Validate(req); res.IsFailure() {
		return failJSON(c, res.Errors())
	}

	dateRes := domain.ParseDate(strings.TrimSpace(req.Date))
	if dateRes.IsFailure() {
		return failJSON(c, dateRes.Errors())
	}
	date := dateRes.Value()
	seatID := uuid.MustParse(req.SeatID)

	ctx, cancel := reqCtx(c)
	defer cancel()

	seat, err := h.loadSeat(c, ctx, seatID)
	if seat == nil {
		return err
	}
	if seat.IsBlocked() {
		return failJSON(c, []domain.Error{domain.ErrSeatBlocked})
	}

	res := domain.NewReservation(ctx, uuid.New(), uid, seatID, date, h.Reservations)
	if res.IsFailure() {
		return failJSON(c, res.Errors())
	}
	reservation := res.Value()

	if err := h.Reservations.Create(ctx, reservation); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return failJSON(c, []domain.Error{domain.SeatNotAvailable(seatID, date)})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create reservation failed"})
	}

	h.publish(queue.EventReservationConfirmed, reservation, seat.Name().String())
	return c.JSON(http.StatusCreated, reservationResp{
		ID:         reservation.ID(),
		SeatID:     reservation.SeatID(),
		SeatName:   seat.Name().String(),
		ReservedOn: reservation.Date().String(),
	})
}

// ListMine returns the user's reservations, newest first.
func (h *ReservationHandler) ListMine(c echo.Context) error {
	uid, ok := getUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	details, err := h.Reservations.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": details})
}

// Get returns one of the user's reservations.
func (h *ReservationHandler) Get(c echo.Context) error {
	uid, ok := getUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	rec, err := h.Reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if rec.UserID != uid {
		return failJSON(c, []domain.Error{errNotOwner})
	}
	return c.JSON(http.StatusOK, reservationResp{
		ID:         rec.ID,
		SeatID:     rec.SeatID,
		ReservedOn: rec.ReservedOn.UTC().Format("2006-01-02"),
	})
}

// Update moves a reservation to another seat and/or day.  The entity
// checks availability once, against the final (seat, day) slot; a
// failed check leaves the stored reservation untouched.
func (h *ReservationHandler) Update(c echo.Context) error {
	uid, ok := getUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	var req reservationUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if res := domain.Validate(req); res.IsFailure() {
		return failJSON(c, res.Errors())
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	rec, err := h.Reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if rec.UserID != uid {
		return failJSON(c, []domain.Error{errNotOwner})
	}
	reservation, err := rec.Domain()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "corrupt reservation row"})
	}

	targetSeatID := reservation.SeatID()
	if req.SeatID != nil {
		targetSeatID = uuid.MustParse(*req.SeatID)
	}
	targetDate := reservation.Date()
	if req.Date != nil {
		dateRes := domain.ParseDate(strings.TrimSpace(*req.Date))
		if dateRes.IsFailure() {
			return failJSON(c, dateRes.Errors())
		}
		targetDate = dateRes.Value()
	}

	// Every move lands on a seat that must exist and be bookable.
	// This covers date-only moves too: extending a stay on a since-
	// blocked seat is a new booking on that seat.
	seat, werr := h.loadSeat(c, ctx, targetSeatID)
	if seat == nil {
		return werr
	}
	if seat.IsBlocked() {
		return failJSON(c, []domain.Error{domain.ErrSeatBlocked})
	}
	seatName := seat.Name().String()

	// One availability check against the final (seat, day) pair; the
	// slots either single-field change would pass through do not
	// matter.
	if res := reservation.Move(ctx, targetSeatID, targetDate, h.Reservations); res.IsFailure() {
		return failJSON(c, res.Errors())
	}

	if err := h.Reservations.Update(ctx, reservation); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return failJSON(c, []domain.Error{domain.SeatNotAvailable(reservation.SeatID(), reservation.Date())})
		case errors.Is(err, repository.ErrReservationNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	}

	h.publish(queue.EventReservationMoved, reservation, seatName)
	return c.JSON(http.StatusOK, reservationResp{
		ID:         reservation.ID(),
		SeatID:     reservation.SeatID(),
		SeatName:   seatName,
		ReservedOn: reservation.Date().String(),
	})
}

// Delete cancels a reservation.  Ownership is enforced in the delete
// statement itself, so another user's reservation reads as not found.
func (h *ReservationHandler) Delete(c echo.Context) error {
	uid, ok := getUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	rec, err := h.Reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	if err := h.Reservations.Delete(ctx, id, uid); err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}

	reservation, derr := rec.Domain()
	if derr == nil {
		h.publish(queue.EventReservationCancelled, reservation, "")
	}
	return c.NoContent(http.StatusNoContent)
}

// publish emits a reservation event on a detached context so a slow
// broker cannot stall or fail the HTTP response.
func (h *ReservationHandler) publish(kind string, r *domain.Reservation, seatName string) {
	ev := queue.ReservationEvent{
		Kind:          kind,
		ReservationID: r.ID().String(),
		UserID:        r.UserID().String(),
		SeatID:        r.SeatID().String(),
		SeatName:      seatName,
		ReservedOn:    r.Date().String(),
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishReservationEvent(ctx, ev)
	}()
}

// loadSeat fetches and rehydrates a seat; on failure it writes the
// response and returns (nil, writtenError).
func (h *ReservationHandler) loadSeat(c echo.Context, ctx context.Context, id uuid.UUID) (*domain.Seat, error) {
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
