package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/coworking-reservation/internal/domain"
	"github.com/iliyamo/coworking-reservation/internal/repository"
)

type fakeSeatStore struct {
	seats map[uuid.UUID]*repository.Seat
}

func (f *fakeSeatStore) GetByID(_ context.Context, id uuid.UUID) (*repository.Seat, error) {
	s, ok := f.seats[id]
	if !ok {
		return nil, repository.ErrSeatNotFound
	}
	return s, nil
}

type fakeReservationStore struct {
	byID    map[uuid.UUID]*repository.Reservation
	taken   map[string]bool
	updated *domain.Reservation
}

func newFakeReservationStore() *fakeReservationStore {
	return &fakeReservationStore{
		byID:  map[uuid.UUID]*repository.Reservation{},
		taken: map[string]bool{},
	}
}

func (f *fakeReservationStore) book(seatID uuid.UUID, date string) {
	f.taken[seatID.String()+"|"+date] = true
}

func (f *fakeReservationStore) IsSeatAvailable(_ context.Context, seatID uuid.UUID, date domain.Date) (bool, error) {
	return !f.taken[seatID.String()+"|"+date.String()], nil
}

func (f *fakeReservationStore) Create(_ context.Context, _ *domain.Reservation) error { return nil }

func (f *fakeReservationStore) GetByID(_ context.Context, id uuid.UUID) (*repository.Reservation, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrReservationNotFound
	}
	return r, nil
}

func (f *fakeReservationStore) ListByUser(_ context.Context, _ uuid.UUID) ([]repository.ReservationDetail, error) {
	return nil, nil
}

func (f *fakeReservationStore) Update(_ context.Context, res *domain.Reservation) error {
	f.updated = res
	return nil
}

func (f *fakeReservationStore) Delete(_ context.Context, _, _ uuid.UUID) error { return nil }

func seatRecord(id uuid.UUID, row, number string, blocked bool) *repository.Seat {
	return &repository.Seat{
		ID:         id,
		RowLabel:   row,
		SeatNumber: number,
		IsBlocked:  blocked,
	}
}

func reservationRecord(id, userID, seatID uuid.UUID, day string) *repository.Reservation {
	on, _ := time.Parse("2006-01-02", day)
	return &repository.Reservation{ID: id, UserID: userID, SeatID: seatID, ReservedOn: on}
}

func patchReservation(h *ReservationHandler, resID, userID uuid.UUID, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/reservations/:id")
	c.SetParamNames("id")
	c.SetParamValues(resID.String())
	c.Set("user_id", userID.String())
	_ = h.Update(c)
	return rec
}

func TestReservationCreateReqValidate(t *testing.T) {
	ok := reservationCreateReq{SeatID: uuid.New().String(), Date: "2026-09-10"}
	assert.Empty(t, ok.Validate())

	missing := reservationCreateReq{}
	errs := missing.Validate()
	require.Len(t, errs, 2)
	assert.Equal(t, domain.ErrReservationSeatRequired.Code, errs[0].Code)
	assert.Equal(t, domain.ErrDateRequired.Code, errs[1].Code)

	badID := reservationCreateReq{SeatID: "not-a-uuid", Date: "2026-09-10"}
	errs = badID.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "reservation.seat_id_invalid", errs[0].Code)
}

func TestUpdateMovesSeatAndDateAsOneSlot(t *testing.T) {
	resID, userID := uuid.New(), uuid.New()
	seat1, seat2 := uuid.New(), uuid.New()

	seats := &fakeSeatStore{seats: map[uuid.UUID]*repository.Seat{
		seat1: seatRecord(seat1, "A", "1", false),
		seat2: seatRecord(seat2, "B", "2", false),
	}}
	store := newFakeReservationStore()
	store.byID[resID] = reservationRecord(resID, userID, seat1, "2026-09-10")
	// Both intermediate hops collide; only the final slot is free.
	store.book(seat2, "2026-09-10")
	store.book(seat1, "2026-09-11")

	h := &ReservationHandler{Reservations: store, Seats: seats}
	rec := patchReservation(h, resID, userID,
		`{"seat_id":"`+seat2.String()+`","date":"2026-09-11"}`)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, store.updated)
	assert.Equal(t, seat2, store.updated.SeatID())
	assert.Equal(t, "2026-09-11", store.updated.Date().String())
}

func TestUpdateRejectsDateMoveOntoBlockedSeat(t *testing.T) {
	resID, userID := uuid.New(), uuid.New()
	seatID := uuid.New()

	seats := &fakeSeatStore{seats: map[uuid.UUID]*repository.Seat{
		seatID: seatRecord(seatID, "A", "1", true),
	}}
	store := newFakeReservationStore()
	store.byID[resID] = reservationRecord(resID, userID, seatID, "2026-09-10")

	h := &ReservationHandler{Reservations: store, Seats: seats}
	rec := patchReservation(h, resID, userID, `{"date":"2026-09-11"}`)

	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "seat.blocked")
	assert.Nil(t, store.updated)
}

func TestUpdateConflictOnFinalSlot(t *testing.T) {
	resID, userID := uuid.New(), uuid.New()
	seat1, seat2 := uuid.New(), uuid.New()

	seats := &fakeSeatStore{seats: map[uuid.UUID]*repository.Seat{
		seat1: seatRecord(seat1, "A", "1", false),
		seat2: seatRecord(seat2, "B", "2", false),
	}}
	store := newFakeReservationStore()
	store.byID[resID] = reservationRecord(resID, userID, seat1, "2026-09-10")
	store.book(seat2, "2026-09-11")

	h := &ReservationHandler{Reservations: store, Seats: seats}
	rec := patchReservation(h, resID, userID,
		`{"seat_id":"`+seat2.String()+`","date":"2026-09-11"}`)

	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "seat.not_available")
	assert.Nil(t, store.updated)
}

func TestReservationUpdateReqValidateChecksOnlySentFields(t *testing.T) {
	assert.Empty(t, reservationUpdateReq{}.Validate())

	bad := "nope"
	errs := reservationUpdateReq{SeatID: &bad}.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "reservation.seat_id_invalid", errs[0].Code)

	empty := " "
	errs = reservationUpdateReq{Date: &empty}.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, domain.ErrDateRequired.Code, errs[0].Code)
}
