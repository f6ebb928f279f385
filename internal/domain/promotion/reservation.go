package promotion

import (
	"errors"
	"time"
)

var (
	ErrEmptyReservationID  = errors.New("reservation id cannot be empty")
	ErrReservationReleased = errors.New("reservation is already released")
	ErrReservationConsumed = errors.New("reservation is already confirmed")
)

type ReservationStatus string

const (
	StatusReserved  ReservationStatus = "reserved"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusReleased  ReservationStatus = "released"
)

// Reservation is a provisional claim on one promotion unit. The backend owns
// the record; the client only holds the id it needs to confirm, and a
// never-confirmed reservation expires server-side after a bounded TTL.
type Reservation struct {
	id          string
	promotionID string
	createdAt   time.Time
	status      ReservationStatus
}

func NewReservation(id, promotionID string, createdAt time.Time) (*Reservation, error) {
	if id == "" {
		return nil, ErrEmptyReservationID
	}
	if promotionID == "" {
		return nil, ErrEmptyID
	}
	return &Reservation{
		id:          id,
		promotionID: promotionID,
		createdAt:   createdAt,
		status:      StatusReserved,
	}, nil
}

// Confirm marks the unit permanently consumed. Confirming an
// already-confirmed reservation is a no-op so a retried success path cannot
// double-consume.
func (r *Reservation) Confirm() error {
	switch r.status {
	case StatusConfirmed:
		return nil
	case StatusReleased:
		return ErrReservationReleased
	}
	r.status = StatusConfirmed
	return nil
}

// Release returns the unit to the pool. Idempotent; a confirmed reservation
// can no longer be released.
func (r *Reservation) Release() error {
	switch r.status {
	case StatusReleased:
		return nil
	case StatusConfirmed:
		return ErrReservationConsumed
	}
	r.status = StatusReleased
	return nil
}

func (r *Reservation) IsConfirmed() bool { return r.status == StatusConfirmed }

func (r *Reservation) ID() string                { return r.id }
func (r *Reservation) PromotionID() string       { return r.promotionID }
func (r *Reservation) CreatedAt() time.Time      { return r.createdAt }
func (r *Reservation) Status() ReservationStatus { return r.status }
