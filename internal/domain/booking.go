package domain

import (
	"time"

	"github.com/avtoline-dev/STO-SiteService/pkg/types"
)

// Booking represents a confirmed appointment at the service station.
// Lives only in process memory for the lifetime of the page session.
type Booking struct {
	ID          string // uuid
	ClientName  string
	ClientPhone string
	BookingDate time.Time
	StartTime   types.TimeString

	// Denormalized selection data for history
	Services             []ServiceItem
	TotalPrice           float64
	TotalDurationMinutes int

	Comment *string

	CreatedAt time.Time
}

// DateKey возвращает ключ даты бронирования
func (b *Booking) DateKey() string {
	return DateKey(b.BookingDate)
}
