package domain

import "time"

// Ticket is a booking of one or more entries to a destination.
type Ticket struct {
	ID             string
	BookingCode    string
	UserID         string
	DestinationID  string
	Phone          string
	TicketQuantity int
	CreatedAt      time.Time
}

// TicketDetail carries the joined user and destination fields returned by
// ticket listings.
type TicketDetail struct {
	Ticket
	Username        string
	UserEmail       string
	DestinationName string
	Location        string
}
