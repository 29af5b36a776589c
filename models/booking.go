package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCompleted BookingStatus = "Completed"
	StatusCancelled BookingStatus = "Cancelled"
)

// IsValidStatus reports whether s is one of the defined booking statuses.
func IsValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Next returns the one-step advancement of the status along
// Pending -> Confirmed -> Completed. Completed and Cancelled are
// terminal; ok is false for them.
func (s BookingStatus) Next() (BookingStatus, bool) {
	switch s {
	case StatusPending:
		return StatusConfirmed, true
	case StatusConfirmed:
		return StatusCompleted, true
	}
	return s, false
}

// Booking is a customer's request for one or more services at a chosen
// date and time.
type Booking struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Date         string `json:"date"` // "YYYY-MM-DD"
	Time         string `json:"time"` // "HH:MM"
	CarDetails   string `json:"carDetails"`
	// Selected service ids, order-preserving. Entries may reference ids no
	// longer in the catalog; consumers fall back to showing the raw id.
	SelectedServices []string      `json:"selectedServices"`
	Status           BookingStatus `json:"status"`
	CreatedAt        time.Time     `json:"createdAt"`
}

// BookingInput carries the fields a customer submits. ID, status and
// creation time are assigned by the store.
type BookingInput struct {
	CustomerName     string   `json:"customerName" binding:"required"`
	Phone            string   `json:"phone" binding:"required"`
	Email            string   `json:"email" binding:"required"`
	Date             string   `json:"date" binding:"required"`
	Time             string   `json:"time" binding:"required"`
	CarDetails       string   `json:"carDetails"`
	SelectedServices []string `json:"selectedServices"`
}
