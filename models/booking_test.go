package models

import "testing"

func TestIsValidStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   BookingStatus
		expected bool
	}{
		{"pending", StatusPending, true},
		{"confirmed", StatusConfirmed, true},
		{"completed", StatusCompleted, true},
		{"cancelled", StatusCancelled, true},
		{"unknown", "Archived", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidStatus(tt.status)
			if result != tt.expected {
				t.Errorf("IsValidStatus(%s) = %v, want %v", tt.status, result, tt.expected)
			}
		})
	}
}

func TestBookingStatus_Next(t *testing.T) {
	tests := []struct {
		name   string
		status BookingStatus
		next   BookingStatus
		ok     bool
	}{
		{"pending advances to confirmed", StatusPending, StatusConfirmed, true},
		{"confirmed advances to completed", StatusConfirmed, StatusCompleted, true},
		{"completed is terminal", StatusCompleted, StatusCompleted, false},
		{"cancelled is terminal", StatusCancelled, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := tt.status.Next()
			if next != tt.next || ok != tt.ok {
				t.Errorf("%s.Next() = (%s, %v), want (%s, %v)", tt.status, next, ok, tt.next, tt.ok)
			}
		})
	}
}
