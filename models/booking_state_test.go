package models

import "testing"

func TestBookingStateTransitions(t *testing.T) {
	cases := []struct {
		name       string
		from       int
		action     string
		wantStatus int
		wantErr    bool
	}{
		{"pending confirm", BookingStatusPending, "confirm", BookingStatusConfirmed, false},
		{"pending cancel", BookingStatusPending, "cancel", BookingStatusCancelled, false},
		{"pending complete", BookingStatusPending, "complete", BookingStatusPending, true},
		{"confirmed complete", BookingStatusConfirmed, "complete", BookingStatusCompleted, false},
		{"confirmed cancel", BookingStatusConfirmed, "cancel", BookingStatusCancelled, false},
		{"confirmed confirm", BookingStatusConfirmed, "confirm", BookingStatusConfirmed, true},
		{"completed cancel", BookingStatusCompleted, "cancel", BookingStatusCompleted, true},
		{"cancelled confirm", BookingStatusCancelled, "confirm", BookingStatusCancelled, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			booking := &Booking{Status: tc.from}
			state := GetBookingState(tc.from)

			var err error
			switch tc.action {
			case "confirm":
				err = state.Confirm(booking)
			case "cancel":
				err = state.Cancel(booking)
			case "complete":
				err = state.Complete(booking)
			}

			if tc.wantErr && err == nil {
				t.Fatal("expected transition error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if booking.Status != tc.wantStatus {
				t.Errorf("expected status %d, got %d", tc.wantStatus, booking.Status)
			}
		})
	}
}
