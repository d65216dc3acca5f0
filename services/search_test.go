package services

import (
	"testing"

	"stayinn/models"
)

func TestNormalizeInput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Deluxe Garden  ", "deluxe garden"},
		{"Phòng Déluxe", "phong deluxe"},
		{"SUITE", "suite"},
	}
	for _, tc := range cases {
		if got := NormalizeInput(tc.in); got != tc.want {
			t.Errorf("NormalizeInput(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("deluxe", "deluxe"); got != 1.0 {
		t.Errorf("identical strings must score 1.0, got %v", got)
	}
	if got := Similarity("", ""); got != 1.0 {
		t.Errorf("empty strings must score 1.0, got %v", got)
	}
	if got := Similarity("deluxe", "standard"); got > 0.5 {
		t.Errorf("unrelated strings must score low, got %v", got)
	}
}

func TestSearchRooms_SubstringAndAccents(t *testing.T) {
	rooms := []models.Room{
		{RoomId: 1, RoomName: "Deluxe Garden"},
		{RoomId: 2, RoomName: "Standard Twin"},
		{RoomId: 3, RoomName: "Family Suite"},
	}

	got := SearchRooms(rooms, "déluxe", 2)
	if len(got) == 0 || got[0].RoomId != 1 {
		t.Fatalf("expected Deluxe Garden first, got %+v", got)
	}
}

func TestSearchRooms_LimitAndEmptyQuery(t *testing.T) {
	rooms := []models.Room{
		{RoomId: 1, RoomName: "Suite A"},
		{RoomId: 2, RoomName: "Suite B"},
		{RoomId: 3, RoomName: "Suite C"},
	}

	if got := SearchRooms(rooms, "suite", 2); len(got) > 2 {
		t.Errorf("expected at most 2 results, got %d", len(got))
	}
	if got := SearchRooms(rooms, "   ", 2); got != nil {
		t.Errorf("blank query must return nothing, got %+v", got)
	}
}
