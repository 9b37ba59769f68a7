package listing

import (
	"math"
	"strings"
	"testing"
)

func ptr[T any](v T) *T { return &v }

func TestDistanceKm(t *testing.T) {
	kigali := Point{Lat: -1.9441, Lng: 30.0619}
	nairobi := Point{Lat: -1.2921, Lng: 36.8219}

	d := DistanceKm(kigali, nairobi)
	if math.Abs(d-756) > 10 {
		t.Fatalf("expected roughly 756km, got %.1f", d)
	}
	if DistanceKm(kigali, kigali) != 0 {
		t.Fatalf("expected zero distance to self")
	}
}

func TestValidCoordinates(t *testing.T) {
	if !ValidCoordinates(nil, nil) {
		t.Fatalf("expected absent coordinates to be valid")
	}
	if ValidCoordinates(ptr(1.0), nil) {
		t.Fatalf("expected half-set coordinates to be invalid")
	}
	if ValidCoordinates(ptr(91.0), ptr(0.0)) {
		t.Fatalf("expected out of range latitude to be invalid")
	}
	if !ValidCoordinates(ptr(-1.9), ptr(30.1)) {
		t.Fatalf("expected valid coordinates")
	}
}

func TestMapsURL(t *testing.T) {
	withCoords := MapsURL(ptr(-1.5), ptr(30.25), "ignored")
	if withCoords != "https://www.google.com/maps/search/?api=1&query=-1.500000%2C30.250000" {
		t.Fatalf("unexpected coordinate url: %s", withCoords)
	}

	byName := MapsURL(nil, nil, "Cafe Neo, KN 4 Ave")
	if !strings.HasPrefix(byName, "https://www.google.com/maps/search/?api=1&query=") || !strings.Contains(byName, "Cafe+Neo") {
		t.Fatalf("unexpected query url: %s", byName)
	}

	if MapsURL(nil, nil, "  ") != "" {
		t.Fatalf("expected empty url when nothing to link")
	}
}
