package timezone_test

import (
	"slotkeeper/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestLoadLocation(t *testing.T) {
	loc, err := timezone.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	again, err := timezone.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loc != again {
		t.Error("expected the cached location to be reused")
	}

	if _, err := timezone.LoadLocation("Nowhere/Special"); err == nil {
		t.Error("expected an error for an unknown timezone")
	}

	if fallback, err := timezone.LoadLocation(""); err != nil || fallback != timezone.GetLocation() {
		t.Errorf("expected the application location, got %v (%v)", fallback, err)
	}
}
