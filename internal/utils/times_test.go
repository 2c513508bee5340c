package utils

import (
	"testing"
	"time"
)

func TestTodayUsesLocation(t *testing.T) {
	now := time.Date(2025, 1, 6, 22, 30, 0, 0, time.UTC)
	msk := time.FixedZone("MSK", 3*60*60)

	if got := Today(now, time.UTC).Format("2006-01-02"); got != "2025-01-06" {
		t.Errorf("Today(UTC) = %s", got)
	}
	if got := Today(now, msk).Format("2006-01-02"); got != "2025-01-07" {
		t.Errorf("Today(MSK) = %s", got)
	}
}

func TestDateHelpers(t *testing.T) {
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	if got := DaysAgo(day, 1); got != "2025-02-28" {
		t.Errorf("DaysAgo = %s", got)
	}
	if got := StartOfYear(day); got != "2025-01-01" {
		t.Errorf("StartOfYear = %s", got)
	}
	if LoadLocation("Nowhere/City") != time.UTC {
		t.Error("LoadLocation should fall back to UTC")
	}
	if _, err := ParseDate("2025-13-01"); err == nil {
		t.Error("ParseDate accepted month 13")
	}
}
