package tz

import (
	"testing"
	"time"
)

func TestJakartaOffset(t *testing.T) {
	at := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC).In(Jakarta)
	if _, off := at.Zone(); off != 7*60*60 {
		t.Errorf("Jakarta offset = %d; want %d", off, 7*60*60)
	}
	if at.Hour() != 7 {
		t.Errorf("Jakarta hour = %d; want 7", at.Hour())
	}
}
