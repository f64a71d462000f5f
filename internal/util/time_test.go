package util

import (
	"testing"
	"time"
)

func TestFromUnixSecondsKeepsFraction(t *testing.T) {
	got := FromUnixSeconds(1700000000.5)

	if got.Unix() != 1700000000 {
		t.Fatalf("expected seconds 1700000000, got %d", got.Unix())
	}
	if got.Nanosecond() != int(500*time.Millisecond) {
		t.Fatalf("expected 500ms fraction, got %d ns", got.Nanosecond())
	}
}

func TestFromUnixSecondsZero(t *testing.T) {
	if got := FromUnixSeconds(0); !got.Equal(time.Unix(0, 0)) {
		t.Fatalf("expected epoch, got %v", got)
	}
}
