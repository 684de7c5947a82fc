package stats

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"
)

func TestAccuracy(t *testing.T) {
	if got := Accuracy(0, 0, 10); got != 0 {
		t.Fatalf("expected 0 for nothing typed, got %d", got)
	}
	if got := Accuracy(8, 10, 10); got != 80 {
		t.Fatalf("expected 80, got %d", got)
	}
	if got := Accuracy(10, 10, 10); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestAccuracyClamps(t *testing.T) {
	if got := Accuracy(0, 30, 10); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
	if got := Accuracy(12, 10, 10); got != 100 {
		t.Fatalf("expected clamp to 100, got %d", got)
	}
	if got := Accuracy(2, 3, 3); got != 66 {
		t.Fatalf("expected floored 66, got %d", got)
	}
	if got := Accuracy(1, 1, 0); got != 0 {
		t.Fatalf("expected 0 for empty target, got %d", got)
	}
}

func TestTypingSpeed(t *testing.T) {
	got, err := TypingSpeed(300, 1.0, true)
	if err != nil {
		t.Fatalf("speed: %v", err)
	}
	if got != 300 {
		t.Fatalf("expected 300 cpm, got %d", got)
	}
	got, err = TypingSpeed(25, 1.0, false)
	if err != nil {
		t.Fatalf("speed: %v", err)
	}
	if got != 5 {
		t.Fatalf("expected 5 wpm, got %d", got)
	}
	got, err = TypingSpeed(59, 0.5, false)
	if err != nil {
		t.Fatalf("speed: %v", err)
	}
	if got != 23 {
		t.Fatalf("expected floored 23 wpm, got %d", got)
	}
}

func TestTypingSpeedDivisionGuard(t *testing.T) {
	for _, minutes := range []float64{0, -1, math.NaN(), 5e-324, 1e-300} {
		for _, russian := range []bool{true, false} {
			if got, err := TypingSpeed(100, minutes, russian); !errors.Is(err, ErrDivisionGuard) {
				t.Fatalf("expected ErrDivisionGuard for %v minutes (russian=%v), got %d, %v", minutes, russian, got, err)
			}
		}
	}
}

func TestTypingSpeedTinyTimeStaysNonNegative(t *testing.T) {
	got, err := TypingSpeed(100, 1e-12, true)
	if err != nil {
		t.Fatalf("speed: %v", err)
	}
	if got <= 0 {
		t.Fatalf("expected large positive speed, got %d", got)
	}
}

func TestCompute(t *testing.T) {
	res, err := Compute(50, 55, 60, 30*time.Second, false)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if res.Speed != 20 || res.Unit != UnitWPM || res.Accuracy != 91 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if _, err := Compute(1, 1, 1, 0, true); !errors.Is(err, ErrDivisionGuard) {
		t.Fatalf("expected ErrDivisionGuard, got %v", err)
	}
}

func TestRenderResult(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderResult(&buf, Result{Speed: 312, Unit: UnitCPM, Accuracy: 97}); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "Metric     Value\nSpeed    312 cpm\nAccuracy     97%\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant\n%q", buf.String(), want)
	}
}
