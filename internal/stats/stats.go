// Package stats contains speed and accuracy calculations and reporting.
package stats

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"
)

// ErrDivisionGuard is returned when speed is requested for a non-positive
// amount of time or the time is too small for the speed to fit an int.
var ErrDivisionGuard = errors.New("elapsed time must be positive")

const charsPerWord = 5.0

// Unit is the speed unit of a result.
type Unit string

const (
	// UnitCPM is characters per minute, used for Cyrillic text.
	UnitCPM Unit = "cpm"
	// UnitWPM is words per minute with five characters per word.
	UnitWPM Unit = "wpm"
)

// UnitFor returns the speed unit for the detected script.
func UnitFor(russian bool) Unit {
	if russian {
		return UnitCPM
	}
	return UnitWPM
}

// Result is the final score of a round.
type Result struct {
	Speed    int
	Unit     Unit
	Accuracy int
}

// TypingSpeed returns characters per minute for russian text and words per
// minute otherwise, floored to an integer.
func TypingSpeed(chars int, minutes float64, russian bool) (int, error) {
	if math.IsNaN(minutes) || minutes <= 0 {
		return 0, fmt.Errorf("%w: got %v minutes", ErrDivisionGuard, minutes)
	}
	if chars < 0 {
		chars = 0
	}
	speed := float64(chars) / minutes
	if !russian {
		speed = float64(chars) / charsPerWord / minutes
	}
	if math.IsInf(speed, 0) || speed >= float64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %v minutes is too short", ErrDivisionGuard, minutes)
	}
	return int(math.Floor(speed)), nil
}

// Accuracy returns the share of the target typed without errors, in percent.
// Errors are typed characters that were never correct; the result is clamped
// to [0, 100].
func Accuracy(correct, total, targetLen int) int {
	if total == 0 || targetLen <= 0 {
		return 0
	}
	errs := total - correct
	errPct := float64(errs) * 100 / float64(targetLen)
	acc := 100 - errPct
	if acc < 0 {
		acc = 0
	}
	if acc > 100 {
		acc = 100
	}
	return int(math.Floor(acc))
}

// Compute scores a finished round from its counters and elapsed time.
func Compute(correct, total, targetLen int, elapsed time.Duration, russian bool) (Result, error) {
	speed, err := TypingSpeed(correct, elapsed.Minutes(), russian)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Speed:    speed,
		Unit:     UnitFor(russian),
		Accuracy: Accuracy(correct, total, targetLen),
	}, nil
}

// RenderResult prints a result table.
func RenderResult(w io.Writer, r Result) error {
	headers := []string{"Metric", "Value"}
	rows := [][]string{
		{"Speed", fmt.Sprintf("%d %s", r.Speed, r.Unit)},
		{"Accuracy", fmt.Sprintf("%d%%", r.Accuracy)},
	}
	lines := formatTable(headers, rows, map[int]bool{1: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
