// SPDX-License-Identifier: GPL-3.0-or-later

package client

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Unit is the unit of a look-back Window.
type Unit int

const (
	Hours Unit = iota
	Days
	Weeks
)

func (u Unit) Duration() time.Duration {
	switch u {
	case Days:
		return 24 * time.Hour
	case Weeks:
		return 7 * 24 * time.Hour
	default:
		return time.Hour
	}
}

func (u Unit) suffix() string {
	switch u {
	case Days:
		return "d"
	case Weeks:
		return "w"
	default:
		return "h"
	}
}

// MaxWindow bounds a Window so that its start time stays after the Unix epoch.
const MaxWindow = 50 * 365 * 24 * time.Hour

// Window is a look-back period of N hours, days or weeks.
type Window struct {
	N    int
	Unit Unit
}

// ParseWindow parses "12h", "3d" or "2w".
func ParseWindow(s string) (Window, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Window{}, fmt.Errorf("invalid window '%s'", s)
	}

	var unit Unit
	switch strings.ToLower(s[len(s)-1:]) {
	case "h":
		unit = Hours
	case "d":
		unit = Days
	case "w":
		unit = Weeks
	default:
		return Window{}, fmt.Errorf("invalid window '%s': unit must be one of 'h', 'd', 'w'", s)
	}

	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n <= 0 {
		return Window{}, fmt.Errorf("invalid window '%s': want a positive number", s)
	}
	if n > int(MaxWindow/unit.Duration()) {
		return Window{}, fmt.Errorf("invalid window '%s': longer than %s", s, Window{N: int(MaxWindow / unit.Duration()), Unit: unit})
	}

	return Window{N: n, Unit: unit}, nil
}

func (w Window) IsZero() bool { return w.N == 0 }

func (w Window) Duration() time.Duration {
	return time.Duration(w.N) * w.Unit.Duration()
}

func (w Window) String() string {
	return strconv.Itoa(w.N) + w.Unit.suffix()
}

// StartTime returns now minus the window as Unix seconds followed by "000",
// the millisecond form the API expects in 'startTime'.
func (w Window) StartTime(now time.Time) string {
	return strconv.FormatInt(now.Add(-w.Duration()).Unix(), 10) + "000"
}

// RelativeTime is StartTime relative to the current time.
func RelativeTime(w Window) string {
	return w.StartTime(time.Now())
}

func (w *Window) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := ParseWindow(s)
	if err != nil {
		return err
	}
	*w = v
	return nil
}

func (w Window) MarshalYAML() (any, error) {
	return w.String(), nil
}

// UnmarshalFlag implements flags.Unmarshaler.
func (w *Window) UnmarshalFlag(value string) error {
	v, err := ParseWindow(value)
	if err != nil {
		return err
	}
	*w = v
	return nil
}

// Decode implements envconfig.Decoder.
func (w *Window) Decode(value string) error {
	return w.UnmarshalFlag(value)
}
