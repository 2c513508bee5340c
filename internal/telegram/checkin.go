package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"habit-tracker/internal/services"
)

const (
	codingPrefix     = "ci_code_"
	doomscrollPrefix = "ci_doom_"
)

// checkInStep is a decoded keyboard answer. complete is false after the
// coding question and true once the doomscroll answer arrives.
type checkInStep struct {
	checkIn  services.CheckIn
	complete bool
}

func codingCallback(date string, level int) string {
	return fmt.Sprintf("%s%s_%d", codingPrefix, date, level)
}

func doomscrollCallback(date string, level int, doomscrolled bool) string {
	doom := 0
	if doomscrolled {
		doom = 1
	}
	return fmt.Sprintf("%s%s_%d_%d", doomscrollPrefix, date, level, doom)
}

func parseCheckInCallback(data string) (checkInStep, error) {
	switch {
	case strings.HasPrefix(data, codingPrefix):
		parts := strings.Split(strings.TrimPrefix(data, codingPrefix), "_")
		if len(parts) != 2 {
			return checkInStep{}, fmt.Errorf("malformed coding callback %q", data)
		}
		level, err := strconv.Atoi(parts[1])
		if err != nil {
			return checkInStep{}, fmt.Errorf("coding level: %w", err)
		}
		return checkInStep{checkIn: services.CheckIn{Date: parts[0], CodingLevel: level}}, nil

	case strings.HasPrefix(data, doomscrollPrefix):
		parts := strings.Split(strings.TrimPrefix(data, doomscrollPrefix), "_")
		if len(parts) != 3 {
			return checkInStep{}, fmt.Errorf("malformed doomscroll callback %q", data)
		}
		level, err := strconv.Atoi(parts[1])
		if err != nil {
			return checkInStep{}, fmt.Errorf("coding level: %w", err)
		}
		return checkInStep{
			checkIn: services.CheckIn{
				Date:         parts[0],
				CodingLevel:  level,
				Doomscrolled: parts[2] == "1",
			},
			complete: true,
		}, nil
	}
	return checkInStep{}, fmt.Errorf("unknown callback %q", data)
}

var errLogUsage = errors.New("usage: /log coding=[0-2] doom=[yes|no] date=[YYYY-MM-DD]")

// parseLogCommand reads "/log coding=2 doom=no date=2025-01-06". The date is
// optional; without any arguments ok is false and the keyboard is shown.
func parseLogCommand(text string) (in services.CheckIn, ok bool, err error) {
	fields := strings.Fields(text)
	if len(fields) <= 1 {
		return services.CheckIn{}, false, nil
	}

	var sawCoding, sawDoom bool
	for _, pair := range fields[1:] {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return services.CheckIn{}, false, errLogUsage
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "coding", "code", "c":
			level, err := strconv.Atoi(value)
			if err != nil || level < 0 || level > 2 {
				return services.CheckIn{}, false, errors.New("❌ coding must be 0, 1 or 2")
			}
			in.CodingLevel = level
			sawCoding = true
		case "doom", "doomscroll", "doomscrolled", "d":
			doom, err := parseYesNo(value)
			if err != nil {
				return services.CheckIn{}, false, errors.New("❌ doom must be yes or no")
			}
			in.Doomscrolled = doom
			sawDoom = true
		case "date":
			in.Date = value
		default:
			return services.CheckIn{}, false, errLogUsage
		}
	}

	if !sawCoding || !sawDoom {
		return services.CheckIn{}, false, errLogUsage
	}
	return in, true, nil
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "y", "true", "1":
		return true, nil
	case "no", "n", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("not a yes/no answer: %q", s)
}
