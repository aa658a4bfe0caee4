// Package recurrence parses statement recurrence descriptors and computes the
// next statement date for a seed date.
//
// Three descriptor forms are accepted:
//
//	MONTHLY                      keyword (DAILY, WEEKLY, MONTHLY, QUARTERLY, YEARLY)
//	FREQ=MONTHLY;INTERVAL=3      iCal-style rule, optional RRULE: prefix
//	0 0 1 * *                    standard five field cron expression
//
// An empty descriptor is valid and never yields a next date.
package recurrence

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

type Frequency string

const (
	FrequencyDaily     Frequency = "DAILY"
	FrequencyWeekly    Frequency = "WEEKLY"
	FrequencyMonthly   Frequency = "MONTHLY"
	FrequencyQuarterly Frequency = "QUARTERLY"
	FrequencyYearly    Frequency = "YEARLY"
)

var ErrInvalidRecurrence = errors.New("invalid recurrence descriptor")

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Rule is a parsed recurrence descriptor. The zero value never recurs.
type Rule struct {
	descriptor string
	frequency  Frequency
	interval   int
	schedule   cron.Schedule
}

// Parse parses a recurrence descriptor.
func Parse(descriptor string) (Rule, error) {
	d := strings.TrimSpace(descriptor)
	if d == "" {
		return Rule{}, nil
	}

	upper := strings.ToUpper(d)
	if freq, ok := parseFrequency(upper); ok {
		return Rule{descriptor: d, frequency: freq, interval: 1}, nil
	}

	if strings.HasPrefix(upper, "RRULE:") || strings.HasPrefix(upper, "FREQ=") {
		return parseRule(d, strings.TrimPrefix(upper, "RRULE:"))
	}

	schedule, err := cronParser.Parse(d)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q: %v", ErrInvalidRecurrence, d, err)
	}
	return Rule{descriptor: d, schedule: schedule}, nil
}

// MustParse is Parse for descriptors known to be valid.
func MustParse(descriptor string) Rule {
	rule, err := Parse(descriptor)
	if err != nil {
		panic(err)
	}
	return rule
}

// Validate reports whether the descriptor can be parsed.
func Validate(descriptor string) error {
	_, err := Parse(descriptor)
	return err
}

// IsZero reports whether the rule never recurs.
func (r Rule) IsZero() bool {
	return r.frequency == "" && r.schedule == nil
}

func (r Rule) String() string {
	return r.descriptor
}

// Next returns the first occurrence on a calendar day strictly after seed,
// or nil when the rule does not recur. The result is a UTC date.
func (r Rule) Next(seed time.Time) *time.Time {
	if r.IsZero() {
		return nil
	}

	day := time.Date(seed.Year(), seed.Month(), seed.Day(), 0, 0, 0, 0, time.UTC)

	var next time.Time
	switch {
	case r.schedule != nil:
		endOfDay := day.Add(24*time.Hour - time.Nanosecond)
		at := r.schedule.Next(endOfDay)
		if at.IsZero() {
			return nil
		}
		next = time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)
	case r.frequency == FrequencyDaily:
		next = day.AddDate(0, 0, r.interval)
	case r.frequency == FrequencyWeekly:
		next = day.AddDate(0, 0, 7*r.interval)
	case r.frequency == FrequencyMonthly:
		next = addMonths(day, r.interval)
	case r.frequency == FrequencyQuarterly:
		next = addMonths(day, 3*r.interval)
	case r.frequency == FrequencyYearly:
		next = addMonths(day, 12*r.interval)
	default:
		return nil
	}

	return &next
}

// NextFrom parses descriptor and returns its next date after seed.
func NextFrom(descriptor string, seed time.Time) (*time.Time, error) {
	rule, err := Parse(descriptor)
	if err != nil {
		return nil, err
	}
	return rule.Next(seed), nil
}

func parseFrequency(s string) (Frequency, bool) {
	switch Frequency(s) {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return Frequency(s), true
	}
	return "", false
}

func parseRule(descriptor, rule string) (Rule, error) {
	parsed := Rule{descriptor: descriptor, interval: 1}

	for _, part := range strings.Split(rule, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return Rule{}, fmt.Errorf("%w: malformed part %q", ErrInvalidRecurrence, part)
		}

		switch key {
		case "FREQ":
			freq, ok := parseFrequency(value)
			if !ok {
				return Rule{}, fmt.Errorf("%w: unsupported frequency %q", ErrInvalidRecurrence, value)
			}
			parsed.frequency = freq
		case "INTERVAL":
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return Rule{}, fmt.Errorf("%w: interval must be a positive integer", ErrInvalidRecurrence)
			}
			parsed.interval = n
		default:
			// other RRULE parts (BYMONTHDAY, WKST...) follow the seed date
		}
	}

	if parsed.frequency == "" {
		return Rule{}, fmt.Errorf("%w: FREQ is required", ErrInvalidRecurrence)
	}

	return parsed, nil
}

// addMonths moves a date n months ahead, clamping to the last day of the
// target month.
func addMonths(day time.Time, n int) time.Time {
	firstOfTarget := time.Date(day.Year(), day.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()

	d := day.Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, time.UTC)
}
