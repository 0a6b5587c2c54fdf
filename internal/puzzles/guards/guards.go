// Package guards analyses the sleep records of the guards on night shift.
package guards

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chronal/internal/core"
)

var (
	// ErrMalformedRecord marks a line that is not a timestamped guard event.
	ErrMalformedRecord = errors.New("guards: malformed record")
	// ErrNoGuard is returned for sleep events before any shift begins.
	ErrNoGuard = errors.New("guards: event before the first shift")
	// ErrUnpairedWake is returned for a wake event without a matching sleep.
	ErrUnpairedWake = errors.New("guards: wakes up without falling asleep")
	// ErrNoSleep is returned when no guard ever falls asleep.
	ErrNoSleep = errors.New("guards: nobody slept")
)

// MinutesPerHour is the length of the midnight hour that is tracked.
const MinutesPerHour = 60

var (
	recordPattern = regexp.MustCompile(`^\[(\d{4}-\d{2}-\d{2} \d{2}:(\d{2}))\]\s+(.+)$`)
	shiftPattern  = regexp.MustCompile(`^Guard #(\d+) begins shift$`)
)

// Kind enumerates record events.
type Kind int

const (
	BeginShift Kind = iota
	FallAsleep
	WakeUp
)

// Record is one timestamped event.
type Record struct {
	Stamp  string // "YYYY-MM-DD hh:mm", sorts chronologically
	Minute int
	Kind   Kind
	Guard  int // set for BeginShift
	line   core.Line
}

// Parse reads records and returns them in chronological order.
func Parse(input []byte) ([]Record, error) {
	lines := core.Lines(input)
	records := make([]Record, 0, len(lines))
	for _, line := range lines {
		r, err := parseRecord(line)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	slices.SortStableFunc(records, func(a, b Record) int {
		return strings.Compare(a.Stamp, b.Stamp)
	})
	return records, nil
}

func parseRecord(line core.Line) (Record, error) {
	m := recordPattern.FindStringSubmatch(line.Text)
	if m == nil {
		return Record{}, line.Wrap(ErrMalformedRecord)
	}
	minute, _ := strconv.Atoi(m[2])
	if minute >= MinutesPerHour {
		return Record{}, line.Wrap(fmt.Errorf("%w: minute %d", ErrMalformedRecord, minute))
	}
	r := Record{Stamp: m[1], Minute: minute, line: line}
	switch event := m[3]; event {
	case "falls asleep":
		r.Kind = FallAsleep
	case "wakes up":
		r.Kind = WakeUp
	default:
		g := shiftPattern.FindStringSubmatch(event)
		if g == nil {
			return Record{}, line.Wrap(ErrMalformedRecord)
		}
		id, err := strconv.Atoi(g[1])
		if err != nil {
			return Record{}, line.Wrap(fmt.Errorf("%w: %v", ErrMalformedRecord, err))
		}
		r.Kind, r.Guard = BeginShift, id
	}
	return r, nil
}

// Tally is the number of nights each guard was asleep at each minute of
// the midnight hour.
type Tally map[int]*[MinutesPerHour]int

// Build replays chronologically ordered records. A guard still asleep when
// the next shift begins, or at the end of the records, is counted asleep
// until the end of the hour.
func Build(records []Record) (Tally, error) {
	t := Tally{}
	guard, asleepAt := -1, -1
	closeNap := func(until int) {
		if asleepAt < 0 {
			return
		}
		for m := asleepAt; m < until; m++ {
			t[guard][m]++
		}
		asleepAt = -1
	}

	for _, r := range records {
		switch r.Kind {
		case BeginShift:
			closeNap(MinutesPerHour)
			guard = r.Guard
			if t[guard] == nil {
				t[guard] = &[MinutesPerHour]int{}
			}
		case FallAsleep:
			if guard < 0 {
				return nil, r.line.Wrap(ErrNoGuard)
			}
			if asleepAt < 0 {
				asleepAt = r.Minute
			}
		case WakeUp:
			if guard < 0 {
				return nil, r.line.Wrap(ErrNoGuard)
			}
			if asleepAt < 0 {
				return nil, r.line.Wrap(ErrUnpairedWake)
			}
			closeNap(r.Minute)
		}
	}
	closeNap(MinutesPerHour)
	return t, nil
}

// Guards returns the tallied guard IDs in ascending order.
func (t Tally) Guards() []int {
	ids := maps.Keys(t)
	slices.Sort(ids)
	return ids
}

// Total returns how many minutes guard slept overall.
func (t Tally) Total(guard int) int {
	n := 0
	if mins := t[guard]; mins != nil {
		for _, c := range mins {
			n += c
		}
	}
	return n
}

// Favorite returns the minute guard was most often asleep and how often.
// Ties go to the earliest minute.
func (t Tally) Favorite(guard int) (minute, count int) {
	mins := t[guard]
	if mins == nil {
		return 0, 0
	}
	for m, c := range mins {
		if c > count {
			minute, count = m, c
		}
	}
	return minute, count
}

// MostAsleep picks the guard with the most minutes asleep and multiplies
// their ID by their favorite minute. Ties go to the lowest guard ID.
func MostAsleep(t Tally) (int, error) {
	best, bestTotal := 0, 0
	for _, id := range t.Guards() {
		if total := t.Total(id); total > bestTotal {
			best, bestTotal = id, total
		}
	}
	if bestTotal == 0 {
		return 0, ErrNoSleep
	}
	minute, _ := t.Favorite(best)
	return best * minute, nil
}

// MostFrequent picks the guard most frequently asleep on the same minute
// and multiplies their ID by that minute.
func MostFrequent(t Tally) (int, error) {
	best, bestMinute, bestCount := 0, 0, 0
	for _, id := range t.Guards() {
		if minute, count := t.Favorite(id); count > bestCount {
			best, bestMinute, bestCount = id, minute, count
		}
	}
	if bestCount == 0 {
		return 0, ErrNoSleep
	}
	return best * bestMinute, nil
}

type puzzle struct{}

func (puzzle) Name() string { return "guards" }

func (puzzle) Solve(input []byte) (core.Answers, error) {
	records, err := Parse(input)
	if err != nil {
		return nil, err
	}
	t, err := Build(records)
	if err != nil {
		return nil, err
	}
	part1, err := MostAsleep(t)
	if err != nil {
		return nil, err
	}
	part2, err := MostFrequent(t)
	if err != nil {
		return nil, err
	}
	return core.Answers{core.Part(1, part1), core.Part(2, part2)}, nil
}

func init() {
	core.Register("guards", func(map[string]string) core.Puzzle { return puzzle{} })
}
