package schedule

// DefaultStepMinutes is the booking granularity offered to customers.
const DefaultStepMinutes = 30

// Fallback ladder bounds used when a barber's stored hours do not parse.
const (
	fallbackStartMin = 9 * 60  // 09:00
	fallbackEndMin   = 17 * 60 // 17:00
)

// GenerateSlots produces every candidate slot start time in [start, end) at
// the given step. Slot starts only; whether a service fits is the resolver's
// concern.
//
// Malformed start or end degrades to a half-hour ladder across 09:00-17:00
// instead of failing the caller. That is a degrade-not-crash policy, not a
// promise that the fallback values are right for the barber.
func GenerateSlots(start, end string, step int) []string {
	if step <= 0 {
		step = DefaultStepMinutes
	}

	s, okS := ParseClock(start)
	e, okE := ParseClock(end)
	if !okS || !okE {
		return ladder(fallbackStartMin, fallbackEndMin, DefaultStepMinutes)
	}

	return ladder(s, e, step)
}

func ladder(start, end, step int) []string {
	var slots []string
	for cur := start; cur < end; cur += step {
		slots = append(slots, FormatClock(cur))
	}
	return slots
}

// closingMinute mirrors the fallback behaviour of GenerateSlots so the
// fits-before-closing check always agrees with the ladder in use.
func closingMinute(start, end string) int {
	if _, ok := ParseClock(start); !ok {
		return fallbackEndMin
	}
	if e, ok := ParseClock(end); ok {
		return e
	}
	return fallbackEndMin
}
