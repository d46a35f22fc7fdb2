// Package timeparse resolves Indonesian relative time phrases ("bulan lalu",
// "dari tanggal 1 sampai tanggal 7") into concrete date ranges.
package timeparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Kind identifies which TimeContext variant is populated.
type Kind int

const (
	KindDay Kind = iota
	KindWeek
	KindMonth
	KindYear
	KindRange
	KindSpecific
)

// TimeContext is an abstract temporal reference extracted from text. Exactly
// one variant is active: Day/Week/Month/Year carry Offset (0 = current,
// 1 = previous, ...), Range carries Start/End, Specific carries Date.
type TimeContext struct {
	Kind   Kind
	Offset int
	Start  time.Time
	End    time.Time
	Date   time.Time
}

// DateRange is a concrete, closed-inclusive pair of calendar dates with a
// localized display label.
type DateRange struct {
	Start time.Time
	End   time.Time
	Label string
}

// Contains reports whether t falls inside the range, comparing calendar days.
func (r DateRange) Contains(t time.Time) bool {
	d := midnight(t)
	return !d.Before(midnight(r.Start)) && !d.After(midnight(r.End))
}

var monthNames = []string{
	"januari", "februari", "maret", "april", "mei", "juni",
	"juli", "agustus", "september", "oktober", "november", "desember",
}

var weekdayNames = map[string]time.Weekday{
	"senin":  time.Monday,
	"selasa": time.Tuesday,
	"rabu":   time.Wednesday,
	"kamis":  time.Thursday,
	"jumat":  time.Friday,
	"sabtu":  time.Saturday,
	"minggu": time.Sunday,
}

const monthAlt = `januari|februari|maret|april|mei|juni|juli|agustus|september|oktober|november|desember`

// Matching order is a correctness contract: multi-token explicit patterns run
// before looser single keywords so a short pattern never swallows a longer one.
var (
	reDayRange = regexp.MustCompile(
		`dari\s+tanggal\s+(\d{1,2})\s+sampai\s+(?:tanggal\s+)?(\d{1,2})`)
	reBetween = regexp.MustCompile(
		`antara\s+(?:tanggal\s+)?(\d{1,2})\s+(?:dan|sampai)\s+(?:tanggal\s+)?(\d{1,2})`)
	reDashRange = regexp.MustCompile(
		`tanggal\s+(\d{1,2})\s*(?:-|s/?d|sampai)\s*(?:tanggal\s+)?(\d{1,2})`)
	reMonthRange = regexp.MustCompile(
		`dari\s+(` + monthAlt + `)(?:\s+(\d{4}))?\s+sampai\s+(` + monthAlt + `)(?:\s+(\d{4}))?`)
	reMonthYear = regexp.MustCompile(`\b(` + monthAlt + `)(?:\s+(\d{4}))?\b`)
	reRelativeN = regexp.MustCompile(`(\d+)\s+(hari|minggu|bulan|tahun)\s+(?:yang\s+)?lalu`)
	reWeekday   = regexp.MustCompile(`\bhari\s+(senin|selasa|rabu|kamis|jumat|sabtu|minggu)\b`)
	reSpecific  = regexp.MustCompile(`tanggal\s+(\d{1,2})\b`)
)

// keywordRules map single-keyword phrases to offset contexts, tried after the
// explicit patterns above. Order within the slice matters: every compound
// containing "kemarin" runs before the bare word, or it would never match.
var keywordRules = []struct {
	phrase string
	kind   Kind
	offset int
}{
	{"hari ini", KindDay, 0},
	{"kemarin lusa", KindDay, 2},
	{"minggu kemarin", KindWeek, 1},
	{"bulan kemarin", KindMonth, 1},
	{"tahun kemarin", KindYear, 1},
	{"kemarin", KindDay, 1},
	{"minggu ini", KindWeek, 0},
	{"minggu lalu", KindWeek, 1},
	{"bulan ini", KindMonth, 0},
	{"bulan lalu", KindMonth, 1},
	{"tahun ini", KindYear, 0},
	{"tahun lalu", KindYear, 1},
}

// Resolve extracts a TimeContext from text. The second return value is false
// when no temporal pattern matches; callers must treat that as "no temporal
// scoping requested", not as a failure.
func Resolve(text string, now time.Time) (TimeContext, bool) {
	lower := strings.ToLower(text)

	if m := reDayRange.FindStringSubmatch(lower); m != nil {
		return dayRange(m[1], m[2], now), true
	}
	if m := reBetween.FindStringSubmatch(lower); m != nil {
		return dayRange(m[1], m[2], now), true
	}
	if m := reDashRange.FindStringSubmatch(lower); m != nil {
		return dayRange(m[1], m[2], now), true
	}
	if m := reMonthRange.FindStringSubmatch(lower); m != nil {
		start := monthStart(m[1], m[2], now)
		end := monthStart(m[3], m[4], now).AddDate(0, 1, -1)
		return TimeContext{Kind: KindRange, Start: start, End: end}, true
	}
	if m := reRelativeN.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		switch m[2] {
		case "hari":
			return TimeContext{Kind: KindDay, Offset: n}, true
		case "minggu":
			return TimeContext{Kind: KindWeek, Offset: n}, true
		case "bulan":
			return TimeContext{Kind: KindMonth, Offset: n}, true
		default:
			return TimeContext{Kind: KindYear, Offset: n}, true
		}
	}
	if m := reWeekday.FindStringSubmatch(lower); m != nil {
		return TimeContext{Kind: KindSpecific, Date: resolveWeekday(weekdayNames[m[1]], now)}, true
	}
	if m := reMonthYear.FindStringSubmatch(lower); m != nil {
		start := monthStart(m[1], m[2], now)
		return TimeContext{Kind: KindRange, Start: start, End: start.AddDate(0, 1, -1)}, true
	}
	if m := reSpecific.FindStringSubmatch(lower); m != nil {
		day, _ := strconv.Atoi(m[1])
		return TimeContext{
			Kind: KindSpecific,
			Date: time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location()),
		}, true
	}

	for _, kr := range keywordRules {
		if strings.Contains(lower, kr.phrase) {
			return TimeContext{Kind: kr.kind, Offset: kr.offset}, true
		}
	}

	return TimeContext{}, false
}

// resolveWeekday finds the most recent occurrence of target. Policy: when the
// target weekday equals today's weekday the result is today, never seven days
// back. Resolving the same phrase twice within one calendar day is stable.
func resolveWeekday(target time.Weekday, now time.Time) time.Time {
	back := (int(now.Weekday()) - int(target) + 7) % 7
	return midnight(now).AddDate(0, 0, -back)
}

// Range resolves the context into a concrete closed-inclusive DateRange.
func (tc TimeContext) Range(now time.Time) DateRange {
	switch tc.Kind {
	case KindDay:
		d := midnight(now).AddDate(0, 0, -tc.Offset)
		return DateRange{Start: d, End: d, Label: dayLabel(tc.Offset, d)}
	case KindWeek:
		// Monday-based week.
		back := (int(now.Weekday()) + 6) % 7
		start := midnight(now).AddDate(0, 0, -back-7*tc.Offset)
		return DateRange{Start: start, End: start.AddDate(0, 0, 6), Label: weekLabel(tc.Offset)}
	case KindMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -tc.Offset, 0)
		return DateRange{Start: start, End: start.AddDate(0, 1, -1), Label: monthLabel(tc.Offset, start)}
	case KindYear:
		y := now.Year() - tc.Offset
		return DateRange{
			Start: time.Date(y, 1, 1, 0, 0, 0, 0, now.Location()),
			End:   time.Date(y, 12, 31, 0, 0, 0, 0, now.Location()),
			Label: yearLabel(tc.Offset, y),
		}
	case KindRange:
		return DateRange{Start: tc.Start, End: tc.End, Label: rangeLabel(tc.Start, tc.End)}
	default:
		return DateRange{Start: tc.Date, End: tc.Date, Label: FormatDate(tc.Date)}
	}
}

func dayRange(fromStr, toStr string, now time.Time) TimeContext {
	from, _ := strconv.Atoi(fromStr)
	to, _ := strconv.Atoi(toStr)
	return TimeContext{
		Kind:  KindRange,
		Start: time.Date(now.Year(), now.Month(), from, 0, 0, 0, 0, now.Location()),
		End:   time.Date(now.Year(), now.Month(), to, 0, 0, 0, 0, now.Location()),
	}
}

// monthStart returns the first day of the named month; a missing year
// defaults to the current year.
func monthStart(name, yearStr string, now time.Time) time.Time {
	month := time.Month(1)
	for i, n := range monthNames {
		if n == name {
			month = time.Month(i + 1)
			break
		}
	}
	year := now.Year()
	if yearStr != "" {
		year, _ = strconv.Atoi(yearStr)
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatDate renders a date as "2 Januari 2026".
func FormatDate(t time.Time) string {
	name := monthNames[int(t.Month())-1]
	return fmt.Sprintf("%d %s%s %d", t.Day(), strings.ToUpper(name[:1]), name[1:], t.Year())
}

func dayLabel(offset int, d time.Time) string {
	switch offset {
	case 0:
		return "hari ini"
	case 1:
		return "kemarin"
	default:
		return fmt.Sprintf("%d hari lalu (%s)", offset, FormatDate(d))
	}
}

func weekLabel(offset int) string {
	switch offset {
	case 0:
		return "minggu ini"
	case 1:
		return "minggu lalu"
	default:
		return fmt.Sprintf("%d minggu lalu", offset)
	}
}

func monthLabel(offset int, start time.Time) string {
	switch offset {
	case 0:
		return "bulan ini"
	case 1:
		return "bulan lalu"
	default:
		name := monthNames[int(start.Month())-1]
		return fmt.Sprintf("%s%s %d", strings.ToUpper(name[:1]), name[1:], start.Year())
	}
}

func yearLabel(offset, year int) string {
	switch offset {
	case 0:
		return "tahun ini"
	case 1:
		return "tahun lalu"
	default:
		return fmt.Sprintf("tahun %d", year)
	}
}

func rangeLabel(start, end time.Time) string {
	if start.Year() == end.Year() && start.Month() == end.Month() {
		name := monthNames[int(start.Month())-1]
		return fmt.Sprintf("%d - %d %s%s %d",
			start.Day(), end.Day(), strings.ToUpper(name[:1]), name[1:], start.Year())
	}
	return fmt.Sprintf("%s - %s", FormatDate(start), FormatDate(end))
}
