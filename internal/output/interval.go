package output

import (
	"fmt"
	"time"
)

const unknownInterval = "   ?   "

// Interval7 renders secs seconds plus centi hundredths in seven columns.
// Negative intervals, from a clock that went backwards, render as "?".
// The old style drops the seconds resolution and swaps the "m" suffix
// between the hour and minute forms.
func Interval7(secs int64, centi int, oldStyle bool) string {
	if secs < 0 {
		return unknownInterval
	}
	switch {
	case secs >= 48*60*60:
		return fmt.Sprintf(" %2ddays", secs/(24*60*60))
	case secs >= 60*60:
		if oldStyle {
			return fmt.Sprintf(" %2d:%02d ", secs/(60*60), (secs/60)%60)
		}
		return fmt.Sprintf(" %2d:%02dm", secs/(60*60), (secs/60)%60)
	case secs > 60:
		if oldStyle {
			return fmt.Sprintf(" %2d:%02dm", secs/60, secs%60)
		}
		return fmt.Sprintf(" %2d:%02d ", secs/60, secs%60)
	}
	if oldStyle {
		return "       "
	}
	return fmt.Sprintf(" %2d.%02ds", secs, centi)
}

// idleText renders how long a terminal has been idle.
func idleText(d time.Duration, oldStyle bool) string {
	return Interval7(int64(d/time.Second), 0, oldStyle)
}

// cpuText renders a clock tick count at hz ticks per second.
func cpuText(ticks, hz uint64, oldStyle bool) string {
	if hz == 0 {
		hz = 100
	}
	return Interval7(int64(ticks/hz), int((ticks%hz)*100/hz), oldStyle)
}

// LoginTime renders when a session started in seven columns relative to
// now: the time of day for recent logins, weekday and hour within the last
// week, else the date.
func LoginTime(login, now time.Time) string {
	login = login.In(now.Location())
	age := now.Sub(login)
	if age > 12*time.Hour && login.YearDay() != now.YearDay() {
		if age > 6*24*time.Hour {
			return fmt.Sprintf(" %02d%3s%02d", login.Day(), login.Format("Jan"), login.Year()%100)
		}
		return fmt.Sprintf(" %3s%02d  ", login.Format("Mon"), login.Hour())
	}
	return fmt.Sprintf(" %02d:%02d  ", login.Hour(), login.Minute())
}

// UptimeLine renders the first header line: clock, uptime, user count and
// load averages.
func UptimeLine(now time.Time, up time.Duration, users int, load1, load5, load15 float64) string {
	secs := int64(up / time.Second)
	days := secs / (24 * 60 * 60)
	hours := secs / (60 * 60) % 24
	minutes := secs / 60 % 60

	line := fmt.Sprintf(" %02d:%02d:%02d up ", now.Hour(), now.Minute(), now.Second())
	switch {
	case days == 1:
		line += "1 day, "
	case days > 1:
		line += fmt.Sprintf("%d days, ", days)
	}
	if hours > 0 {
		line += fmt.Sprintf("%2d:%02d, ", hours, minutes)
	} else {
		line += fmt.Sprintf("%d min, ", minutes)
	}
	noun := "users"
	if users == 1 {
		noun = "user"
	}
	line += fmt.Sprintf("%2d %s, ", users, noun)
	return line + fmt.Sprintf(" load average: %.2f, %.2f, %.2f", load1, load5, load15)
}
