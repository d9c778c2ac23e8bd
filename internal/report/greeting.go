package report

import "time"

// Greetings of the report header, keyed by time of day. The strings are part
// of the user-facing contract and stay in Russian.
const (
	greetingMorning   = "Доброе утро"
	greetingAfternoon = "Добрый день"
	greetingEvening   = "Добрый вечер"
	greetingNight     = "Доброй ночи"
)

// Day-part boundaries, in hours.
const (
	nightUntil     = 6
	morningUntil   = 12
	afternoonUntil = 18
)

// Greeting returns the salutation matching t's time of day: night before
// 06:00, morning before noon, afternoon before 18:00, evening after.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < nightUntil:
		return greetingNight
	case h < morningUntil:
		return greetingMorning
	case h < afternoonUntil:
		return greetingAfternoon
	default:
		return greetingEvening
	}
}
