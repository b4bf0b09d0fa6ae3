package journal

import (
	"fmt"
	"time"
)

var genitiveMonths = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// FormatDate renders t as a Russian long date, e.g. "15 июня 2025". The
// result is the natural key of an entry, so it must stay stable across
// releases.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), genitiveMonths[t.Month()-1], t.Year())
}
