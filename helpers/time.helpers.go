package helpers

import (
	"math/rand"
	"time"

	"BEARSTY_server/global"
)

// ISOTimeFormat is the layout of A_Modified_Date and G_Creation_Date
const ISOTimeFormat = "2006-01-02T15:04:05.999999Z07:00"

// ISOUTC formats t in UTC with a Z suffix
func ISOUTC(t time.Time) string {
	return t.UTC().Format(ISOTimeFormat)
}

// StartOfDayUTC truncates t to midnight UTC
func StartOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RandomTimeOfDayGMT picks a random second of the UTC day containing now
func RandomTimeOfDayGMT(now time.Time) string {
	seconds := rand.Intn(24 * 60 * 60)
	return StartOfDayUTC(now).Add(time.Duration(seconds) * time.Second).Format(global.GMTTimeFormat)
}
