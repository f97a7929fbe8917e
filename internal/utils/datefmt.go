package utils

import (
	"time"

	"github.com/goodsign/monday"
)

// Display layouts for show start times. Medium is what listing and detail
// pages use; full is kept for clients that want the verbose form.
const (
	ShowTimeMediumLayout = "Mon 01, 02, 2006 3:04PM"
	ShowTimeFullLayout   = "Monday January, 2, 2006 at 3:04PM"
)

// FormatShowTime renders a start time in the medium display format,
// localized through the date formatting library.
func FormatShowTime(t time.Time) string {
	return monday.Format(t, ShowTimeMediumLayout, monday.LocaleEnUS)
}

// FormatShowTimeFull renders the verbose display format.
func FormatShowTimeFull(t time.Time) string {
	return monday.Format(t, ShowTimeFullLayout, monday.LocaleEnUS)
}
