// Package format renders timestamps using the display_date and display_time
// config keys.
package format

import (
	"time"

	"github.com/wangjing53406/navi/internal/config"
)

var getConfig = config.Get

// DateTime formats a time with both date and time according to config.
// Example output: "Jan 23 15:04" or "01/23/2024 3:04 PM"
func DateTime(t time.Time) string {
	return Date(t) + " " + Time(t)
}

// Date formats only the date portion according to config.
func Date(t time.Time) string {
	return t.Format(dateLayout())
}

// Time formats only the time portion according to config.
func Time(t time.Time) string {
	return t.Format(timeLayout())
}

func dateLayout() string {
	displayDate, _ := getConfig("display_date")

	switch displayDate {
	case "":
		return "Jan 02"
	case "mm/dd/yyyy":
		return "01/02/2006"
	case "yyyy-mm-dd":
		return "2006-01-02"
	case "dd/mm/yyyy":
		return "02/01/2006"
	default:
		// a custom Go layout
		return displayDate
	}
}

func timeLayout() string {
	displayTime, _ := getConfig("display_time")
	if displayTime == "12h" {
		return "3:04 PM"
	}
	return "15:04"
}
