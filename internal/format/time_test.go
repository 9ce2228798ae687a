package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 1, 23, 15, 4, 5, 0, time.UTC)

func stubConfig(t *testing.T, values map[string]string) {
	t.Helper()
	orig := getConfig
	getConfig = func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
	t.Cleanup(func() { getConfig = orig })
}

func TestDate(t *testing.T) {
	tests := []struct {
		name        string
		displayDate string
		want        string
	}{
		{name: "unset", displayDate: "", want: "Jan 23"},
		{name: "mm/dd/yyyy", displayDate: "mm/dd/yyyy", want: "01/23/2024"},
		{name: "yyyy-mm-dd", displayDate: "yyyy-mm-dd", want: "2024-01-23"},
		{name: "dd/mm/yyyy", displayDate: "dd/mm/yyyy", want: "23/01/2024"},
		{name: "custom Go layout", displayDate: "2006/01/02", want: "2024/01/23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubConfig(t, map[string]string{"display_date": tt.displayDate})
			require.Equal(t, tt.want, Date(testTime))
		})
	}
}

func TestTime(t *testing.T) {
	tests := []struct {
		displayTime string
		want        string
	}{
		{displayTime: "", want: "15:04"},
		{displayTime: "24h", want: "15:04"},
		{displayTime: "12h", want: "3:04 PM"},
		{displayTime: "bogus", want: "15:04"},
	}

	for _, tt := range tests {
		t.Run(tt.displayTime, func(t *testing.T) {
			stubConfig(t, map[string]string{"display_time": tt.displayTime})
			require.Equal(t, tt.want, Time(testTime))
		})
	}
}

func TestDateTime(t *testing.T) {
	stubConfig(t, map[string]string{"display_date": "yyyy-mm-dd", "display_time": "12h"})

	require.Equal(t, "2024-01-23 3:04 PM", DateTime(testTime))
}
