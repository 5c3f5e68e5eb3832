package util

import "time"

const (
	DateTimeFormat = "2006-01-02 15:04:05"
	DateFormat     = "2006-01-02"
)

func MillisecondsToTime(ms int64) time.Time {
	seconds := ms / 1000
	nanoseconds := (ms % 1000) * 1000000
	return time.Unix(seconds, nanoseconds)
}

func TimeToMilliseconds(t time.Time) int64 {
	return t.UnixMilli()
}

func StrToDateTime(str string) (time.Time, error) {
	return time.ParseInLocation(DateTimeFormat, str, GetDefaultTimezone())
}

func StrToDate(str string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, str, GetDefaultTimezone())
}

func DateTimeToStr(dt time.Time) string {
	return dt.Format(DateTimeFormat)
}

func Now() time.Time {
	return time.Now().In(GetDefaultTimezone())
}

func GetDefaultTimezone() *time.Location {
	localTimeZone, _ := time.LoadLocation("Local")
	return localTimeZone
}
