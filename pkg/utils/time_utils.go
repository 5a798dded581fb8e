package utils

import "time"

// China Standard Time (CST, +08:00) — the payment provider settles in CNY
// and reports timestamps in Beijing time.
var cstLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Shanghai"); err == nil {
		return loc
	}
	return time.FixedZone("CST", 8*3600)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSecondsCST converts an epoch value in seconds to Beijing time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsCST(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(cstLoc)
}

func FormatRFC3339CST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(cstLoc).Format(time.RFC3339)
}
