package docpack

import "time"

// stampZone is the reference civil calendar for date stamps, so archives
// produced from different machines sort consistently.
const stampZone = "Europe/London"

// DateStamp formats now as an 8-digit YYYYMMDD stamp in the Europe/London
// civil calendar. When the zone database is unavailable the local date is
// used instead; the stamp is cosmetic, so this is not an error.
func DateStamp(now time.Time) string {
	if loc, err := time.LoadLocation(stampZone); err == nil {
		now = now.In(loc)
	}
	return now.Format("20060102")
}
