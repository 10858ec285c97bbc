package events

import (
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const productID = "-//daybook//events//EN"

// WriteICS renders events as all-day VEVENTs. Events whose date does not
// parse as a real calendar day are skipped.
func WriteICS(w io.Writer, evs []Event, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	for _, ev := range evs {
		day, err := time.Parse("2006-01-02", ev.Date)
		if err != nil {
			continue
		}
		vevent := cal.AddEvent(eventUID(ev))
		vevent.SetDtStampTime(stamp.UTC())
		vevent.SetSummary(ev.Title)
		vevent.SetAllDayStartAt(day)
		vevent.SetAllDayEndAt(day.AddDate(0, 0, 1))
	}
	_, err := io.WriteString(w, cal.Serialize())
	return err
}

// eventUID is stable for the same title and date so re-imports update
// instead of duplicating.
func eventUID(ev Event) string {
	name := strings.ToLower(ev.Title) + "|" + ev.Date
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String() + "@daybook"
}
