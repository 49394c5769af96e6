package store

import "time"

const dateLayout = "2006-01-02"

// FormatDate renders an ISO calendar date for user-facing messages, e.g.
// "June 15, 2024". Unparseable input is returned as-is.
func FormatDate(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}

// FormatMonthYear renders a month cursor as "June 2024".
func FormatMonthYear(t time.Time) string {
	return t.Format("January 2006")
}
