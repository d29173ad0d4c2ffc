package datemath

import "time"

// Unit is a calendar unit used by relative periods.
type Unit string

const (
	UnitDay   Unit = "day"
	UnitWeek  Unit = "week"
	UnitMonth Unit = "month"
)

// Period is an amount of calendar units, e.g. "3 months".
type Period struct {
	Amount int
	Unit   Unit
}

// DateLayout is the ISO-8601 calendar date layout used on the wire.
const DateLayout = "2006-01-02"

// AddTo advances t by the period. Weeks are 7 days; months advance the
// month field and let time.Date normalize overflow.
func (p Period) AddTo(t time.Time) time.Time {
	switch p.Unit {
	case UnitWeek:
		return t.AddDate(0, 0, p.Amount*7)
	case UnitMonth:
		return t.AddDate(0, p.Amount, 0)
	default:
		return t.AddDate(0, 0, p.Amount)
	}
}
