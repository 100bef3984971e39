package domain

import "time"

type OpeningHours struct {
	HideOpeningHours     *bool      `json:"hideOpeningHours,omitempty"`
	AlwaysOpen           *bool      `json:"alwaysOpen,omitempty"`
	TextForOpeningHours  string     `json:"textForOpeningHours,omitempty"`
	ClosedOnMonday       *bool      `json:"closedOnMonday,omitempty"`
	OpeningHourMonday    *TimeOfDay `json:"openingHourMonday,omitempty"`
	ClosingHourMonday    *TimeOfDay `json:"closingHourMonday,omitempty"`
	ClosedOnTuesday      *bool      `json:"closedOnTuesday,omitempty"`
	OpeningHourTuesday   *TimeOfDay `json:"openingHourTuesday,omitempty"`
	ClosingHourTuesday   *TimeOfDay `json:"closingHourTuesday,omitempty"`
	ClosedOnWednesday    *bool      `json:"closedOnWednesday,omitempty"`
	OpeningHourWednesday *TimeOfDay `json:"openingHourWednesday,omitempty"`
	ClosingHourWednesday *TimeOfDay `json:"closingHourWednesday,omitempty"`
	ClosedOnThursday     *bool      `json:"closedOnThursday,omitempty"`
	OpeningHourThursday  *TimeOfDay `json:"openingHourThursday,omitempty"`
	ClosingHourThursday  *TimeOfDay `json:"closingHourThursday,omitempty"`
	ClosedOnFriday       *bool      `json:"closedOnFriday,omitempty"`
	OpeningHourFriday    *TimeOfDay `json:"openingHourFriday,omitempty"`
	ClosingHourFriday    *TimeOfDay `json:"closingHourFriday,omitempty"`
	ClosedOnSaturday     *bool      `json:"closedOnSaturday,omitempty"`
	OpeningHourSaturday  *TimeOfDay `json:"openingHourSaturday,omitempty"`
	ClosingHourSaturday  *TimeOfDay `json:"closingHourSaturday,omitempty"`
	ClosedOnSunday       *bool      `json:"closedOnSunday,omitempty"`
	OpeningHourSunday    *TimeOfDay `json:"openingHourSunday,omitempty"`
	ClosingHourSunday    *TimeOfDay `json:"closingHourSunday,omitempty"`
}

// Index field paths of the opening hours record.
const (
	FieldAlwaysOpen       = "openingHours.alwaysOpen"
	FieldHideOpeningHours = "openingHours.hideOpeningHours"
)

var weekdayNames = [...]string{
	time.Sunday:    "Sunday",
	time.Monday:    "Monday",
	time.Tuesday:   "Tuesday",
	time.Wednesday: "Wednesday",
	time.Thursday:  "Thursday",
	time.Friday:    "Friday",
	time.Saturday:  "Saturday",
}

// OpeningHourFields returns the index paths of the opening and closing time
// for the given weekday.
func OpeningHourFields(day time.Weekday) (opening, closing string) {
	name := weekdayNames[day]
	return "openingHours.openingHour" + name, "openingHours.closingHour" + name
}

// Day returns the stored hours for a weekday.
func (h *OpeningHours) Day(day time.Weekday) (closed *bool, opening, closing *TimeOfDay) {
	switch day {
	case time.Monday:
		return h.ClosedOnMonday, h.OpeningHourMonday, h.ClosingHourMonday
	case time.Tuesday:
		return h.ClosedOnTuesday, h.OpeningHourTuesday, h.ClosingHourTuesday
	case time.Wednesday:
		return h.ClosedOnWednesday, h.OpeningHourWednesday, h.ClosingHourWednesday
	case time.Thursday:
		return h.ClosedOnThursday, h.OpeningHourThursday, h.ClosingHourThursday
	case time.Friday:
		return h.ClosedOnFriday, h.OpeningHourFriday, h.ClosingHourFriday
	case time.Saturday:
		return h.ClosedOnSaturday, h.OpeningHourSaturday, h.ClosingHourSaturday
	default:
		return h.ClosedOnSunday, h.OpeningHourSunday, h.ClosingHourSunday
	}
}

// SetDay stores the hours for a weekday.
func (h *OpeningHours) SetDay(day time.Weekday, closed *bool, opening, closing *TimeOfDay) {
	switch day {
	case time.Monday:
		h.ClosedOnMonday, h.OpeningHourMonday, h.ClosingHourMonday = closed, opening, closing
	case time.Tuesday:
		h.ClosedOnTuesday, h.OpeningHourTuesday, h.ClosingHourTuesday = closed, opening, closing
	case time.Wednesday:
		h.ClosedOnWednesday, h.OpeningHourWednesday, h.ClosingHourWednesday = closed, opening, closing
	case time.Thursday:
		h.ClosedOnThursday, h.OpeningHourThursday, h.ClosingHourThursday = closed, opening, closing
	case time.Friday:
		h.ClosedOnFriday, h.OpeningHourFriday, h.ClosingHourFriday = closed, opening, closing
	case time.Saturday:
		h.ClosedOnSaturday, h.OpeningHourSaturday, h.ClosingHourSaturday = closed, opening, closing
	default:
		h.ClosedOnSunday, h.OpeningHourSunday, h.ClosingHourSunday = closed, opening, closing
	}
}

// ClosedOnField returns the index path of the closed flag for the given weekday.
func ClosedOnField(day time.Weekday) string {
	return "openingHours.closedOn" + weekdayNames[day]
}
