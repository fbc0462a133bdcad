// Package rasp translates the RSUE timetable API (rasp-api.rsue.ru) into
// domain types.
package rasp

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/campus-superapp/internal/adapters/clients/acl/ruz"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/university"
)

// DateLayout is the day format used by the API.
const DateLayout = "02.01.2006"

// TargetType is reported for every search hit; the API only serves group
// timetables.
const TargetType = "group"

// SearchEntryDTO is an entry of GET /api/v1/schedule/search/.
type SearchEntryDTO struct {
	ID   ruz.ID `json:"id"`
	Name string `json:"name"`
}

// ScheduleDTO is the body of GET /api/v1/schedule/lessons/{group}/.
type ScheduleDTO struct {
	Weeks []WeekDTO `json:"weeks"`
}

// WeekDTO is one study week.
type WeekDTO struct {
	Days []DayDTO `json:"days"`
}

// DayDTO is one day of a week.
type DayDTO struct {
	Date  string    `json:"date"`
	Name  string    `json:"name"`
	Pairs []PairDTO `json:"pairs"`
}

// PairDTO is a lesson slot.
type PairDTO struct {
	StartTime string      `json:"startTime"`
	EndTime   string      `json:"endTime"`
	Lessons   []LessonDTO `json:"lessons"`
}

// LessonDTO is a lesson held during a pair.
type LessonDTO struct {
	Audience string  `json:"audience"`
	Subject  string  `json:"subject"`
	Group    string  `json:"group"`
	Kind     nameDTO `json:"kind"`
	Teacher  nameDTO `json:"teacher"`
}

type nameDTO struct {
	Name string `json:"name"`
}

// ToScheduleTargets returns the groups whose name contains term, ignoring
// case. Group names double as ids because the lessons endpoint is keyed by
// name.
func ToScheduleTargets(entries []SearchEntryDTO, term string) []university.ScheduleTarget {
	needle := strings.ToLower(strings.TrimSpace(term))
	var targets []university.ScheduleTarget
	for _, e := range entries {
		if !strings.Contains(strings.ToLower(e.Name), needle) {
			continue
		}
		targets = append(targets, university.ScheduleTarget{
			ID:         e.Name,
			Label:      e.Name,
			Type:       TargetType,
			GUID:       string(e.ID),
			IsCombined: strings.Contains(e.Name, ";"),
		})
	}
	return targets
}

// ToLessonSlots flattens the pairs of every day between from and to
// (inclusive, by calendar date). Pairs without lessons are skipped.
func ToLessonSlots(s ScheduleDTO, from, to time.Time) []university.LessonSlot {
	first := dateOnly(from)
	last := dateOnly(to)

	var slots []university.LessonSlot
	for _, w := range s.Weeks {
		for _, d := range w.Days {
			day, err := time.Parse(DateLayout, strings.TrimSpace(d.Date))
			if err != nil || day.Before(first) || day.After(last) {
				continue
			}
			for _, p := range d.Pairs {
				if len(p.Lessons) == 0 {
					continue
				}
				slot := university.LessonSlot{
					BeginLesson:     p.StartTime,
					EndLesson:       p.EndTime,
					DayOfWeek:       DayNumber(d.Name),
					DayOfWeekString: d.Name,
					URLs:            []university.Link{},
				}
				for _, l := range p.Lessons {
					slot.Auditoriums = append(slot.Auditoriums, orNone(l.Audience))
					slot.Disciplines = append(slot.Disciplines, orNone(l.Subject))
					slot.KindOfWorks = append(slot.KindOfWorks, orNone(l.Kind.Name))
					slot.Lecturers = append(slot.Lecturers, orNone(l.Teacher.Name))
					slot.LecturerTitles = append(slot.LecturerTitles, ruz.Placeholder)
					slot.LecturerEmails = append(slot.LecturerEmails, ruz.Placeholder)
					slot.Streams = append(slot.Streams, orNone(l.Group))
					slot.Groups = append(slot.Groups, orNone(l.Group))
				}
				slots = append(slots, slot)
			}
		}
	}
	return slots
}

// DayNumber maps a Russian weekday name to 1 (Monday) .. 7 (Sunday), or 0.
func DayNumber(name string) int {
	prefix := []rune(strings.ToLower(strings.TrimSpace(name)))
	if len(prefix) < 2 {
		return 0
	}
	switch string(prefix[:2]) {
	case "по":
		return 1
	case "вт":
		return 2
	case "ср":
		return 3
	case "че":
		return 4
	case "пя":
		return 5
	case "су":
		return 6
	case "во":
		return 7
	}
	return 0
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return ruz.Placeholder
	}
	return s
}
