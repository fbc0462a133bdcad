package ruz

import (
	"strconv"
	"strings"

	"github.com/jsamuelsen11/campus-superapp/internal/domain/university"
)

// Placeholder stored for missing lesson fields so the parallel slices of a
// slot stay aligned.
const Placeholder = "none"

const typeLecturer = "lecturer"

// ToScheduleTargets converts search results, dropping lecturers.
func ToScheduleTargets(dtos []SearchResultDTO) []university.ScheduleTarget {
	targets := make([]university.ScheduleTarget, 0, len(dtos))
	for _, d := range dtos {
		if d.Type == typeLecturer {
			continue
		}
		targets = append(targets, university.ScheduleTarget{
			ID:          string(d.ID),
			Label:       d.Label,
			Type:        d.Type,
			Description: d.Description,
			GUID:        d.GUID,
			IsCombined:  strings.Contains(d.Label, ";"),
		})
	}
	return targets
}

// ToLessonSlots groups lessons that start at the same time on the same day,
// keeping the order in which slots first appear.
func ToLessonSlots(lessons []LessonDTO) []university.LessonSlot {
	slots := make([]university.LessonSlot, 0, len(lessons))
	index := make(map[string]int, len(lessons))

	for _, l := range lessons {
		key := l.Date + "|" + l.BeginLesson
		if l.Date == "" {
			key = strconv.Itoa(l.DayOfWeek) + "|" + l.BeginLesson
		}

		i, ok := index[key]
		if !ok {
			i = len(slots)
			index[key] = i
			slots = append(slots, university.LessonSlot{
				BeginLesson:     l.BeginLesson,
				EndLesson:       l.EndLesson,
				DayOfWeek:       l.DayOfWeek,
				DayOfWeekString: l.DayOfWeekString,
			})
		}

		s := &slots[i]
		s.Auditoriums = append(s.Auditoriums, orNone(l.Auditorium))
		s.Disciplines = append(s.Disciplines, orNone(l.Discipline))
		s.KindOfWorks = append(s.KindOfWorks, orNone(l.KindOfWork))
		s.Lecturers = append(s.Lecturers, orNone(l.Lecturer))
		s.LecturerTitles = append(s.LecturerTitles, orNone(l.LecturerTitle))
		s.LecturerEmails = append(s.LecturerEmails, orNone(l.LecturerEmail))
		s.Streams = append(s.Streams, orNone(l.Stream))
		s.Groups = append(s.Groups, orNone(l.Group))
		s.URLs = appendLink(s.URLs, l.URL1, l.URL1Description)
		s.URLs = appendLink(s.URLs, l.URL2, l.URL2Description)
	}
	return slots
}

func appendLink(links []university.Link, url, description string) []university.Link {
	if url == "" || url == Placeholder {
		return links
	}
	return append(links, university.Link{URL: url, Description: orNone(description)})
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}
