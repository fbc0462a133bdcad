// Package ruz translates the RUZ timetable API (used by the Financial
// University) into domain types.
package ruz

import (
	"bytes"
	"encoding/json"
)

// ID accepts both JSON numbers and strings; RUZ uses either depending on the
// endpoint.
type ID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// SearchResultDTO is an entry of GET /api/search.
type SearchResultDTO struct {
	ID          ID     `json:"id"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	Description string `json:"description"`
	GUID        string `json:"guid"`
}

// LessonDTO is an entry of GET /api/schedule/{type}/{id}.
type LessonDTO struct {
	Auditorium      string `json:"auditorium"`
	BeginLesson     string `json:"beginLesson"`
	EndLesson       string `json:"endLesson"`
	Date            string `json:"date"`
	DayOfWeek       int    `json:"dayOfWeek"`
	DayOfWeekString string `json:"dayOfWeekString"`
	Discipline      string `json:"discipline"`
	KindOfWork      string `json:"kindOfWork"`
	Lecturer        string `json:"lecturer"`
	LecturerTitle   string `json:"lecturer_title"`
	LecturerEmail   string `json:"lecturerEmail"`
	Stream          string `json:"stream"`
	Group           string `json:"group"`
	URL1            string `json:"url1"`
	URL1Description string `json:"url1_description"`
	URL2            string `json:"url2"`
	URL2Description string `json:"url2_description"`
}
