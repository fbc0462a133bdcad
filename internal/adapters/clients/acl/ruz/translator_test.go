package ruz

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/jsamuelsen11/campus-superapp/internal/domain/university"
)

func TestID_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want ID
	}{
		{"number", `{"id": 12345}`, "12345"},
		{"string", `{"id": "abc-1"}`, "abc-1"},
		{"null", `{"id": null}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var dto SearchResultDTO
			if err := json.Unmarshal([]byte(tt.in), &dto); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if dto.ID != tt.want {
				t.Errorf("ID = %q, want %q", dto.ID, tt.want)
			}
		})
	}
}

func TestToScheduleTargets(t *testing.T) {
	t.Parallel()

	dtos := []SearchResultDTO{
		{ID: "1", Label: "ПИ21-1", Type: "group", Description: "Факультет ИТ", GUID: "g1"},
		{ID: "2", Label: "Иванов И.И.", Type: "lecturer"},
		{ID: "3", Label: "ПИ21-1;ПИ21-2", Type: "group"},
		{ID: "4", Label: "Ауд. 401", Type: "auditorium"},
	}

	got := ToScheduleTargets(dtos)
	want := []university.ScheduleTarget{
		{ID: "1", Label: "ПИ21-1", Type: "group", Description: "Факультет ИТ", GUID: "g1"},
		{ID: "3", Label: "ПИ21-1;ПИ21-2", Type: "group", IsCombined: true},
		{ID: "4", Label: "Ауд. 401", Type: "auditorium"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToScheduleTargets() = %+v, want %+v", got, want)
	}
}

func TestToLessonSlots(t *testing.T) {
	t.Parallel()

	lessons := []LessonDTO{
		{
			Date: "2025.03.03", BeginLesson: "08:30", EndLesson: "10:00", DayOfWeek: 1, DayOfWeekString: "Пн",
			Discipline: "Математика", Auditorium: "401", Lecturer: "Петров", Group: "ПИ21-1",
			URL1: "https://meet.example/1", URL1Description: "Вебинар",
		},
		{
			Date: "2025.03.03", BeginLesson: "10:10", EndLesson: "11:40", DayOfWeek: 1, DayOfWeekString: "Пн",
			Discipline: "Экономика",
		},
		{
			Date: "2025.03.03", BeginLesson: "08:30", EndLesson: "10:00", DayOfWeek: 1, DayOfWeekString: "Пн",
			Discipline: "Математика", Auditorium: "402", Group: "ПИ21-2", URL2: "none",
		},
		{
			Date: "2025.03.04", BeginLesson: "08:30", EndLesson: "10:00", DayOfWeek: 2, DayOfWeekString: "Вт",
			Discipline: "История",
		},
	}

	got := ToLessonSlots(lessons)
	if len(got) != 3 {
		t.Fatalf("ToLessonSlots() returned %d slots, want 3", len(got))
	}

	first := got[0]
	if first.BeginLesson != "08:30" || first.DayOfWeek != 1 {
		t.Errorf("first slot = %s day %d", first.BeginLesson, first.DayOfWeek)
	}
	if want := []string{"401", "402"}; !reflect.DeepEqual(first.Auditoriums, want) {
		t.Errorf("Auditoriums = %v, want %v", first.Auditoriums, want)
	}
	if want := []string{"Петров", Placeholder}; !reflect.DeepEqual(first.Lecturers, want) {
		t.Errorf("Lecturers = %v, want %v", first.Lecturers, want)
	}
	if want := []string{Placeholder, Placeholder}; !reflect.DeepEqual(first.LecturerEmails, want) {
		t.Errorf("LecturerEmails = %v, want %v", first.LecturerEmails, want)
	}
	if want := []university.Link{{URL: "https://meet.example/1", Description: "Вебинар"}}; !reflect.DeepEqual(first.URLs, want) {
		t.Errorf("URLs = %+v, want %+v", first.URLs, want)
	}

	if got[1].BeginLesson != "10:10" {
		t.Errorf("second slot starts at %s, want 10:10", got[1].BeginLesson)
	}
	if got[2].DayOfWeek != 2 || len(got[2].Disciplines) != 1 {
		t.Errorf("lessons on another day must not merge: %+v", got[2])
	}
}
