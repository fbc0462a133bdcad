package university

import "time"

// ScheduleTarget is a schedule search hit: a group, an auditorium or any
// other entity the timetable service can be queried by.
type ScheduleTarget struct {
	ID          string
	Label       string
	Type        string
	Description string
	GUID        string
	IsCombined  bool
}

// Link is a url with a human description.
type Link struct {
	URL         string
	Description string
}

// LessonSlot groups every lesson that starts at the same time.
type LessonSlot struct {
	BeginLesson     string
	EndLesson       string
	DayOfWeek       int
	DayOfWeekString string
	Auditoriums     []string
	Disciplines     []string
	KindOfWorks     []string
	Lecturers       []string
	LecturerTitles  []string
	LecturerEmails  []string
	Streams         []string
	Groups          []string
	URLs            []Link
}

// NewsItem is a press-center entry.
type NewsItem struct {
	Title    string
	URL      string
	ImageURL string
}

// NewsArticle is the normalized body of a news page.
type NewsArticle struct {
	URL     string
	Content string
}

// CalendarEvent is a university event card.
type CalendarEvent struct {
	Title string
	Date  string
	Time  string
	Place string
}

// DeanOfficeLink is an online dean-office service.
type DeanOfficeLink struct {
	Title string
	URL   string
}

// LibraryPage is the raw catalogue page for a language.
type LibraryPage struct {
	Language string
	HTML     string
}

// Overview aggregates the landing-page content of a university.
type Overview struct {
	News       []NewsItem
	Events     []CalendarEvent
	DeanOffice []DeanOfficeLink
}

// ScheduleQuery selects a timetable and the date range to load.
type ScheduleQuery struct {
	Kind     string
	TargetID string
	Start    time.Time
	Finish   time.Time
}

// DateRange bounds a calendar lookup, both ends inclusive.
type DateRange struct {
	From time.Time
	To   time.Time
}
