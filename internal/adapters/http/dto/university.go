package dto

import "github.com/jsamuelsen11/campus-superapp/internal/domain/university"

// PaymentOptionResponse is a dean-office payment link.
type PaymentOptionResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Caption string `json:"caption"`
	URL     string `json:"url"`
}

// UniversityResponse is a directory entry.
type UniversityResponse struct {
	ID             string                  `json:"id"`
	Title          string                  `json:"title"`
	ShortTitle     string                  `json:"short_title"`
	Domain         string                  `json:"domain"`
	PaymentOptions []PaymentOptionResponse `json:"payment_options"`
}

// UniversityListResponse lists the directory.
type UniversityListResponse struct {
	Universities []UniversityResponse `json:"universities"`
}

// ToUniversityListResponse converts the directory entries.
func ToUniversityListResponse(unis []university.University) UniversityListResponse {
	out := make([]UniversityResponse, len(unis))
	for i, u := range unis {
		opts := make([]PaymentOptionResponse, len(u.PaymentOptions))
		for j, o := range u.PaymentOptions {
			opts[j] = PaymentOptionResponse(o)
		}
		out[i] = UniversityResponse{
			ID:             u.ID,
			Title:          u.Title,
			ShortTitle:     u.ShortTitle,
			Domain:         u.Domain,
			PaymentOptions: opts,
		}
	}
	return UniversityListResponse{Universities: out}
}

// ScheduleTargetResponse is a schedule search hit.
type ScheduleTargetResponse struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	Description string `json:"description"`
	GUID        string `json:"guid,omitempty"`
	IsCombined  bool   `json:"is_combined"`
}

// ToScheduleTargetResponses converts search hits.
func ToScheduleTargetResponses(targets []university.ScheduleTarget) []ScheduleTargetResponse {
	out := make([]ScheduleTargetResponse, len(targets))
	for i, t := range targets {
		out[i] = ScheduleTargetResponse(t)
	}
	return out
}

// LinkResponse is a lesson link.
type LinkResponse struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

// LessonSlotResponse groups the lessons starting at the same time.
type LessonSlotResponse struct {
	BeginLesson     string         `json:"begin_lesson"`
	EndLesson       string         `json:"end_lesson"`
	DayOfWeek       int            `json:"day_of_week"`
	DayOfWeekString string         `json:"day_of_week_string"`
	Auditoriums     []string       `json:"auditoriums"`
	Disciplines     []string       `json:"disciplines"`
	KindOfWorks     []string       `json:"kind_of_works"`
	Lecturers       []string       `json:"lecturers"`
	LecturerTitles  []string       `json:"lecturer_titles"`
	LecturerEmails  []string       `json:"lecturer_emails"`
	Streams         []string       `json:"streams"`
	Groups          []string       `json:"groups"`
	URLs            []LinkResponse `json:"urls"`
}

// ToLessonSlotResponses converts timetable slots.
func ToLessonSlotResponses(slots []university.LessonSlot) []LessonSlotResponse {
	out := make([]LessonSlotResponse, len(slots))
	for i, s := range slots {
		links := make([]LinkResponse, len(s.URLs))
		for j, l := range s.URLs {
			links[j] = LinkResponse(l)
		}
		out[i] = LessonSlotResponse{
			BeginLesson:     s.BeginLesson,
			EndLesson:       s.EndLesson,
			DayOfWeek:       s.DayOfWeek,
			DayOfWeekString: s.DayOfWeekString,
			Auditoriums:     nonNil(s.Auditoriums),
			Disciplines:     nonNil(s.Disciplines),
			KindOfWorks:     nonNil(s.KindOfWorks),
			Lecturers:       nonNil(s.Lecturers),
			LecturerTitles:  nonNil(s.LecturerTitles),
			LecturerEmails:  nonNil(s.LecturerEmails),
			Streams:         nonNil(s.Streams),
			Groups:          nonNil(s.Groups),
			URLs:            links,
		}
	}
	return out
}

// NewsItemResponse is a press-center entry.
type NewsItemResponse struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	ImageURL string `json:"image_url,omitempty"`
}

// NewsArticleResponse is the text of a news page.
type NewsArticleResponse struct {
	URL     string `json:"url"`
	Content string `json:"content"`
}

// CalendarEventResponse is a university event.
type CalendarEventResponse struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Place string `json:"place"`
}

// DeanOfficeLinkResponse is an online dean-office service.
type DeanOfficeLinkResponse struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// LibraryPageResponse is the raw catalogue page.
type LibraryPageResponse struct {
	Language string `json:"language"`
	HTML     string `json:"html"`
}

// OverviewResponse is the university landing page.
type OverviewResponse struct {
	News       []NewsItemResponse       `json:"news"`
	Events     []CalendarEventResponse  `json:"events"`
	DeanOffice []DeanOfficeLinkResponse `json:"dean_office"`
}

// ToNewsResponses converts news entries.
func ToNewsResponses(items []university.NewsItem) []NewsItemResponse {
	out := make([]NewsItemResponse, len(items))
	for i, n := range items {
		out[i] = NewsItemResponse(n)
	}
	return out
}

// ToCalendarResponses converts events.
func ToCalendarResponses(events []university.CalendarEvent) []CalendarEventResponse {
	out := make([]CalendarEventResponse, len(events))
	for i, e := range events {
		out[i] = CalendarEventResponse(e)
	}
	return out
}

// ToDeanOfficeResponses converts dean-office links.
func ToDeanOfficeResponses(links []university.DeanOfficeLink) []DeanOfficeLinkResponse {
	out := make([]DeanOfficeLinkResponse, len(links))
	for i, l := range links {
		out[i] = DeanOfficeLinkResponse(l)
	}
	return out
}

// ToOverviewResponse converts the landing page content.
func ToOverviewResponse(o *university.Overview) OverviewResponse {
	return OverviewResponse{
		News:       ToNewsResponses(o.News),
		Events:     ToCalendarResponses(o.Events),
		DeanOffice: ToDeanOfficeResponses(o.DeanOffice),
	}
}
