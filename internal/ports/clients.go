package ports

import (
	"context"

	"github.com/jsamuelsen11/campus-superapp/internal/domain/university"
)

// UniversityClient reads a university's public web services. One
// implementation exists per supported university site; the ACL translates
// their payloads and HTML into domain types.
type UniversityClient interface {
	// SearchSchedule finds timetables (groups, rooms) matching term.
	SearchSchedule(ctx context.Context, term string) ([]university.ScheduleTarget, error)

	// Schedule returns the lessons of a timetable grouped by start time.
	Schedule(ctx context.Context, q university.ScheduleQuery) ([]university.LessonSlot, error)

	// News returns the latest press-center entries.
	News(ctx context.Context) ([]university.NewsItem, error)

	// NewsArticle loads the text of a news page. Returns domain.ErrValidation
	// if url does not belong to the university site.
	NewsArticle(ctx context.Context, url string) (*university.NewsArticle, error)

	// Calendar returns the events within r.
	Calendar(ctx context.Context, r university.DateRange) ([]university.CalendarEvent, error)

	// DeanOffice returns the online dean-office services.
	DeanOffice(ctx context.Context) ([]university.DeanOfficeLink, error)

	// Library returns the library catalogue page for lang.
	Library(ctx context.Context, lang string) (*university.LibraryPage, error)
}
