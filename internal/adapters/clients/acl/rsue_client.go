package acl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/campus-superapp/internal/adapters/clients/acl/rasp"
	"github.com/jsamuelsen11/campus-superapp/internal/adapters/clients/acl/site"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/university"
	"github.com/jsamuelsen11/campus-superapp/internal/platform/httpclient"
	"github.com/jsamuelsen11/campus-superapp/internal/ports"
)

// RSUE upstream paths.
const (
	rsueSearchPath  = "/api/v1/schedule/search/"
	rsueLessonsPath = "/api/v1/schedule/lessons/"
	rsueNewsPath    = "/universitet/novosti/"
)

// Compile-time interface check.
var _ ports.UniversityClient = (*RSUEClient)(nil)

// RSUEClient is the outbound adapter for the Rostov State University of
// Economics. It covers timetables and news; the site publishes no calendar
// feed, dean-office services or library catalogue, so those return empty
// results.
type RSUEClient struct {
	schedule *Requester
	site     *Requester
	domain   string
	logger   *slog.Logger
}

// NewRSUEClient creates an RSUEClient.
func NewRSUEClient(schedule, siteClient *httpclient.Client, siteDomain string, logger *slog.Logger) *RSUEClient {
	return &RSUEClient{
		schedule: NewRequester(schedule, logger),
		site:     NewRequester(siteClient, logger),
		domain:   siteDomain,
		logger:   logger,
	}
}

// SearchSchedule loads the group list and keeps names containing term.
func (c *RSUEClient) SearchSchedule(ctx context.Context, term string) ([]university.ScheduleTarget, error) {
	var entries []rasp.SearchEntryDTO
	if err := c.schedule.GetJSON(ctx, rsueSearchPath, nil, &entries); err != nil {
		return nil, err
	}
	return rasp.ToScheduleTargets(entries, term), nil
}

// Schedule loads the lessons of the group named q.TargetID. The upstream
// returns whole weeks; days outside q are dropped.
func (c *RSUEClient) Schedule(ctx context.Context, q university.ScheduleQuery) ([]university.LessonSlot, error) {
	path := rsueLessonsPath + url.PathEscape(strings.TrimSpace(q.TargetID)) + "/"

	var dto rasp.ScheduleDTO
	if err := c.schedule.GetJSON(ctx, path, nil, &dto); err != nil {
		return nil, err
	}
	return rasp.ToLessonSlots(dto, q.Start, q.Finish), nil
}

// News scrapes the news list.
func (c *RSUEClient) News(ctx context.Context) ([]university.NewsItem, error) {
	doc, err := c.site.GetHTML(ctx, rsueNewsPath, nil)
	if err != nil {
		return nil, err
	}
	return site.RSUENews(doc, c.site.BaseURL()), nil
}

// NewsArticle loads a news page from rsue.ru.
func (c *RSUEClient) NewsArticle(ctx context.Context, rawURL string) (*university.NewsArticle, error) {
	target, err := articleURL(rawURL, c.domain)
	if err != nil {
		return nil, err
	}
	doc, err := c.site.GetHTML(ctx, target, nil)
	if err != nil {
		return nil, err
	}
	content := site.RSUEArticle(doc)
	if content == "" {
		c.logger.WarnContext(ctx, "news content not found", slog.String("url", target))
	}
	return &university.NewsArticle{URL: target, Content: content}, nil
}

// Calendar returns no events.
func (c *RSUEClient) Calendar(context.Context, university.DateRange) ([]university.CalendarEvent, error) {
	return []university.CalendarEvent{}, nil
}

// DeanOffice returns no services.
func (c *RSUEClient) DeanOffice(context.Context) ([]university.DeanOfficeLink, error) {
	return []university.DeanOfficeLink{}, nil
}

// Library returns an empty page.
func (c *RSUEClient) Library(_ context.Context, lang string) (*university.LibraryPage, error) {
	return &university.LibraryPage{Language: strings.TrimSpace(lang)}, nil
}
