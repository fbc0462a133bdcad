package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/campus-superapp/internal/adapters/clients/acl/ruz"
	"github.com/jsamuelsen11/campus-superapp/internal/adapters/clients/acl/site"
	"github.com/jsamuelsen11/campus-superapp/internal/domain"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/university"
	"github.com/jsamuelsen11/campus-superapp/internal/platform/httpclient"
	"github.com/jsamuelsen11/campus-superapp/internal/ports"
)

// Financial University upstream paths.
const (
	faSearchPath     = "/api/search"
	faSchedulePath   = "/api/schedule/%s/%s"
	faCalendarPath   = "/ajax/events-all.php"
	faDeanOfficePath = "/university/services/ez/"
	faNewsPath       = "/university/press-center/"
	faLibraryPath    = "/res_mainres.asp"

	// The events feed on www.fa.ru.
	faCalendarIBlock = "2"
	faCalendarBlock  = "29137"

	ruzDateLayout      = "2006.01.02"
	faCalendarLayout   = "02.01.2006"
	defaultLibraryLang = "rus"
)

// Compile-time interface check.
var _ ports.UniversityClient = (*FinancialClient)(nil)

// FinancialClient is the outbound adapter for the Financial University: the
// RUZ timetable API, the www.fa.ru site and the library catalogue.
//
// Each upstream has its own [httpclient.Client] and therefore its own
// circuit breaker, so an outage of the site does not block timetables.
type FinancialClient struct {
	schedule *Requester
	site     *Requester
	library  *Requester
	domain   string
	logger   *slog.Logger
}

// NewFinancialClient creates a FinancialClient. siteDomain is the domain
// news article urls must belong to (e.g. "fa.ru").
func NewFinancialClient(schedule, siteClient, library *httpclient.Client, siteDomain string, logger *slog.Logger) *FinancialClient {
	return &FinancialClient{
		schedule: NewRequester(schedule, logger),
		site:     NewRequester(siteClient, logger),
		library:  NewRequester(library, logger),
		domain:   siteDomain,
		logger:   logger,
	}
}

// SearchSchedule queries GET /api/search?term= and drops lecturer hits.
func (c *FinancialClient) SearchSchedule(ctx context.Context, term string) ([]university.ScheduleTarget, error) {
	var dtos []ruz.SearchResultDTO
	if err := c.schedule.GetJSON(ctx, faSearchPath, url.Values{"term": {term}}, &dtos); err != nil {
		return nil, err
	}
	return ruz.ToScheduleTargets(dtos), nil
}

// Schedule queries GET /api/schedule/{kind}/{id} for the requested range.
func (c *FinancialClient) Schedule(ctx context.Context, q university.ScheduleQuery) ([]university.LessonSlot, error) {
	path := fmt.Sprintf(faSchedulePath, url.PathEscape(q.Kind), url.PathEscape(q.TargetID))
	query := url.Values{
		"start":  {q.Start.Format(ruzDateLayout)},
		"finish": {q.Finish.Format(ruzDateLayout)},
		"lng":    {"1"},
	}

	var dtos []ruz.LessonDTO
	if err := c.schedule.GetJSON(ctx, path, query, &dtos); err != nil {
		return nil, err
	}
	return ruz.ToLessonSlots(dtos), nil
}

// News scrapes the press-center page.
func (c *FinancialClient) News(ctx context.Context) ([]university.NewsItem, error) {
	doc, err := c.site.GetHTML(ctx, faNewsPath, nil)
	if err != nil {
		return nil, err
	}
	return site.FinancialNews(doc, c.site.BaseURL()), nil
}

// NewsArticle loads a news page from the university site.
func (c *FinancialClient) NewsArticle(ctx context.Context, rawURL string) (*university.NewsArticle, error) {
	target, err := articleURL(rawURL, c.domain)
	if err != nil {
		return nil, err
	}
	doc, err := c.site.GetHTML(ctx, target, nil)
	if err != nil {
		return nil, err
	}
	return &university.NewsArticle{URL: target, Content: site.FinancialArticle(doc)}, nil
}

// Calendar loads the events feed for r.
func (c *FinancialClient) Calendar(ctx context.Context, r university.DateRange) ([]university.CalendarEvent, error) {
	query := url.Values{
		"iblock":    {faCalendarIBlock},
		"block":     {faCalendarBlock},
		"date-from": {r.From.Format(faCalendarLayout)},
		"date-to":   {r.To.Format(faCalendarLayout)},
	}
	doc, err := c.site.GetHTML(ctx, faCalendarPath, query)
	if err != nil {
		return nil, err
	}
	return site.FinancialCalendar(doc), nil
}

// DeanOffice scrapes the online dean-office services page.
func (c *FinancialClient) DeanOffice(ctx context.Context) ([]university.DeanOfficeLink, error) {
	doc, err := c.site.GetHTML(ctx, faDeanOfficePath, nil)
	if err != nil {
		return nil, err
	}
	return site.FinancialDeanOffice(doc, c.site.BaseURL()), nil
}

// Library returns the catalogue page for lang ("rus" when empty).
func (c *FinancialClient) Library(ctx context.Context, lang string) (*university.LibraryPage, error) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		lang = defaultLibraryLang
	}
	body, err := c.library.Get(ctx, faLibraryPath, url.Values{"cat": {lang}})
	if err != nil {
		return nil, err
	}
	return &university.LibraryPage{Language: lang, HTML: string(body)}, nil
}

// articleURL checks that raw is an absolute url on domain.
func articleURL(raw, domainName string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", domain.NewValidationError("url", domain.MsgRequired)
	}
	if !site.SameSite(raw, domainName) {
		return "", domain.NewValidationError("url", "must be a page on "+domainName)
	}
	return raw, nil
}
