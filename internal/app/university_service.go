package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/singleflight"

	appctx "github.com/jsamuelsen11/campus-superapp/internal/app/context"
	"github.com/jsamuelsen11/campus-superapp/internal/app/fanout"
	"github.com/jsamuelsen11/campus-superapp/internal/domain"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/university"
	"github.com/jsamuelsen11/campus-superapp/internal/platform/telemetry"
	"github.com/jsamuelsen11/campus-superapp/internal/ports"
)

var _ ports.UniversityService = (*UniversityService)(nil)

const (
	// overviewEventsWindow is how far ahead the overview looks for events.
	overviewEventsWindow = 30 * 24 * time.Hour
	dateLayout           = "2006-01-02"
)

// ContentCacheConfig sizes the university content cache. A zero Size
// disables caching.
type ContentCacheConfig struct {
	Size int
	TTL  time.Duration
}

// UniversityService serves university content through per-university
// clients. Responses are cached for TTL and identical concurrent calls share
// one upstream request.
type UniversityService struct {
	dir     *university.Directory
	clients map[string]ports.UniversityClient
	cache   *expirable.LRU[string, any]
	group   singleflight.Group
	now     func() time.Time
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewUniversityService creates a UniversityService. clients is keyed by
// university id; universities without a client only appear in the directory.
func NewUniversityService(
	dir *university.Directory,
	clients map[string]ports.UniversityClient,
	cacheCfg ContentCacheConfig,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *UniversityService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &UniversityService{
		dir:     dir,
		clients: clients,
		now:     func() time.Time { return time.Now().UTC() },
		metrics: metrics,
		logger:  logger,
	}
	if cacheCfg.Size > 0 {
		s.cache = expirable.NewLRU[string, any](cacheCfg.Size, nil, cacheCfg.TTL)
	}
	return s
}

// Universities returns the directory in configuration order.
func (s *UniversityService) Universities() []university.University {
	return s.dir.All()
}

// SearchSchedule finds timetables matching term.
func (s *UniversityService) SearchSchedule(ctx context.Context, universityID, term string) ([]university.ScheduleTarget, error) {
	id, client, err := s.client(universityID)
	if err != nil {
		return nil, err
	}
	return cached(ctx, s, id, "search:"+term, func(ctx context.Context) ([]university.ScheduleTarget, error) {
		return client.SearchSchedule(ctx, term)
	})
}

// Schedule returns the lessons of one timetable.
func (s *UniversityService) Schedule(ctx context.Context, universityID string, q university.ScheduleQuery) ([]university.LessonSlot, error) {
	id, client, err := s.client(universityID)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("schedule:%s:%s:%s:%s", q.Kind, q.TargetID, q.Start.Format(dateLayout), q.Finish.Format(dateLayout))
	return cached(ctx, s, id, key, func(ctx context.Context) ([]university.LessonSlot, error) {
		return client.Schedule(ctx, q)
	})
}

// News returns the latest news entries.
func (s *UniversityService) News(ctx context.Context, universityID string) ([]university.NewsItem, error) {
	id, client, err := s.client(universityID)
	if err != nil {
		return nil, err
	}
	return cached(ctx, s, id, "news", client.News)
}

// NewsArticle loads the text of one news page.
func (s *UniversityService) NewsArticle(ctx context.Context, universityID, url string) (*university.NewsArticle, error) {
	id, client, err := s.client(universityID)
	if err != nil {
		return nil, err
	}
	return cached(ctx, s, id, "article:"+url, func(ctx context.Context) (*university.NewsArticle, error) {
		return client.NewsArticle(ctx, url)
	})
}

// Calendar returns the events within r.
func (s *UniversityService) Calendar(ctx context.Context, universityID string, r university.DateRange) ([]university.CalendarEvent, error) {
	id, client, err := s.client(universityID)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("calendar:%s:%s", r.From.Format(dateLayout), r.To.Format(dateLayout))
	return cached(ctx, s, id, key, func(ctx context.Context) ([]university.CalendarEvent, error) {
		return client.Calendar(ctx, r)
	})
}

// DeanOffice returns the online dean-office services.
func (s *UniversityService) DeanOffice(ctx context.Context, universityID string) ([]university.DeanOfficeLink, error) {
	id, client, err := s.client(universityID)
	if err != nil {
		return nil, err
	}
	return cached(ctx, s, id, "dean-office", client.DeanOffice)
}

// Library returns the catalogue page for lang.
func (s *UniversityService) Library(ctx context.Context, universityID, lang string) (*university.LibraryPage, error) {
	id, client, err := s.client(universityID)
	if err != nil {
		return nil, err
	}
	return cached(ctx, s, id, "library:"+lang, func(ctx context.Context) (*university.LibraryPage, error) {
		return client.Library(ctx, lang)
	})
}

type overviewSection string

const (
	sectionNews       overviewSection = "news"
	sectionEvents     overviewSection = "events"
	sectionDeanOffice overviewSection = "dean_office"
)

// Overview loads the home-screen sections in parallel. Failed sections stay
// empty; the call fails only when every section does.
func (s *UniversityService) Overview(ctx context.Context, universityID string) (*university.Overview, error) {
	if _, _, err := s.client(universityID); err != nil {
		return nil, err
	}

	today := s.now().Truncate(24 * time.Hour)
	events := university.DateRange{From: today, To: today.Add(overviewEventsWindow)}

	view := appctx.NewRef(university.Overview{})
	sections := []overviewSection{sectionNews, sectionEvents, sectionDeanOffice}

	results := fanout.Run(ctx, len(sections), sections, func(ctx context.Context, sec overviewSection) (struct{}, error) {
		switch sec {
		case sectionNews:
			items, err := s.News(ctx, universityID)
			if err != nil {
				return struct{}{}, err
			}
			view.Update(func(o *university.Overview) { o.News = items })
		case sectionEvents:
			items, err := s.Calendar(ctx, universityID, events)
			if err != nil {
				return struct{}{}, err
			}
			view.Update(func(o *university.Overview) { o.Events = items })
		case sectionDeanOffice:
			items, err := s.DeanOffice(ctx, universityID)
			if err != nil {
				return struct{}{}, err
			}
			view.Update(func(o *university.Overview) { o.DeanOffice = items })
		}
		return struct{}{}, nil
	})

	failed := fanout.Failed(results)
	for i, r := range results {
		if r.Err != nil {
			s.logger.WarnContext(ctx, "overview section failed",
				slog.String("university_id", universityID),
				slog.String("section", string(sections[i])),
				slog.Any("error", r.Err),
			)
		}
	}
	if len(failed) == len(sections) {
		return nil, fmt.Errorf("loading overview: %w", errors.Join(failed...))
	}

	out := view.Get()
	return &out, nil
}

// client resolves universityID, which may be an alias, to its client.
func (s *UniversityService) client(universityID string) (string, ports.UniversityClient, error) {
	id, ok := s.dir.ResolveID(universityID)
	if !ok {
		return "", nil, fmt.Errorf("university %q: %w", universityID, domain.ErrNotFound)
	}
	c, ok := s.clients[id]
	if !ok {
		return "", nil, fmt.Errorf("university %q has no content source: %w", id, domain.ErrNotFound)
	}
	return id, c, nil
}

// cached serves key from the content cache or calls fetch once for all
// concurrent callers. Errors are not cached.
func cached[T any](ctx context.Context, s *UniversityService, universityID, key string, fetch func(context.Context) (T, error)) (T, error) {
	fullKey := universityID + ":" + key

	if s.cache != nil {
		if v, ok := s.cache.Get(fullKey); ok {
			if t, ok := v.(T); ok {
				s.recordCache(ctx, "hit")
				return t, nil
			}
		}
		s.recordCache(ctx, "miss")
	}

	v, err, _ := s.group.Do(fullKey, func() (any, error) {
		val, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			s.cache.Add(fullKey, val)
		}
		return val, nil
	})
	if err != nil {
		var zero T
		s.logger.ErrorContext(ctx, "university content request failed",
			slog.String("university_id", universityID),
			slog.String("key", key),
			slog.Any("error", err),
		)
		return zero, err
	}
	return v.(T), nil
}

func (s *UniversityService) recordCache(ctx context.Context, outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.ContentCacheTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrCache.String(outcome)))
}
