package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/campus-superapp/internal/app/fanout"
)

// section stands in for one block of the university overview.
type section struct {
	name  string
	delay time.Duration
	err   error
	panic bool
}

func loadSection(ctx context.Context, s section) (string, error) {
	if s.panic {
		panic("unexpected markup in " + s.name)
	}
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return "", ctx.Err()
	}
	if s.err != nil {
		return "", s.err
	}
	return s.name + " loaded", nil
}

func TestRun(t *testing.T) {
	t.Parallel()

	errScrape := errors.New("dean office page unavailable")

	tests := []struct {
		name       string
		maxWorkers int
		sections   []section
		wantValues []string
		wantErrs   []error
		wantPanic  []bool
	}{
		{
			name:       "empty overview",
			maxWorkers: 3,
		},
		{
			name:       "keeps input order when later sections finish first",
			maxWorkers: 3,
			sections: []section{
				{name: "news", delay: 30 * time.Millisecond},
				{name: "events", delay: 10 * time.Millisecond},
				{name: "dean_office", delay: 20 * time.Millisecond},
			},
			wantValues: []string{"news loaded", "events loaded", "dean_office loaded"},
			wantErrs:   []error{nil, nil, nil},
			wantPanic:  []bool{false, false, false},
		},
		{
			name:       "one failing section leaves the others intact",
			maxWorkers: 2,
			sections: []section{
				{name: "news"},
				{name: "dean_office", err: errScrape},
				{name: "events"},
			},
			wantValues: []string{"news loaded", "", "events loaded"},
			wantErrs:   []error{nil, errScrape, nil},
			wantPanic:  []bool{false, false, false},
		},
		{
			name:       "panicking section becomes its error",
			maxWorkers: 3,
			sections: []section{
				{name: "news", panic: true},
				{name: "events"},
			},
			wantValues: []string{"", "events loaded"},
			wantErrs:   []error{nil, nil},
			wantPanic:  []bool{true, false},
		},
		{
			name:       "zero workers runs everything",
			maxWorkers: 0,
			sections:   []section{{name: "news"}, {name: "events"}},
			wantValues: []string{"news loaded", "events loaded"},
			wantErrs:   []error{nil, nil},
			wantPanic:  []bool{false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			results := fanout.Run(context.Background(), tt.maxWorkers, tt.sections, loadSection)
			if len(results) != len(tt.sections) {
				t.Fatalf("len(results) = %d, want %d", len(results), len(tt.sections))
			}

			for i, r := range results {
				if r.Value != tt.wantValues[i] {
					t.Errorf("results[%d].Value = %q, want %q", i, r.Value, tt.wantValues[i])
				}

				var pe *fanout.PanicError
				gotPanic := errors.As(r.Err, &pe)
				if gotPanic != tt.wantPanic[i] {
					t.Errorf("results[%d] panic error = %v, want %v (err %v)", i, gotPanic, tt.wantPanic[i], r.Err)
				}
				if gotPanic {
					if len(pe.Stack) == 0 {
						t.Errorf("results[%d] panic error has no stack", i)
					}
					continue
				}
				if !errors.Is(r.Err, tt.wantErrs[i]) || (tt.wantErrs[i] == nil && r.Err != nil) {
					t.Errorf("results[%d].Err = %v, want %v", i, r.Err, tt.wantErrs[i])
				}
			}
		})
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		maxWorkers int
		items      int
		wantPeak   int32
	}{
		{name: "fewer workers than items", maxWorkers: 3, items: 15, wantPeak: 3},
		{name: "single worker serialises", maxWorkers: 1, items: 4, wantPeak: 1},
		{name: "more workers than items", maxWorkers: 100, items: 2, wantPeak: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var active, peak atomic.Int32
			results := fanout.Run(context.Background(), tt.maxWorkers, make([]int, tt.items), func(context.Context, int) (int, error) {
				cur := active.Add(1)
				defer active.Add(-1)
				for {
					p := peak.Load()
					if cur <= p || peak.CompareAndSwap(p, cur) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				return 0, nil
			})

			if len(results) != tt.items {
				t.Fatalf("len(results) = %d, want %d", len(results), tt.items)
			}
			if p := peak.Load(); p > tt.wantPeak {
				t.Errorf("peak concurrency = %d, want at most %d", p, tt.wantPeak)
			}
		})
	}
}

func TestRun_CanceledWhileQueued(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	sections := []section{{name: "news"}, {name: "events"}, {name: "dean_office"}}
	results := fanout.Run(ctx, 1, sections, func(ctx context.Context, s section) (string, error) {
		calls.Add(1)
		cancel()
		<-ctx.Done()
		return "", ctx.Err()
	})

	if c := calls.Load(); c != 1 {
		t.Errorf("fn called %d times, want 1", c)
	}
	for i, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("results[%d].Err = %v, want context.Canceled", i, r.Err)
		}
	}
}

func TestFailed(t *testing.T) {
	t.Parallel()

	errNews, errEvents := errors.New("news"), errors.New("events")

	tests := []struct {
		name    string
		results []fanout.Result[string]
		want    []error
	}{
		{name: "all loaded", results: []fanout.Result[string]{{Value: "a"}, {Value: "b"}}},
		{
			name:    "failures in input order",
			results: []fanout.Result[string]{{Err: errNews}, {Value: "dean"}, {Err: errEvents}},
			want:    []error{errNews, errEvents},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fanout.Failed(tt.results)
			if len(got) != len(tt.want) {
				t.Fatalf("Failed() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Failed()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
