package site

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/jsamuelsen11/campus-superapp/internal/domain/university"
)

const faBase = "https://www.fa.ru"

func mustParse(t *testing.T, s string) *html.Node {
	t.Helper()

	doc, err := Parse(strings.NewReader(s))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc
}

func TestFinancialNews(t *testing.T) {
	t.Parallel()

	page := `<div class="news-list">
	  <div class="news-card">
	    <a class="news-card__link" href="/university/press-center/news/1/">
	      <img src="/upload/1.jpg" alt="">
	      <h3 class="news-card__title">Открытие&nbsp;<b>форума</b></h3>
	    </a>
	  </div>
	  <div class="news-card">
	    <a class="news-card__link" href="https://www.fa.ru/news/2/"></a>
	    <img src="https://cdn.fa.ru/2.jpg">
	    <h4 class="news-card__title">Second</h4>
	  </div>
	  <div class="news-card">
	    <a class="news-card__link" href="/news/3/"><h3 class="news-card__title">  </h3></a>
	  </div>
	</div>`

	got := FinancialNews(mustParse(t, page), faBase)
	want := []university.NewsItem{
		{Title: "Открытие форума", URL: "https://www.fa.ru/university/press-center/news/1/", ImageURL: "https://www.fa.ru/upload/1.jpg"},
		{Title: "Second", URL: "https://www.fa.ru/news/2/", ImageURL: "https://cdn.fa.ru/2.jpg"},
	}
	if len(got) != len(want) {
		t.Fatalf("FinancialNews() returned %d items, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFinancialArticle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page string
		want string
	}{
		{
			name: "paragraphs and breaks",
			page: `<main><section class="app-section _is-slim _gutter-md">
				<h2>Заголовок</h2>
				<p>Первый   абзац<br>с переносом</p>
				<div><p></p></div>
				<ul><li>Пункт <a href="#">один</a></li></ul>
			</section></main>`,
			want: "Заголовок\n\nПервый абзац\n\nс переносом\n\nПункт один",
		},
		{
			name: "missing section",
			page: `<section class="app-section">text</section>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FinancialArticle(mustParse(t, tt.page)); got != tt.want {
				t.Errorf("FinancialArticle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFinancialCalendar(t *testing.T) {
	t.Parallel()

	page := `<article class="event-card">
	  <h4 class="event-card__title">День открытых дверей</h4>
	  <div class="ui-links">
	    <div class="ui-links__label">Дата проведения</div>
	    <time datetime="2025-03-01">1 марта</time>
	    <div class="ui-links__label">Время проведения</div>
	    <time>12:00</time>
	    <address class="ui-links__link">Ленинградский пр., 49</address>
	  </div>
	</article>
	<article class="event-card"><h4 class="event-card__title">Без деталей</h4></article>`

	got := FinancialCalendar(mustParse(t, page))
	want := []university.CalendarEvent{
		{Title: "День открытых дверей", Date: "1 марта", Time: "12:00", Place: "Ленинградский пр., 49"},
		{Title: "Без деталей"},
	}
	if len(got) != len(want) {
		t.Fatalf("FinancialCalendar() returned %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFinancialDeanOffice(t *testing.T) {
	t.Parallel()

	page := `<article class="page-card-link app-card">
	  <h4 class="page-card-link__title">Справка об обучении</h4>
	  <a class="ui-icon-button _secondary" href="/info">info</a>
	  <a class="ui-icon-button-lg _primary" href="/services/ez/spravka/">Заказать</a>
	</article>
	<article class="page-card-link app-card">
	  <h4 class="page-card-link__title">No link</h4>
	</article>`

	got := FinancialDeanOffice(mustParse(t, page), faBase)
	if len(got) != 1 {
		t.Fatalf("FinancialDeanOffice() returned %d links, want 1: %+v", len(got), got)
	}
	want := university.DeanOfficeLink{Title: "Справка об обучении", URL: "https://www.fa.ru/services/ez/spravka/"}
	if got[0] != want {
		t.Errorf("link = %+v, want %+v", got[0], want)
	}
}

func TestRSUENews(t *testing.T) {
	t.Parallel()

	page := `<div class="news-item">
	  <div id="news-date">01.03.2025</div>
	  <div id="news-image"><img src="/upload/n1.jpg"></div>
	  <div id="news-title"><a href="/universitet/novosti/1/">  Новость
	     первая </a></div>
	</div>
	<div class="news-item"><div id="news-title"></div></div>`

	got := RSUENews(mustParse(t, page), "https://rsue.ru")
	if len(got) != 1 {
		t.Fatalf("RSUENews() returned %d items, want 1", len(got))
	}
	want := university.NewsItem{Title: "Новость первая", URL: "https://rsue.ru/universitet/novosti/1/", ImageURL: "https://rsue.ru/upload/n1.jpg"}
	if got[0] != want {
		t.Errorf("item = %+v, want %+v", got[0], want)
	}
}

func TestRSUEArticle(t *testing.T) {
	t.Parallel()

	page := `<div id="text-news"><p>Первый&nbsp;абзац</p><p>  </p><p>Строка<br/>вторая</p></div>`
	want := "Первый абзац\n\nСтрока\nвторая"
	if got := RSUEArticle(mustParse(t, page)); got != want {
		t.Errorf("RSUEArticle() = %q, want %q", got, want)
	}
}

func TestAbsoluteURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ref  string
		want string
	}{
		{"", ""},
		{"/a/b", "https://www.fa.ru/a/b"},
		{"https://other.ru/x", "https://other.ru/x"},
		{"img.png", "https://www.fa.ru/img.png"},
	}
	for _, tt := range tests {
		if got := AbsoluteURL(faBase, tt.ref); got != tt.want {
			t.Errorf("AbsoluteURL(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

func TestSameSite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want bool
	}{
		{"https://www.fa.ru/news/1", true},
		{"https://fa.ru/news/1", true},
		{"http://FA.ru/", true},
		{"https://evilfa.ru/", false},
		{"https://fa.ru.evil.com/", false},
		{"file:///etc/passwd", false},
		{"/relative", false},
	}
	for _, tt := range tests {
		if got := SameSite(tt.raw, "fa.ru"); got != tt.want {
			t.Errorf("SameSite(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
