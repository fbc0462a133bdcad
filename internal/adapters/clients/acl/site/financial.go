package site

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/jsamuelsen11/campus-superapp/internal/domain/university"
)

// Labels the Financial University calendar puts in front of event details.
const (
	labelDate = "Дата проведения"
	labelTime = "Время проведения"
)

// FinancialNews extracts the press-center news cards.
func FinancialNews(doc *html.Node, base string) []university.NewsItem {
	var items []university.NewsItem
	for _, link := range findAll(doc, tag(atom.A, "news-card__link")) {
		scope := link
		if findFirst(scope, heading("news-card__title")) == nil && link.Parent != nil {
			scope = link.Parent
		}

		title := text(findFirst(scope, heading("news-card__title")))
		href := AbsoluteURL(base, attr(link, "href"))
		if title == "" || href == "" {
			continue
		}
		items = append(items, university.NewsItem{
			Title:    title,
			URL:      href,
			ImageURL: AbsoluteURL(base, attr(findFirst(scope, tag(atom.Img)), "src")),
		})
	}
	return items
}

// FinancialArticle returns the text of a news page. Pages without the article
// section yield an empty string.
func FinancialArticle(doc *html.Node) string {
	section := findFirst(doc, tag(atom.Section, "app-section", "_is-slim", "_gutter-md"))
	return paragraphs(section)
}

// FinancialCalendar extracts the event cards of the calendar feed.
func FinancialCalendar(doc *html.Node) []university.CalendarEvent {
	var events []university.CalendarEvent
	for _, card := range findAll(doc, tag(atom.Article, "event-card")) {
		events = append(events, university.CalendarEvent{
			Title: text(findFirst(card, heading("event-card__title"))),
			Date:  labelled(card, labelDate),
			Time:  labelled(card, labelTime),
			Place: text(findFirst(card, tag(atom.Address, "ui-links__link"))),
		})
	}
	return events
}

// labelled returns the <time> that follows the label div reading label.
func labelled(card *html.Node, label string) string {
	for _, l := range findAll(card, tag(atom.Div, "ui-links__label")) {
		if text(l) != label {
			continue
		}
		if next := nextElement(l); next != nil && next.DataAtom == atom.Time {
			return text(next)
		}
	}
	return ""
}

// FinancialDeanOffice extracts the online dean-office service cards. Cards
// without a title or a primary link are skipped.
func FinancialDeanOffice(doc *html.Node, base string) []university.DeanOfficeLink {
	var links []university.DeanOfficeLink
	for _, card := range findAll(doc, tag(atom.Article, "page-card-link", "app-card")) {
		title := text(findFirst(card, heading("page-card-link__title")))
		button := findFirst(card, func(n *html.Node) bool {
			return n.DataAtom == atom.A && hasClasses(n, "_primary") && hasClassPrefix(n, "ui-icon-button")
		})
		href := AbsoluteURL(base, attr(button, "href"))
		if title == "" || href == "" {
			continue
		}
		links = append(links, university.DeanOfficeLink{Title: title, URL: href})
	}
	return links
}

func hasClassPrefix(n *html.Node, prefix string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}
