package site

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/jsamuelsen11/campus-superapp/internal/domain/university"
)

// RSUENews extracts the news list of rsue.ru.
func RSUENews(doc *html.Node, base string) []university.NewsItem {
	var items []university.NewsItem
	for _, block := range findAll(doc, tag(atom.Div, "news-item")) {
		link := findFirst(findFirst(block, byID(atom.Div, "news-title")), tag(atom.A))
		title := text(link)
		href := AbsoluteURL(base, attr(link, "href"))
		if title == "" || href == "" {
			continue
		}
		img := findFirst(findFirst(block, byID(atom.Div, "news-image")), tag(atom.Img))
		items = append(items, university.NewsItem{
			Title:    title,
			URL:      href,
			ImageURL: AbsoluteURL(base, attr(img, "src")),
		})
	}
	return items
}

// RSUEArticle joins the paragraphs of a rsue.ru news page.
func RSUEArticle(doc *html.Node) string {
	body := findFirst(doc, byID(atom.Div, "text-news"))
	var parts []string
	for _, p := range findAll(body, tag(atom.P)) {
		if s := paragraphs(p); s != "" {
			parts = append(parts, strings.ReplaceAll(s, "\n\n", "\n"))
		}
	}
	return strings.Join(parts, "\n\n")
}
