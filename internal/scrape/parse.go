package scrape

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"studyspaces/internal/domain"
)

// ParseMeetings extracts raw meeting rows from a course detail page. Newer
// pages embed the rows as JSON in a <script id="meetings-data"> element;
// older ones render a <table class="meetings"> with time, days, and location
// cells. The JSON payload wins when both are present.
func ParseMeetings(r io.Reader) ([]domain.RawMeeting, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	if payload := findMeetingsPayload(doc); payload != "" {
		var meetings []domain.RawMeeting
		if err := json.Unmarshal([]byte(payload), &meetings); err != nil {
			return nil, fmt.Errorf("decode meetings payload: %w", err)
		}
		return meetings, nil
	}
	return meetingsFromTable(doc), nil
}

// findMeetingsPayload returns the text of <script id="meetings-data"
// type="application/json">, or "" when the page has none.
func findMeetingsPayload(doc *html.Node) string {
	var payload string
	walk(doc, func(n *html.Node) {
		if payload != "" || n.Type != html.ElementNode || n.Data != "script" {
			return
		}
		if attr(n, "id") == "meetings-data" && attr(n, "type") == "application/json" {
			payload = strings.TrimSpace(textContent(n))
		}
	})
	return payload
}

// meetingsFromTable reads rows of <table class="meetings">, taking the first
// three cells of each row as time, days, and location. Header rows (th
// cells) and short rows are skipped.
func meetingsFromTable(doc *html.Node) []domain.RawMeeting {
	var meetings []domain.RawMeeting
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "table" || !hasClass(n, "meetings") {
			return
		}
		walk(n, func(row *html.Node) {
			if row.Type != html.ElementNode || row.Data != "tr" {
				return
			}
			var cells []string
			for c := row.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && c.Data == "td" {
					cells = append(cells, strings.TrimSpace(textContent(c)))
				}
			}
			if len(cells) < 3 {
				return
			}
			meetings = append(meetings, domain.RawMeeting{
				Time:     cells[0],
				Days:     cells[1],
				Location: cells[2],
			})
		})
	})
	return meetings
}

// parseCourseList extracts <a class="course-link"> anchors from a department
// listing page, resolving each href against base.
func parseCourseList(r io.Reader, base *url.URL) ([]Course, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var courses []Course
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "a" || !hasClass(n, "course-link") {
			return
		}
		href := attr(n, "href")
		if href == "" {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		courses = append(courses, Course{
			Name: strings.TrimSpace(textContent(n)),
			URL:  base.ResolveReference(ref).String(),
		})
	})
	return courses, nil
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	})
	return sb.String()
}
