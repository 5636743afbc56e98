// Package scrape fetches department course listings and per-course meeting
// records from the university course catalog's public HTML pages.
package scrape

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"studyspaces/internal/domain"
)

// Course is one catalog course: its display name and the absolute URL of its
// detail page.
type Course struct {
	Name string
	URL  string
}

// Client fetches catalog pages over HTTP. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// NewClient returns a catalog client rooted at baseURL, e.g.
// "https://courses.illinois.edu/schedule".
func NewClient(baseURL string, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log,
	}
}

// Courses fetches the department listing page for one term and returns the
// courses it links to, with URLs resolved against the page URL.
func (c *Client) Courses(ctx context.Context, dept string, term domain.Term) ([]Course, error) {
	pageURL := fmt.Sprintf("%s/%s/%s/%s/", c.baseURL, term.Year, term.Label, strings.ToUpper(dept))
	body, err := c.get(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("scrape.Client.Courses: fetch %s: %w", pageURL, err)
	}
	defer body.Close()

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("scrape.Client.Courses: parse url %s: %w", pageURL, err)
	}
	courses, err := parseCourseList(body, base)
	if err != nil {
		return nil, fmt.Errorf("scrape.Client.Courses: parse %s: %w", pageURL, err)
	}
	c.log.Debug("fetched department listing", "department", dept, "courses", len(courses))
	return courses, nil
}

// Meetings fetches one course detail page and returns its raw meeting rows,
// unvalidated.
func (c *Client) Meetings(ctx context.Context, courseURL string) ([]domain.RawMeeting, error) {
	body, err := c.get(ctx, courseURL)
	if err != nil {
		return nil, fmt.Errorf("scrape.Client.Meetings: fetch %s: %w", courseURL, err)
	}
	defer body.Close()

	meetings, err := ParseMeetings(body)
	if err != nil {
		return nil, fmt.Errorf("scrape.Client.Meetings: parse %s: %w", courseURL, err)
	}
	return meetings, nil
}

func (c *Client) get(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}
