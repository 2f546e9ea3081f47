package canvas

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// linkRe matches one entry of an RFC 5988 Link header as Canvas emits it:
// <https://canvas.example.edu/api/v1/courses?page=2>; rel="next"
var linkRe = regexp.MustCompile(`<([^>]+)>\s*;\s*rel="([^"]+)"`)

// ParseLinkHeader extracts the rel -> URL mapping from a Link response
// header. Canvas uses the rels "current", "next", "prev", "first" and
// "last"; a missing "next" means the final page.
func ParseLinkHeader(header string) map[string]string {
	links := make(map[string]string)
	for _, part := range strings.Split(header, ",") {
		if m := linkRe.FindStringSubmatch(part); m != nil {
			links[m[2]] = m[1]
		}
	}
	return links
}

// linkSink lets do() hand the parsed Link header to pagination results
// without widening every call signature.
type linkSink interface {
	setLinks(map[string]string)
	target() any
}

// page captures one response page plus its pagination links.
type page struct {
	rows  []json.RawMessage
	links map[string]string
}

func (p *page) setLinks(links map[string]string) { p.links = links }
func (p *page) target() any                      { return &p.rows }

// Pager walks a paginated Canvas collection by following the Link header's
// rel="next" URL. Rows come back raw; callers decode them into their
// resource type.
type Pager struct {
	client  *Client
	path    string
	query   url.Values
	started bool
	next    string
}

// List starts a Pager over the collection at path. The first Next call
// fetches the first page.
func (c *Client) List(path string, query url.Values) *Pager {
	return &Pager{client: c, path: path, query: query}
}

// HasMore reports whether another page is available. Always true before
// the first fetch.
func (p *Pager) HasMore() bool {
	return !p.started || p.next != ""
}

// Next fetches the next page and returns its rows. After the last page it
// returns (nil, nil).
func (p *Pager) Next(ctx context.Context) ([]json.RawMessage, error) {
	if !p.HasMore() {
		return nil, nil
	}

	var pg page
	if !p.started {
		p.started = true
		if err := p.client.Get(ctx, p.path, p.query, &pg); err != nil {
			return nil, err
		}
	} else {
		path, query, err := p.client.relativize(p.next)
		if err != nil {
			return nil, err
		}
		if err := p.client.Get(ctx, path, query, &pg); err != nil {
			return nil, err
		}
	}

	p.next = pg.links["next"]
	return pg.rows, nil
}

// All exhausts every remaining page and returns the rows concatenated.
func (p *Pager) All(ctx context.Context) ([]json.RawMessage, error) {
	var all []json.RawMessage
	for p.HasMore() {
		rows, err := p.Next(ctx)
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
	}
	return all, nil
}

// relativize turns an absolute pagination URL from the Link header back
// into an API-relative path plus query.
func (c *Client) relativize(raw string) (string, url.Values, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", nil, fmt.Errorf("invalid pagination link %q: %w", raw, err)
	}
	base, err := url.Parse(c.config.apiBase())
	if err != nil {
		return "", nil, fmt.Errorf("invalid base URL: %w", err)
	}
	path := strings.TrimPrefix(u.Path, base.Path)
	path = strings.TrimLeft(path, "/")
	if path == "" {
		return "", nil, fmt.Errorf("pagination link %q does not match base URL", raw)
	}
	return path, u.Query(), nil
}
