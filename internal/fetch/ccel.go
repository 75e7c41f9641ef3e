package fetch

import (
	"context"
	"fmt"
	"path"
	"time"

	"theologai/core/ref"
	"theologai/core/toc"
	"theologai/internal/cache"
)

const ccelBase = "https://www.ccel.org/ccel"

// CCELClient fetches commentary pages and tables of contents from the
// Christian Classics Ethereal Library. Parsed TOCs are held in memory so
// repeated queries against the same work skip re-parsing.
type CCELClient struct {
	Client  *Client
	BaseURL string
	tocs    *cache.TTLCache[string, toc.ParsedTOC]
}

// NewCCELClient builds a CCELClient over the shared HTTP core.
func NewCCELClient(c *Client) *CCELClient {
	return &CCELClient{
		Client: c,
		tocs:   cache.New[string, toc.ParsedTOC](time.Hour),
	}
}

func (c *CCELClient) base() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return ccelBase
}

// Commentary is a retrieved commentary section.
type Commentary struct {
	Reference string
	Work      string
	Section   string
	Text      string
}

// Commentary fetches the commentary page for a reference in the given
// edition and reduces it to plain text.
func (c *CCELClient) Commentary(ctx context.Context, ed ref.CommentaryEdition, r ref.Ref) (*Commentary, error) {
	p, err := ref.ToCCELCommentary(ed, r)
	if err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/%s/%s.html", c.base(), p.Work, p.Section)
	body, err := c.Client.Get(ctx, "ccel", u, nil)
	if err != nil {
		return nil, err
	}

	return &Commentary{
		Reference: r.Display(),
		Work:      p.Work,
		Section:   p.Section,
		Text:      StripHTML(string(body)),
	}, nil
}

// TOC fetches and parses the table of contents for a work such as
// "calvin/institutes".
func (c *CCELClient) TOC(ctx context.Context, work string) (toc.ParsedTOC, error) {
	if parsed, ok := c.tocs.Get(work); ok {
		return parsed, nil
	}

	u := fmt.Sprintf("%s/%s/%s.toc.html", c.base(), work, path.Base(work))
	body, err := c.Client.Get(ctx, "ccel", u, nil)
	if err != nil {
		return toc.ParsedTOC{}, err
	}

	parsed := toc.NewParsedTOC(work, toc.Extract(string(body)))
	c.tocs.Set(work, parsed)
	return parsed, nil
}

// Section fetches one section page of a work as plain text.
func (c *CCELClient) Section(ctx context.Context, work, section string) (string, error) {
	u := fmt.Sprintf("%s/%s/%s.html", c.base(), work, section)
	body, err := c.Client.Get(ctx, "ccel", u, nil)
	if err != nil {
		return "", err
	}
	return StripHTML(string(body)), nil
}
