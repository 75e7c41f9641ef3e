package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"theologai/core/ref"
)

const esvPassageURL = "https://api.esv.org/v3/passage/text/"

// ESVClient fetches passage text from the ESV API. Token is the API key
// issued by Crossway. BaseURL defaults to the production endpoint.
type ESVClient struct {
	Client  *Client
	Token   string
	BaseURL string
}

// Passage is a retrieved scripture passage.
type Passage struct {
	Reference   string
	Text        string
	Translation string
}

type esvResponse struct {
	Canonical string   `json:"canonical"`
	Passages  []string `json:"passages"`
}

// Lookup fetches the text of a reference.
func (e *ESVClient) Lookup(ctx context.Context, r ref.Ref) (*Passage, error) {
	q := url.Values{}
	q.Set("q", ref.ESVQuery(r))
	q.Set("include-headings", "false")
	q.Set("include-footnotes", "false")
	q.Set("include-verse-numbers", "true")
	q.Set("include-passage-references", "false")

	base := e.BaseURL
	if base == "" {
		base = esvPassageURL
	}

	headers := map[string]string{"Authorization": "Token " + e.Token}
	body, err := e.Client.Get(ctx, "esv", base+"?"+q.Encode(), headers)
	if err != nil {
		return nil, err
	}

	var resp esvResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding esv response: %w", err)
	}
	if len(resp.Passages) == 0 {
		return nil, fmt.Errorf("esv returned no passages for %q", ref.ESVQuery(r))
	}

	return &Passage{
		Reference:   resp.Canonical,
		Text:        strings.TrimSpace(strings.Join(resp.Passages, "\n\n")),
		Translation: "ESV",
	}, nil
}
