package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"theologai/core/ref"
)

const bibleAPIBase = "https://bible-api.com/"

// BibleAPIClient fetches passage text from bible-api.com. Translation
// defaults to the World English Bible when empty.
type BibleAPIClient struct {
	Client      *Client
	Translation string
	BaseURL     string
}

type bibleAPIResponse struct {
	Reference       string `json:"reference"`
	Text            string `json:"text"`
	TranslationName string `json:"translation_name"`
}

// Lookup fetches the text of a reference.
func (b *BibleAPIClient) Lookup(ctx context.Context, r ref.Ref) (*Passage, error) {
	t := ref.ToBibleAPI(r)

	spec := fmt.Sprintf("%s+%d", strings.ReplaceAll(t.BookName, " ", "+"), t.Chapter)
	if t.Verse > 0 {
		spec += fmt.Sprintf(":%d", t.Verse)
		if t.VerseEnd > 0 && t.VerseEnd != t.Verse {
			spec += fmt.Sprintf("-%d", t.VerseEnd)
		}
	}

	base := b.BaseURL
	if base == "" {
		base = bibleAPIBase
	}
	u := base + spec
	if b.Translation != "" {
		u += "?translation=" + b.Translation
	}

	body, err := b.Client.Get(ctx, "bible-api", u, nil)
	if err != nil {
		return nil, err
	}

	var resp bibleAPIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding bible-api response: %w", err)
	}

	return &Passage{
		Reference:   resp.Reference,
		Text:        strings.TrimSpace(resp.Text),
		Translation: resp.TranslationName,
	}, nil
}
