package fetch

import (
	"bytes"
	"context"
	"sort"
	"strings"

	"theologai/core/crossref"
	"theologai/core/ref"
)

// DefaultCrossRefDataset is the OpenBible.info cross-reference TSV.
const DefaultCrossRefDataset = "https://a.openbible.info/data/cross-references.txt"

// OpenBibleClient serves cross-references from the OpenBible.info
// dataset. The full TSV is fetched once and cached by the response store.
type OpenBibleClient struct {
	Client     *Client
	DatasetURL string
}

// NewOpenBibleClient builds an OpenBibleClient over the shared HTTP core.
func NewOpenBibleClient(c *Client) *OpenBibleClient {
	return &OpenBibleClient{Client: c, DatasetURL: DefaultCrossRefDataset}
}

// CrossReferences returns cross-references for a verse or chapter, most
// voted first. limit <= 0 means no limit.
func (o *OpenBibleClient) CrossReferences(ctx context.Context, r ref.Ref, limit int) ([]crossref.CrossRef, error) {
	body, err := o.Client.Get(ctx, "openbible", o.DatasetURL, nil)
	if err != nil {
		return nil, err
	}

	rows, err := crossref.ParseTSV(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	from := ref.ToDottedToken(r)
	var matched []crossref.CrossRef
	for _, row := range rows {
		if row.From == from {
			matched = append(matched, row)
			continue
		}
		// A chapter-only lookup collects every verse of the chapter.
		if r.Verse == 0 && strings.HasPrefix(row.From, from+".") {
			matched = append(matched, row)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Votes > matched[j].Votes
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}
