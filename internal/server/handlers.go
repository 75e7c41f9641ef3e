package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	cerrors "theologai/core/errors"
	"theologai/core/ref"
	"theologai/core/toc"
	"theologai/internal/confession"
	"theologai/internal/markdown"
)

// Deps carries the providers the tool handlers call. Nil providers leave
// the corresponding tools unregistered.
type Deps struct {
	ESV        PassageProvider
	BibleAPI   PassageProvider
	Classics   ClassicsProvider
	CrossRefs  CrossRefProvider
	Confession *confession.Document
}

func objectSchema(props map[string]any, required ...string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func stringProp(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func intProp(desc string) map[string]any {
	return map[string]any{"type": "integer", "description": desc}
}

func editionFor(name string) (ref.CommentaryEdition, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "henry", "matthew-henry":
		return ref.EditionMatthewHenry, nil
	case "henry-concise", "mhcc":
		return ref.EditionMatthewHenryConcise, nil
	case "calvin":
		return ref.EditionCalvin, nil
	}
	return ref.CommentaryEdition{}, fmt.Errorf("unknown commentator %q", name)
}

// NewToolRegistry builds the tool registry from the available providers.
func NewToolRegistry(deps Deps) *Registry {
	reg := NewRegistry()

	if deps.ESV != nil || deps.BibleAPI != nil {
		reg.Register(Tool{
			Name:        "bible_lookup",
			Description: "Look up a Bible passage by reference, e.g. \"John 3:16\" or \"Romans 8:28-30\".",
			InputSchema: objectSchema(map[string]any{
				"reference": stringProp("Scripture reference to look up"),
			}, "reference"),
			Handler: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Reference string `json:"reference"`
				}
				if err := json.Unmarshal(args, &in); err != nil {
					return "", err
				}
				r, err := ref.Parse(in.Reference)
				if err != nil {
					return "", err
				}
				if deps.ESV != nil {
					if p, err := deps.ESV.Lookup(ctx, r); err == nil {
						return markdown.Passage(p), nil
					}
				}
				if deps.BibleAPI == nil {
					return "", fmt.Errorf("passage lookup failed for %q", in.Reference)
				}
				p, err := deps.BibleAPI.Lookup(ctx, r)
				if err != nil {
					return "", err
				}
				return markdown.Passage(p), nil
			},
		})
	}

	if deps.Classics != nil {
		reg.Register(Tool{
			Name:        "commentary_lookup",
			Description: "Look up classic commentary on a Bible chapter. Commentators: henry (default), henry-concise, calvin.",
			InputSchema: objectSchema(map[string]any{
				"reference":   stringProp("Scripture reference, resolved to its chapter"),
				"commentator": stringProp("Which commentary to consult"),
			}, "reference"),
			Handler: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Reference   string `json:"reference"`
					Commentator string `json:"commentator"`
				}
				if err := json.Unmarshal(args, &in); err != nil {
					return "", err
				}
				r, err := ref.Parse(in.Reference)
				if err != nil {
					return "", err
				}
				ed, err := editionFor(in.Commentator)
				if err != nil {
					return "", err
				}
				c, err := deps.Classics.Commentary(ctx, ed, r)
				if err != nil {
					return "", err
				}
				return markdown.Commentary(c), nil
			},
		})

		reg.Register(Tool{
			Name:        "classic_lookup",
			Description: "Look up a section of a classic theological work on CCEL, e.g. work \"calvin/institutes\" query \"Book 1 Chapter 2\".",
			InputSchema: objectSchema(map[string]any{
				"work":  stringProp("CCEL work identifier, e.g. calvin/institutes"),
				"query": stringProp("Section to find: structured like \"Book 2 Chapter 3\" or free text"),
			}, "work", "query"),
			Handler: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Work  string `json:"work"`
					Query string `json:"query"`
				}
				if err := json.Unmarshal(args, &in); err != nil {
					return "", err
				}
				parsed, err := deps.Classics.TOC(ctx, in.Work)
				if err != nil {
					return "", err
				}
				entry := toc.Resolve(parsed.Entries, in.Query)
				if entry == nil {
					return "", cerrors.NewNotFound("section", fmt.Sprintf("%s %q", in.Work, in.Query))
				}
				text, err := deps.Classics.Section(ctx, in.Work, entry.Section)
				if err != nil {
					return "", err
				}
				return markdown.ClassicSection(in.Work, entry.Title, text), nil
			},
		})
	}

	if deps.CrossRefs != nil {
		reg.Register(Tool{
			Name:        "cross_references",
			Description: "List community-voted cross-references for a verse or chapter.",
			InputSchema: objectSchema(map[string]any{
				"reference": stringProp("Scripture reference"),
				"limit":     intProp("Maximum number of results (default 10)"),
			}, "reference"),
			Handler: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Reference string `json:"reference"`
					Limit     int    `json:"limit"`
				}
				if err := json.Unmarshal(args, &in); err != nil {
					return "", err
				}
				r, err := ref.Parse(in.Reference)
				if err != nil {
					return "", err
				}
				if in.Limit <= 0 {
					in.Limit = 10
				}
				refs, err := deps.CrossRefs.CrossReferences(ctx, r, in.Limit)
				if err != nil {
					return "", err
				}
				return markdown.CrossReferences(r, refs), nil
			},
		})
	}

	if deps.Confession != nil {
		reg.Register(Tool{
			Name:        "confession_lookup",
			Description: "Look up the Westminster Confession by chapter number, topic, or text search.",
			InputSchema: objectSchema(map[string]any{
				"chapter": intProp("Chapter number"),
				"topic":   stringProp("Topic tag, e.g. justification"),
				"query":   stringProp("Free-text search over titles and content"),
			}),
			Handler: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Chapter int    `json:"chapter"`
					Topic   string `json:"topic"`
					Query   string `json:"query"`
				}
				if err := json.Unmarshal(args, &in); err != nil {
					return "", err
				}
				doc := deps.Confession

				var sections []confession.Section
				switch {
				case in.Chapter > 0:
					s, ok := doc.Chapter(in.Chapter)
					if !ok {
						return "", cerrors.NewNotFound("chapter", strconv.Itoa(in.Chapter))
					}
					sections = []confession.Section{*s}
				case in.Topic != "":
					sections = doc.ByTopic(in.Topic)
				case in.Query != "":
					sections = doc.Search(in.Query)
				default:
					return "", fmt.Errorf("confession_lookup needs a chapter, topic, or query")
				}
				if len(sections) == 0 {
					return "", cerrors.NewNotFound("confession section", in.Topic+in.Query)
				}

				var parts []string
				for _, s := range sections {
					n, _ := strconv.Atoi(s.Chapter)
					parts = append(parts, markdown.ConfessionSection(doc.Title, s.Title, n, s.Content, s.Topics))
				}
				return strings.Join(parts, "\n---\n\n"), nil
			},
		})
	}

	return reg
}
