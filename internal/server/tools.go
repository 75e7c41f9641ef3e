// Package server exposes the lookup tools over JSON-RPC 2.0, on stdio
// for editor integrations and on a websocket endpoint for long-lived
// clients.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"theologai/core/crossref"
	"theologai/core/ref"
	"theologai/core/toc"
	"theologai/internal/fetch"
	"theologai/internal/logging"
)

// PassageProvider fetches scripture text.
type PassageProvider interface {
	Lookup(ctx context.Context, r ref.Ref) (*fetch.Passage, error)
}

// ClassicsProvider fetches commentary sections and classic-work pages.
type ClassicsProvider interface {
	Commentary(ctx context.Context, ed ref.CommentaryEdition, r ref.Ref) (*fetch.Commentary, error)
	TOC(ctx context.Context, work string) (toc.ParsedTOC, error)
	Section(ctx context.Context, work, section string) (string, error)
}

// CrossRefProvider serves vote-ranked cross-references.
type CrossRefProvider interface {
	CrossReferences(ctx context.Context, r ref.Ref, limit int) ([]crossref.CrossRef, error)
}

// Tool is one callable tool with its JSON schema for discovery.
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]any
	Handler     func(ctx context.Context, args json.RawMessage) (string, error)
}

// Registry holds the registered tools.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool, replacing any previous tool of the same name.
func (r *Registry) Register(t Tool) {
	r.tools[t.Name] = t
}

// List returns the registered tools sorted by name.
func (r *Registry) List() []Tool {
	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Call invokes a tool by name and logs the outcome.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (string, error) {
	t, ok := r.tools[name]
	if !ok {
		return "", fmt.Errorf("unknown tool %q", name)
	}
	start := time.Now()
	result, err := t.Handler(ctx, args)
	logging.ToolCall(ctx, name, time.Since(start), err)
	return result, err
}
