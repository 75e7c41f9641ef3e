// Package confession loads and queries historic confession documents
// stored as structured JSON, and imports the Westminster Confession from
// its plain-text source.
package confession

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Section is one chapter of a confession document.
type Section struct {
	Chapter string   `json:"chapter"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Topics  []string `json:"topics"`
}

// Document is a confession with its chapters and the union of their topics.
type Document struct {
	Title    string    `json:"title"`
	Type     string    `json:"type"`
	Date     string    `json:"date"`
	Topics   []string  `json:"topics"`
	Sections []Section `json:"sections"`
}

// Load reads a confession document from a JSON file.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening confession: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a confession document from JSON.
func Decode(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decoding confession: %w", err)
	}
	return &d, nil
}

// Save writes the document as indented JSON.
func (d *Document) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Chapter returns the section for a chapter number.
func (d *Document) Chapter(n int) (*Section, bool) {
	want := strconv.Itoa(n)
	for i := range d.Sections {
		if d.Sections[i].Chapter == want {
			return &d.Sections[i], true
		}
	}
	return nil, false
}

// ByTopic returns every section tagged with the topic.
func (d *Document) ByTopic(topic string) []Section {
	topic = strings.ToLower(strings.TrimSpace(topic))
	var out []Section
	for _, s := range d.Sections {
		for _, t := range s.Topics {
			if t == topic {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// Search returns sections whose title or content contains the query,
// case-insensitively.
func (d *Document) Search(query string) []Section {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var out []Section
	for _, s := range d.Sections {
		if strings.Contains(strings.ToLower(s.Title), query) ||
			strings.Contains(strings.ToLower(s.Content), query) {
			out = append(out, s)
		}
	}
	return out
}
