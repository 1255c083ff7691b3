package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
)

// postFrontMatter is the YAML front-matter block at the head of each
// article file. Every field is optional; ApplyDefaults fills the gaps.
type postFrontMatter struct {
	Title     string   `yaml:"title"`
	Date      string   `yaml:"date"`
	Preview   string   `yaml:"preview"`
	Topic     string   `yaml:"topic"`
	Subtopics []string `yaml:"subtopics"`
	Image     string   `yaml:"image"`
}

// ApplyDefaults makes the defaulting policy for missing fields explicit
// rather than leaving zero values to mean whatever callers assume.
func (fm *postFrontMatter) ApplyDefaults() {
	if fm.Title == "" {
		fm.Title = "Untitled"
	}
	if fm.Topic == "" {
		fm.Topic = "Uncategorized"
	}
	if fm.Subtopics == nil {
		fm.Subtopics = []string{}
	}
}

// ParseFrontMatter extracts the metadata block and the markdown body from
// raw article file bytes.
func ParseFrontMatter(source []byte) (postFrontMatter, string, error) {
	var fm postFrontMatter

	body, err := frontmatter.Parse(bytes.NewReader(source), &fm)
	if err != nil {
		return postFrontMatter{}, "", fmt.Errorf("parse frontmatter: %w", err)
	}

	fm.ApplyDefaults()
	return fm, string(bytes.TrimSpace(body)), nil
}

// dateLayouts are tried in order when coercing the free-form date string.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006/01/02",
}

// ParseDate coerces an article date string to a comparable time. Anything
// unparseable maps to the zero time, which sorts as the oldest possible
// value; two unparseable dates are therefore equal to each other.
func ParseDate(value string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
