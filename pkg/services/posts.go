package services

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/blloydimmunology/Portfolio/pkg/models"
)

// PostStore answers read-only queries over the markdown files in a content
// directory. It holds no state between calls: every query re-reads the
// directory so results always reflect what is on disk.
type PostStore struct {
	dir string
}

func NewPostStore(dir string) *PostStore {
	return &PostStore{dir: dir}
}

// All returns every post sorted by date descending (newest first). Posts
// with equal or unparseable dates keep directory enumeration order, so
// repeated calls are deterministic. A file that fails to read or parse
// fails the whole load; there is no partial-result mode.
func (s *PostStore) All() ([]models.Post, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir %s: %w", s.dir, err)
	}

	posts := []models.Post{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read post %s: %w", entry.Name(), err)
		}

		fm, body, err := ParseFrontMatter(content)
		if err != nil {
			return nil, fmt.Errorf("post %s: %w", entry.Name(), err)
		}

		posts = append(posts, models.Post{
			Slug:      strings.TrimSuffix(entry.Name(), ".md"),
			Title:     fm.Title,
			Date:      fm.Date,
			Preview:   fm.Preview,
			Topic:     fm.Topic,
			Subtopics: fm.Subtopics,
			Image:     fm.Image,
			Content:   body,
		})
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return ParseDate(posts[i].Date).After(ParseDate(posts[j].Date))
	})

	return posts, nil
}

// Topics returns each distinct topic once, sorted ascending. Case is
// preserved from the first occurrence; lookups elsewhere lower-case both
// sides.
func (s *PostStore) Topics() ([]string, error) {
	posts, err := s.All()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	topics := []string{}
	for _, post := range posts {
		key := strings.ToLower(post.Topic)
		if !seen[key] {
			seen[key] = true
			topics = append(topics, post.Topic)
		}
	}

	sort.Strings(topics)
	return topics, nil
}

// ByTopic filters posts by topic, case-insensitively. No match is an empty
// slice, not an error.
func (s *PostStore) ByTopic(topic string) ([]models.Post, error) {
	posts, err := s.All()
	if err != nil {
		return nil, err
	}

	matched := []models.Post{}
	for _, post := range posts {
		if strings.EqualFold(post.Topic, topic) {
			matched = append(matched, post)
		}
	}
	return matched, nil
}

// Subtopics returns the distinct subtopics across a topic's posts, sorted
// ascending.
func (s *PostStore) Subtopics(topic string) ([]string, error) {
	posts, err := s.ByTopic(topic)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	subtopics := []string{}
	for _, post := range posts {
		for _, sub := range post.Subtopics {
			if !seen[sub] {
				seen[sub] = true
				subtopics = append(subtopics, sub)
			}
		}
	}

	sort.Strings(subtopics)
	return subtopics, nil
}

// Get finds the post with a case-insensitive topic match and an exact slug
// match. Absence is reported through the bool, never as an error.
func (s *PostStore) Get(topic, slug string) (models.Post, bool, error) {
	posts, err := s.All()
	if err != nil {
		return models.Post{}, false, err
	}

	for _, post := range posts {
		if strings.EqualFold(post.Topic, topic) && post.Slug == slug {
			return post, true, nil
		}
	}
	return models.Post{}, false, nil
}

// Search returns the posts whose title, preview, or topic contains the
// query, case-insensitively. Results keep the All() ordering; there is no
// relevance ranking.
func (s *PostStore) Search(query string) ([]models.Post, error) {
	posts, err := s.All()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matched := []models.Post{}
	for _, post := range posts {
		if strings.Contains(strings.ToLower(post.Title), q) ||
			strings.Contains(strings.ToLower(post.Preview), q) ||
			strings.Contains(strings.ToLower(post.Topic), q) {
			matched = append(matched, post)
		}
	}
	return matched, nil
}
