package models

// Post represents a single published article backed by one markdown file.
type Post struct {
	Slug      string   `json:"slug"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Preview   string   `json:"preview"`
	Topic     string   `json:"topic"`
	Subtopics []string `json:"subtopics"`
	Image     string   `json:"image,omitempty"`
	Content   string   `json:"content,omitempty"` // Raw markdown body
}

// Topic pairs a topic name with its display metadata from topics.yaml.
type Topic struct {
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}
