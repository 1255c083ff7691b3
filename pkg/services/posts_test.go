package services

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/blloydimmunology/Portfolio/pkg/models"
)

func writePost(t *testing.T, dir, slug, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, slug+".md"), []byte(content), 0644); err != nil {
		t.Fatalf("write fixture %s: %v", slug, err)
	}
}

func newTestStore(t *testing.T) (*PostStore, string) {
	t.Helper()
	dir := t.TempDir()
	return NewPostStore(dir), dir
}

func TestAll_SortsByDateDescending(t *testing.T) {
	store, dir := newTestStore(t)
	writePost(t, dir, "old-post", "---\ntitle: Old\ndate: \"2023-01-01\"\ntopic: Immunology\n---\nold\n")
	writePost(t, dir, "new-post", "---\ntitle: New\ndate: \"2024-06-01\"\ntopic: Immunology\n---\nnew\n")
	writePost(t, dir, "mid-post", "---\ntitle: Mid\ndate: \"2023-09-15\"\ntopic: Cardiology\n---\nmid\n")

	posts, err := store.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}

	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	for i, want := range []string{"new-post", "mid-post", "old-post"} {
		if posts[i].Slug != want {
			t.Errorf("position %d: got %q, want %q", i, posts[i].Slug, want)
		}
	}
}

func TestAll_InvalidDateSortsOldest(t *testing.T) {
	store, dir := newTestStore(t)
	writePost(t, dir, "no-date", "---\ntitle: Undated\ntopic: Genetics\n---\nbody\n")
	writePost(t, dir, "dated", "---\ntitle: Dated\ndate: \"2020-01-01\"\ntopic: Genetics\n---\nbody\n")

	posts, err := store.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}

	if posts[len(posts)-1].Slug != "no-date" {
		t.Errorf("post without a parseable date should sort last, got order %v", slugs(posts))
	}
}

func TestAll_TieBreakIsStable(t *testing.T) {
	store, dir := newTestStore(t)
	writePost(t, dir, "a-post", "---\ntitle: A\ndate: \"2024-01-01\"\ntopic: Genetics\n---\nbody\n")
	writePost(t, dir, "b-post", "---\ntitle: B\ndate: \"2024-01-01\"\ntopic: Genetics\n---\nbody\n")

	first, err := store.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	second, err := store.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}

	if !reflect.DeepEqual(slugs(first), slugs(second)) {
		t.Errorf("equal dates should keep a deterministic order: %v vs %v", slugs(first), slugs(second))
	}
}

func TestAll_ParseFailureFailsWholeLoad(t *testing.T) {
	store, dir := newTestStore(t)
	writePost(t, dir, "good", "---\ntitle: Good\ndate: \"2024-01-01\"\ntopic: Genetics\n---\nbody\n")
	writePost(t, dir, "bad", "---\ntitle: [unclosed\n---\nbody\n")

	if _, err := store.All(); err == nil {
		t.Fatal("expected a malformed file to fail the whole load")
	}
}

func TestAll_MissingDirectoryErrors(t *testing.T) {
	store := NewPostStore("/nonexistent/posts")
	if _, err := store.All(); err == nil {
		t.Fatal("expected error for missing content directory")
	}
}

func TestAll_IgnoresNonMarkdownEntries(t *testing.T) {
	store, dir := newTestStore(t)
	writePost(t, dir, "only", "---\ntitle: Only\ndate: \"2024-01-01\"\ntopic: Genetics\n---\nbody\n")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not markdown"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "drafts.md"), 0755); err != nil {
		t.Fatal(err)
	}

	posts, err := store.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "only" {
		t.Errorf("expected only the .md file to load, got %v", slugs(posts))
	}
}

func TestTopics_DistinctAndSorted(t *testing.T) {
	store, dir := newTestStore(t)
	writePost(t, dir, "p1", "---\ntitle: One\ndate: \"2024-01-03\"\ntopic: Immunology\n---\nbody\n")
	writePost(t, dir, "p2", "---\ntitle: Two\ndate: \"2024-01-02\"\ntopic: Cardiology\n---\nbody\n")
	writePost(t, dir, "p3", "---\ntitle: Three\ndate: \"2024-01-01\"\ntopic: immunology\n---\nbody\n")

	topics, err := store.Topics()
	if err != nil {
		t.Fatalf("Topics: %v", err)
	}

	// "immunology" is the same topic as "Immunology"; the first occurrence
	// (newest post) wins for display case.
	want := []string{"Cardiology", "Immunology"}
	if !reflect.DeepEqual(topics, want) {
		t.Errorf("Topics = %v, want %v", topics, want)
	}
}

func TestByTopic_CaseInsensitive(t *testing.T) {
	store, dir := newTestStore(t)
	writePost(t, dir, "p1", "---\ntitle: One\ndate: \"2024-01-01\"\ntopic: Immunology\n---\nbody\n")
	writePost(t, dir, "p2", "---\ntitle: Two\ndate: \"2024-01-02\"\ntopic: Cardiology\n---\nbody\n")

	lower, err := store.ByTopic("immunology")
	if err != nil {
		t.Fatalf("ByTopic: %v", err)
	}
	upper, err := store.ByTopic("Immunology")
	if err != nil {
		t.Fatalf("ByTopic: %v", err)
	}

	if !reflect.DeepEqual(slugs(lower), slugs(upper)) {
		t.Errorf("case should not matter: %v vs %v", slugs(lower), slugs(upper))
	}
	if len(lower) != 1 || lower[0].Slug != "p1" {
		t.Errorf("unexpected matches: %v", slugs(lower))
	}
}

func TestByTopic_NoMatchIsEmptyNotError(t *testing.T) {
	store, dir := newTestStore(t)
	writePost(t, dir, "p1", "---\ntitle: One\ndate: \"2024-01-01\"\ntopic: Immunology\n---\nbody\n")

	posts, err := store.ByTopic("Astrology")
	if err != nil {
		t.Fatalf("ByTopic: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("expected empty result, got %v", slugs(posts))
	}
}

func TestSubtopics(t *testing.T) {
	store, dir := newTestStore(t)
	writePost(t, dir, "p1", "---\ntitle: One\ndate: \"2024-01-02\"\ntopic: Immunology\nsubtopics: [Vaccines, T Cells]\n---\nbody\n")
	writePost(t, dir, "p2", "---\ntitle: Two\ndate: \"2024-01-01\"\ntopic: immunology\nsubtopics: [Vaccines, Antibodies]\n---\nbody\n")
	writePost(t, dir, "p3", "---\ntitle: Three\ndate: \"2024-01-01\"\ntopic: Cardiology\nsubtopics: [Arrhythmia]\n---\nbody\n")

	subtopics, err := store.Subtopics("Immunology")
	if err != nil {
		t.Fatalf("Subtopics: %v", err)
	}

	want := []string{"Antibodies", "T Cells", "Vaccines"}
	if !reflect.DeepEqual(subtopics, want) {
		t.Errorf("Subtopics = %v, want %v", subtopics, want)
	}
}

func TestSubtopics_EmptyWhenNoneDeclared(t *testing.T) {
	store, dir := newTestStore(t)
	writePost(t, dir, "p1", "---\ntitle: One\ndate: \"2024-01-01\"\ntopic: Immunology\n---\nbody\n")

	subtopics, err := store.Subtopics("Immunology")
	if err != nil {
		t.Fatalf("Subtopics: %v", err)
	}
	if len(subtopics) != 0 {
		t.Errorf("expected no subtopics, got %v", subtopics)
	}
}

func TestGet(t *testing.T) {
	store, dir := newTestStore(t)
	writePost(t, dir, "vaccine-basics", "---\ntitle: Vaccine Basics\ndate: \"2024-01-01\"\ntopic: Immunology\n---\nbody\n")
	writePost(t, dir, "heart-failure", "---\ntitle: Heart Failure\ndate: \"2024-01-02\"\ntopic: Cardiology\n---\nbody\n")

	post, found, err := store.Get("immunology", "vaccine-basics")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("expected post to be found")
	}
	if post.Title != "Vaccine Basics" {
		t.Errorf("wrong post: %q", post.Title)
	}

	// Same slug under a different topic must not match.
	if _, found, _ := store.Get("Cardiology", "vaccine-basics"); found {
		t.Error("slug should not match under a different topic")
	}
	if _, found, _ := store.Get("Immunology", "no-such-slug"); found {
		t.Error("absent slug should not be found")
	}
}

func TestSearch(t *testing.T) {
	store, dir := newTestStore(t)
	writePost(t, dir, "vaccine-basics", "---\ntitle: Vaccine Basics\ndate: \"2024-01-02\"\npreview: Intro\ntopic: Immunology\n---\nbody\n")
	writePost(t, dir, "heart-failure", "---\ntitle: Heart Failure\ndate: \"2024-01-01\"\npreview: Pump problems\ntopic: Cardiology\n---\nbody\n")

	results, err := store.Search("immun")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Slug != "vaccine-basics" {
		t.Errorf("Search(immun) = %v", slugs(results))
	}

	// Preview field matches too.
	results, err = store.Search("PUMP")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Slug != "heart-failure" {
		t.Errorf("Search(PUMP) = %v", slugs(results))
	}

	// Body content never matches.
	results, err = store.Search("body")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("body text should not be searched, got %v", slugs(results))
	}
}

func TestSearch_KeepsDateOrder(t *testing.T) {
	store, dir := newTestStore(t)
	writePost(t, dir, "older", "---\ntitle: Immune Memory\ndate: \"2023-01-01\"\ntopic: Immunology\n---\nbody\n")
	writePost(t, dir, "newer", "---\ntitle: Immune Tolerance\ndate: \"2024-01-01\"\ntopic: Immunology\n---\nbody\n")

	results, err := store.Search("immune")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !reflect.DeepEqual(slugs(results), []string{"newer", "older"}) {
		t.Errorf("results should keep date-descending order: %v", slugs(results))
	}
}

func slugs(posts []models.Post) []string {
	out := make([]string, len(posts))
	for i, post := range posts {
		out[i] = post.Slug
	}
	return out
}
