package domain

import "testing"

func testProfile() *AggregatedProfile {
	return &AggregatedProfile{
		Username: "alice",
		Items: []ContentItem{
			{ID: "a", Type: ContentTypePost, Title: "First"},
			{ID: "b", Type: ContentTypeComment, Text: "Second"},
			{ID: "c", Type: ContentTypePost, Title: "Third"},
		},
	}
}

func TestItemAtUsesOneBasedIndexes(t *testing.T) {
	profile := testProfile()

	if _, ok := profile.ItemAt(0); ok {
		t.Fatalf("index 0 must not resolve, the numbering starts at 1")
	}

	first, ok := profile.ItemAt(1)
	if !ok || first.ID != "a" {
		t.Fatalf("expected item a at index 1, got %v ok=%v", first, ok)
	}

	last, ok := profile.ItemAt(3)
	if !ok || last.ID != "c" {
		t.Fatalf("expected item c at index 3, got %v ok=%v", last, ok)
	}

	if _, ok := profile.ItemAt(4); ok {
		t.Fatalf("index past the last item must not resolve")
	}
}

func TestIsEmptyReportsMissingItems(t *testing.T) {
	profile := &AggregatedProfile{Username: "alice"}
	if !profile.IsEmpty() {
		t.Fatalf("expected empty profile")
	}
	if testProfile().IsEmpty() {
		t.Fatalf("expected populated profile to be non-empty")
	}
}

func TestDisplayTextCombinesTitleAndBody(t *testing.T) {
	both := &ContentItem{Title: "My build", Text: "It uses lubed switches"}
	if got := both.DisplayText(); got != "My build: It uses lubed switches" {
		t.Fatalf("unexpected display text %q", got)
	}

	titleOnly := &ContentItem{Title: "My build"}
	if got := titleOnly.DisplayText(); got != "My build" {
		t.Fatalf("unexpected display text %q", got)
	}

	textOnly := &ContentItem{Text: "just a comment"}
	if got := textOnly.DisplayText(); got != "just a comment" {
		t.Fatalf("unexpected display text %q", got)
	}
}

func TestHasContentIgnoresMetadataOnlyItems(t *testing.T) {
	bare := &ContentItem{ID: "x", Subreddit: "golang", Permalink: "/r/golang/1"}
	if bare.HasContent() {
		t.Fatalf("item without title or text must count as empty")
	}
}
