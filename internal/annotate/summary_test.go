package annotate

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSummarizeShortBody(t *testing.T) {
	t.Parallel()

	if got := Summarize("Title", "short"); got != "Title. short" {
		t.Fatalf("unexpected summary: %q", got)
	}
}

func TestSummarizeTakesLeadingSentences(t *testing.T) {
	t.Parallel()

	body := "The first sentence is comfortably long enough. " +
		"The second sentence also clears the bar easily. " +
		"A third sentence that should be ignored entirely."

	got := Summarize("T", body)
	want := "The first sentence is comfortably long enough. " +
		"The second sentence also clears the bar easily."
	if got != want {
		t.Fatalf("unexpected summary: %q", got)
	}
}

func TestSummarizeTruncatesLongSummaries(t *testing.T) {
	t.Parallel()

	body := strings.TrimSpace(strings.Repeat("unpunctuated words keep flowing onward ", 20))

	got := Summarize("T", body)
	if utf8.RuneCountInString(got) > 403 {
		t.Fatalf("summary too long: %d runes", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got[len(got)-10:])
	}
}

func TestSummarizeRescuesThinSummaries(t *testing.T) {
	t.Parallel()

	// One qualifying sentence just over twenty characters followed by noise
	// produces a summary under thirty; the title and body head take over.
	body := "Just over twenty chars ok. a. b. c. d. e. f. g. h. i. j."

	got := Summarize("Headline", body)
	if !strings.HasPrefix(got, "Headline. ") {
		t.Fatalf("expected title-led rescue, got %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("rescue must end with ellipsis, got %q", got)
	}
}

func TestSummarizeRescueEllipsisOnShortBodies(t *testing.T) {
	t.Parallel()

	// Body head well under the rescue window still gets the marker.
	body := "Market moved today ok. a. b. c. d. e. f. g. h. i. j."

	got := Summarize("Headline", body)
	want := "Headline. " + body + "..."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSummarizeFallbackWhenNoSentenceQualifies(t *testing.T) {
	t.Parallel()

	body := "one. two. three. four. five. six. seven. eight. nine. ten. more."

	got := Summarize("T", body)
	if got == "" {
		t.Fatal("expected non-empty summary")
	}
	if !strings.Contains(got, "one") {
		t.Fatalf("expected body head in fallback, got %q", got)
	}
}
