package ui

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"dochub/internal/feed"
)

func seededFeed(prompts ...string) *feed.Feed {
	f := feed.New(20)
	var page []feed.Record
	for i, p := range prompts {
		page = append(page, feed.Record{
			ID:        string(rune('a' + i)),
			Content:   p,
			Response:  "answer to " + p,
			CreatedAt: time.Now(),
		})
	}
	f.SetInitial(page)
	return f
}

func TestChatSetWaitingStartsStopwatchOnce(t *testing.T) {
	c := NewChat(seededFeed("hi"))
	c.SetSpace("Research")

	if cmd := c.SetWaiting(true); cmd == nil {
		t.Fatal("entering the waiting state should schedule a tick")
	}
	if !c.IsWaiting() {
		t.Error("IsWaiting should be true after SetWaiting(true)")
	}
	if cmd := c.SetWaiting(true); cmd != nil {
		t.Error("repeated SetWaiting(true) must not schedule another tick")
	}
	if cmd := c.SetWaiting(false); cmd != nil {
		t.Error("leaving the waiting state should not schedule a tick")
	}
}

func TestChatRecentPromptsNewestFirstAndCapped(t *testing.T) {
	c := NewChat(seededFeed("one", "two", "three", "four", "five", "six", "seven"))
	c.SetSpace("Research")

	got := c.recentPrompts()
	if len(got) != historyMaxEntries {
		t.Fatalf("got %d prompts, want %d", len(got), historyMaxEntries)
	}
	if got[0] != "seven" || got[len(got)-1] != "three" {
		t.Errorf("prompts = %v, want newest first ending at %q", got, "three")
	}
}

func TestChatContextLine(t *testing.T) {
	c := NewChat(feed.New(20))

	if !strings.Contains(c.contextLine(), "all documents") {
		t.Error("zero context should chat with all documents")
	}

	c.SetContextCount(1)
	if !strings.Contains(c.contextLine(), "1 selected document") {
		t.Errorf("contextLine = %q", c.contextLine())
	}

	c.SetContextCount(3)
	if !strings.Contains(c.contextLine(), "3 selected documents") {
		t.Errorf("contextLine = %q", c.contextLine())
	}
}

func TestChatShouldFetchMoreOnEmptyFeed(t *testing.T) {
	c := NewChat(feed.New(20))
	c.SetSpace("Research")
	c.SetSize(80, 24)

	if c.ShouldFetchMore() {
		t.Error("an empty feed has no older pages to fetch")
	}
}

func TestChatFetchMoreNearTopOfFullHistory(t *testing.T) {
	f := feed.New(2)
	f.SetInitial([]feed.Record{
		{ID: "a", Content: "first", CreatedAt: time.Now()},
		{ID: "b", Content: "second", CreatedAt: time.Now()},
	})
	c := NewChat(f)
	c.SetSpace("Research")
	c.SetSize(80, 24)

	if !c.ShouldFetchMore() {
		t.Error("a full first page viewed from the top should trigger an older fetch")
	}
}

func TestChatPrependOlderKeepsViewportAnchor(t *testing.T) {
	f := feed.New(4)
	f.SetInitial([]feed.Record{
		{ID: "a", Content: "first", Response: "answer one", CreatedAt: time.Now()},
		{ID: "b", Content: "second", Response: "answer two", CreatedAt: time.Now()},
		{ID: "c", Content: "third", Response: "answer three", CreatedAt: time.Now()},
		{ID: "d", Content: "fourth", Response: "answer four", CreatedAt: time.Now()},
	})
	c := NewChat(f)
	c.SetSpace("Research")
	c.SetSize(60, 12)

	oldOffset := c.viewport.YOffset()
	oldLines := c.viewport.TotalLineCount()

	if _, _, ok := f.BeginFetch(); !ok {
		t.Fatal("a full first page should allow an older fetch")
	}
	f.PrependPage([]feed.Record{
		{ID: "y", Content: "older", Response: "older answer", CreatedAt: time.Now()},
		{ID: "z", Content: "oldest", Response: "oldest answer", CreatedAt: time.Now()},
	})
	c.PrependOlder()

	delta := c.viewport.TotalLineCount() - oldLines
	if delta <= 0 {
		t.Fatal("prepending a page should grow the scrollback")
	}
	if got := c.viewport.YOffset(); got != oldOffset+delta {
		t.Errorf("YOffset = %d, want %d so the visible messages stay put", got, oldOffset+delta)
	}
}

func TestChatHistoryTruncatesMultibytePrompts(t *testing.T) {
	c := NewChat(seededFeed(strings.Repeat("ü", 80)))
	c.SetSpace("Research")
	c.SetSize(30, 24)
	c.SetShowHistory(true)

	out := c.renderHistory()
	if !utf8.ValidString(out) {
		t.Error("truncation must not split a multibyte character")
	}
	if !strings.Contains(out, "…") {
		t.Error("an over-wide prompt should be shortened with an ellipsis")
	}
}

func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{5 * time.Second, "0:05"},
		{65 * time.Second, "1:05"},
		{10 * time.Minute, "10:00"},
	}
	for _, tc := range cases {
		if got := formatElapsed(tc.d); got != tc.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestChatViewShowsWelcomeAndWaiting(t *testing.T) {
	f := feed.New(20)
	f.SetInitial(nil)
	c := NewChat(f)
	c.SetSpace("Research")
	c.SetSize(80, 24)

	if !strings.Contains(c.View(), "chatting with") {
		t.Error("the context line should always render")
	}

	_ = c.SetWaiting(true)
	view := c.View()
	if !strings.Contains(view, "Assistant:") {
		t.Error("the waiting placeholder should render an assistant header")
	}
}
