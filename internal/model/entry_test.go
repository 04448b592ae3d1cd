package model

import "testing"

func TestDisplayName(t *testing.T) {
	entry := &MediaEntry{Path: "/videos/clip one.mp4"}
	if got := entry.DisplayName(); got != "clip one" {
		t.Errorf("Expected display name 'clip one', got '%s'", got)
	}

	entry.Title = "Clip One (Remastered)"
	if got := entry.DisplayName(); got != "Clip One (Remastered)" {
		t.Errorf("Expected tag title to win, got '%s'", got)
	}
}

func TestHasMetadata(t *testing.T) {
	entry := &MediaEntry{Path: "/videos/a.mp4"}
	if entry.HasMetadata() {
		t.Error("Fresh entry should not report metadata")
	}

	entry.DurationMs = 90000
	if !entry.HasMetadata() {
		t.Error("Entry with duration should report metadata")
	}
}

func TestFormatSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "—"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{5 * MiB, "5.0 MB"},
		{3 * GiB, "3.0 GB"},
	}

	for _, c := range cases {
		if got := FormatSize(c.bytes); got != c.want {
			t.Errorf("FormatSize(%d) = '%s', want '%s'", c.bytes, got, c.want)
		}
	}
}
