package models

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
		want  time.Time
	}{
		{
			name:  "rfc3339 with zulu",
			input: "2026-03-15T10:30:00Z",
			ok:    true,
			want:  time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 with microseconds",
			input: "2026-03-15T10:30:00.123456Z",
			ok:    true,
			want:  time.Date(2026, 3, 15, 10, 30, 0, 123456000, time.UTC),
		},
		{
			name:  "numeric offset",
			input: "2026-03-15T10:30:00+02:00",
			ok:    true,
			want:  time.Date(2026, 3, 15, 8, 30, 0, 0, time.UTC),
		},
		{
			name:  "naive with microseconds",
			input: "2026-03-15T10:30:00.123456",
			ok:    true,
			want:  time.Date(2026, 3, 15, 10, 30, 0, 123456000, time.UTC),
		},
		{
			name:  "naive without fraction",
			input: "2026-03-15T10:30:00",
			ok:    true,
			want:  time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "empty",
			input: "",
			ok:    false,
		},
		{
			name:  "garbage",
			input: "two days ago",
			ok:    false,
		},
		{
			name:  "date only",
			input: "2026-03-15",
			ok:    false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := ParseTimestamp(test.input)
			if ok != test.ok {
				t.Fatalf("ParseTimestamp(%q) ok = %v; expected %v", test.input, ok, test.ok)
			}
			if ok && !got.UTC().Equal(test.want) {
				t.Errorf("ParseTimestamp(%q) = %v; expected %v", test.input, got.UTC(), test.want)
			}
		})
	}
}

func TestCreatedTime(t *testing.T) {
	post := &Post{CreatedAt: "2026-03-15T10:30:00Z"}
	got, ok := post.CreatedTime()
	if !ok {
		t.Fatal("CreatedTime returned not ok for a valid timestamp")
	}
	if !got.Equal(time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)) {
		t.Errorf("CreatedTime = %v", got)
	}

	post = &Post{CreatedAt: "not-a-date"}
	if _, ok := post.CreatedTime(); ok {
		t.Error("CreatedTime returned ok for a malformed timestamp")
	}
}
