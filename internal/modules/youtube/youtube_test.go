package youtube

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{name: "full watch url", url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{name: "watch url with params", url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s"},
		{name: "no scheme", url: "youtube.com/watch?v=dQw4w9WgXcQ"},
		{name: "short url", url: "https://youtu.be/dQw4w9WgXcQ"},
		{name: "short url with time", url: "http://youtu.be/dQw4w9WgXcQ?t=5"},
		{name: "id with dash and underscore", url: "youtu.be/a-b_c-d_e-f"},
		{name: "empty", url: "", wantErr: ErrEmptyURL},
		{name: "other site", url: "https://vimeo.com/12345", wantErr: ErrInvalidURL},
		{name: "short id", url: "https://youtu.be/abc", wantErr: ErrInvalidURL},
		{name: "bad id chars", url: "https://youtu.be/abc$%^&*()!!", wantErr: ErrInvalidURL},
		{name: "trailing whitespace", url: "https://youtu.be/dQw4w9WgXcQ extra", wantErr: ErrInvalidURL},
		{name: "trailing no-break space", url: "https://youtu.be/dQw4w9WgXcQ\u00a0extra", wantErr: ErrInvalidURL},
		{name: "trailing ideographic space", url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ\u3000", wantErr: ErrInvalidURL},
		{name: "trailing vertical tab", url: "https://youtu.be/dQw4w9WgXcQ\v", wantErr: ErrInvalidURL},
		{name: "non-ascii query", url: "https://youtu.be/dQw4w9WgXcQ?q=café"},
		{name: "mobile host", url: "https://m.youtube.com/watch?v=dQw4w9WgXcQ", wantErr: ErrInvalidURL},
		{name: "plain text", url: "not a url", wantErr: ErrInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.url)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate(%q) = %v, want %v", tt.url, err, tt.wantErr)
			}
			if IsValid(tt.url) != (tt.wantErr == nil) {
				t.Errorf("IsValid(%q) disagrees with Validate", tt.url)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	if got := Message(ErrEmptyURL); got != "Please enter a YouTube URL." {
		t.Errorf("Message(ErrEmptyURL) = %q", got)
	}
	if got := Message(ErrInvalidURL); got != "Please enter a valid YouTube URL." {
		t.Errorf("Message(ErrInvalidURL) = %q", got)
	}
	if got := Message(nil); got != "" {
		t.Errorf("Message(nil) = %q", got)
	}
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL123", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ?t=5", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		// lenient: no length or charset check
		{"https://m.youtube.com/watch?v=short", "short"},
		{"see youtu.be/abc for details", "abc for details"},
		{"https://vimeo.com/12345", ""},
		{"", ""},
		{"https://www.youtube.com/watch?v=", ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := ExtractVideoID(tt.url); got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestThumbnail(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://img.youtube.com/vi/dQw4w9WgXcQ/0.jpg"},
		{"https://youtu.be/dQw4w9WgXcQ?t=5", "https://img.youtube.com/vi/dQw4w9WgXcQ/0.jpg"},
		{"https://example.com", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Thumbnail(tt.url); got != tt.want {
			t.Errorf("Thumbnail(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
