package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestExtractURL(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     string
	}{
		{
			name:     "watch URL",
			question: "Summarize https://www.youtube.com/watch?v=dQw4w9WgXcQ please",
			want:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			name:     "short link",
			question: "What is https://youtu.be/dQw4w9WgXcQ about?",
			want:     "https://youtu.be/dQw4w9WgXcQ",
		},
		{
			name:     "no scheme-less match",
			question: "I watch youtube.com all day",
			want:     "",
		},
		{
			name:     "first of several",
			question: "https://youtu.be/aaa111 and https://youtu.be/bbb222",
			want:     "https://youtu.be/aaa111",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractURL(tt.question); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMetadata(t *testing.T) {
	watch := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head>
<meta name="description" content="A video about sorting networks.">
<meta property="og:description" content="og fallback">
</head><body></body></html>`))
	}))
	defer watch.Close()

	oembed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("url") != watch.URL {
			t.Errorf("oembed url param: got %q", r.URL.Query().Get("url"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"Sorting Networks Explained"}`))
	}))
	defer oembed.Close()

	c := NewClient(5*time.Second, WithOEmbedURL(oembed.URL))
	meta, err := c.Metadata(context.Background(), watch.URL)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Title != "Sorting Networks Explained" {
		t.Errorf("title: got %q", meta.Title)
	}
	if meta.Description != "A video about sorting networks." {
		t.Errorf("description: got %q", meta.Description)
	}
}

func TestMetadata_ogDescriptionFallback(t *testing.T) {
	watch := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><meta property="og:description" content="only og"></head></html>`))
	}))
	defer watch.Close()
	oembed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"title":"T"}`))
	}))
	defer oembed.Close()

	c := NewClient(5*time.Second, WithOEmbedURL(oembed.URL))
	meta, err := c.Metadata(context.Background(), watch.URL)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Description != "only og" {
		t.Errorf("description: got %q", meta.Description)
	}
}

func TestMetadata_oembedFailure(t *testing.T) {
	oembed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer oembed.Close()

	c := NewClient(5*time.Second, WithOEmbedURL(oembed.URL))
	if _, err := c.Metadata(context.Background(), "https://youtu.be/whatever"); err == nil {
		t.Error("expected error for oembed failure")
	}
}
