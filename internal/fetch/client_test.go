package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient() *Client {
	c := NewClient(nil)
	c.Retries = 1
	return c
}

func TestGetRetriesServerErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("recovered"))
	}))
	defer srv.Close()

	body, err := testClient().Get(context.Background(), "test", srv.URL, nil)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if string(body) != "recovered" {
		t.Errorf("body = %q; want %q", body, "recovered")
	}
	if calls != 2 {
		t.Errorf("calls = %d; want 2", calls)
	}
}

func TestGetDoesNotRetryClientErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := testClient().Get(context.Background(), "test", srv.URL, nil); err == nil {
		t.Fatal("expected error for 404")
	}
	if calls != 1 {
		t.Errorf("calls = %d; want 1", calls)
	}
}

func TestGetSendsHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Token abc" {
			t.Errorf("Authorization = %q; want %q", got, "Token abc")
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("X-Request-ID header missing")
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("User-Agent header missing")
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	_, err := testClient().Get(context.Background(), "test", srv.URL,
		map[string]string{"Authorization": "Token abc"})
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{
			"paragraphs become line breaks",
			"<p>In the beginning</p><p>God created</p>",
			"In the beginning\n\nGod created",
		},
		{
			"scripts removed",
			"<script>var x = 1;</script><p>text</p>",
			"text",
		},
		{
			"entities unescaped",
			"<p>mercy &amp; truth</p>",
			"mercy & truth",
		},
		{
			"inline tags flattened",
			"<p>the <b>Word</b> was <i>God</i></p>",
			"the Word was God",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.markup); got != tt.want {
				t.Errorf("StripHTML(%q) = %q; want %q", tt.markup, got, tt.want)
			}
		})
	}
}
