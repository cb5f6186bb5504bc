package imagegen

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPGeneratorRequestShape(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer server.Close()

	gen, err := NewHTTPGenerator(Config{
		BaseURL: server.URL,
		Model:   "flux",
		Width:   800,
		Height:  450,
	}, server.Client())
	if err != nil {
		t.Fatalf("NewHTTPGenerator() error = %v", err)
	}

	image, err := gen.Generate(t.Context(), "a fishing harbour at dawn")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if gotPath != "/prompt/a%20fishing%20harbour%20at%20dawn" {
		t.Fatalf("request path = %q", gotPath)
	}
	want := "height=450&model=flux&nologo=true&width=800"
	if gotQuery != want {
		t.Fatalf("request query = %q, want %q", gotQuery, want)
	}
	if string(image.Data) != "png-bytes" || image.ContentType != "image/png" {
		t.Fatalf("image = %+v", image)
	}
}

func TestHTTPGeneratorDefaultsDimensionsAndContentType(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		// Suppress net/http's content sniffing so no Content-Type header is sent.
		w.Header()["Content-Type"] = nil
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	gen, err := NewHTTPGenerator(Config{BaseURL: server.URL}, server.Client())
	if err != nil {
		t.Fatalf("NewHTTPGenerator() error = %v", err)
	}

	image, err := gen.Generate(t.Context(), "prompt")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if gotQuery != "height=576&nologo=true&width=1024" {
		t.Fatalf("request query = %q", gotQuery)
	}
	if image.ContentType != "image/jpeg" {
		t.Fatalf("content type = %q, want jpeg default", image.ContentType)
	}
}

func TestHTTPGeneratorNon200IsGenerationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	gen, err := NewHTTPGenerator(Config{BaseURL: server.URL}, server.Client())
	if err != nil {
		t.Fatalf("NewHTTPGenerator() error = %v", err)
	}

	_, err = gen.Generate(t.Context(), "prompt")
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("Generate() error = %v, want GenerationError", err)
	}
	if genErr.Status != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", genErr.Status)
	}
}

func TestHTTPGeneratorEmptyPrompt(t *testing.T) {
	gen, err := NewHTTPGenerator(Config{BaseURL: "http://localhost"}, nil)
	if err != nil {
		t.Fatalf("NewHTTPGenerator() error = %v", err)
	}
	if _, err := gen.Generate(t.Context(), ""); !errors.Is(err, ErrPromptRequired) {
		t.Fatalf("Generate(\"\") error = %v", err)
	}
}

func TestNewHTTPGeneratorBuildsClientWithTimeout(t *testing.T) {
	gen, err := NewHTTPGenerator(Config{
		BaseURL: "https://image.example",
		Timeout: 5 * time.Second,
	}, nil)
	if err != nil {
		t.Fatalf("NewHTTPGenerator() error = %v", err)
	}
	if gen.client.Timeout != 5*time.Second {
		t.Fatalf("client timeout = %v, want 5s", gen.client.Timeout)
	}

	gen, err = NewHTTPGenerator(Config{BaseURL: "https://image.example"}, nil)
	if err != nil {
		t.Fatalf("NewHTTPGenerator() error = %v", err)
	}
	if gen.client.Timeout != 60*time.Second {
		t.Fatalf("default client timeout = %v, want 60s", gen.client.Timeout)
	}
}

func TestNewHTTPGeneratorRequiresBaseURL(t *testing.T) {
	if _, err := NewHTTPGenerator(Config{}, nil); err == nil {
		t.Fatal("expected error for missing base URL")
	}
}
