package ollama

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kgeyst.com/shotlabel/pkg/common"
	"kgeyst.com/shotlabel/pkg/shotlabel/domain"
)

func testRequest(host string) domain.InferenceRequest {
	return domain.InferenceRequest{
		ImageBase64: "ZmFrZQ==",
		Prompt:      "Describe this image in detail.",
		Model:       "qwen3-vl:4b-instruct",
		Host:        host,
		RequestID:   "req-1",
	}
}

func TestInfer(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method %q", r.Method)
		}
		if got := r.Header.Get("X-Request-ID"); got != "req-1" {
			t.Fatalf("unexpected request id header %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected authorization header %q", got)
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read request body: %v", err)
		}
		var payload map[string]any
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if payload["model"] != "qwen3-vl:4b-instruct" {
			t.Fatalf("unexpected model payload: %#v", payload["model"])
		}
		if payload["prompt"] != "Describe this image in detail." {
			t.Fatalf("unexpected prompt payload: %#v", payload["prompt"])
		}
		if payload["stream"] != false {
			t.Fatalf("unexpected stream payload: %#v", payload["stream"])
		}
		images, ok := payload["images"].([]any)
		if !ok || len(images) != 1 || images[0] != "ZmFrZQ==" {
			t.Fatalf("unexpected images payload: %#v", payload["images"])
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"qwen3-vl:4b-instruct","response":"  A terminal window showing a build log\n","done":true}`))
	}))
	defer server.Close()

	visionModel := NewVisionModelWithClient(server.Client(), "test-key")
	text, err := visionModel.Infer(testRequest(server.URL + "/"))
	if err != nil {
		t.Fatalf("infer returned error: %v", err)
	}
	if text != "A terminal window showing a build log" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestInferErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		status     int
		body       string
		statusCode int
		message    string
	}{
		{name: "api error envelope", status: http.StatusNotFound, body: `{"error":"model \"llava\" not found"}`, statusCode: 404, message: `model "llava" not found`},
		{name: "plain status", status: http.StatusServiceUnavailable, body: "", statusCode: 503, message: "Service Unavailable"},
		{name: "malformed body", status: http.StatusOK, body: `{"response":`, message: "decode response"},
		{name: "missing response", status: http.StatusOK, body: `{"model":"x","done":true}`, message: "response field is missing"},
		{name: "empty response", status: http.StatusOK, body: `{"response":"   "}`, message: "empty response"},
		{name: "error in body", status: http.StatusOK, body: `{"error":"out of memory"}`, message: "out of memory"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(c.status)
				_, _ = w.Write([]byte(c.body))
			}))
			defer server.Close()

			_, err := NewVisionModelWithClient(server.Client(), "").Infer(testRequest(server.URL))
			var inferenceErr *domain.InferenceError
			if !errors.As(err, &inferenceErr) {
				t.Fatalf("expected *InferenceError, got %v", err)
			}
			if inferenceErr.StatusCode != c.statusCode {
				t.Fatalf("unexpected status code %d", inferenceErr.StatusCode)
			}
			if !strings.Contains(err.Error(), c.message) {
				t.Fatalf("expected %q in error, got %v", c.message, err)
			}
			if !domain.IsRetryable(err) {
				t.Fatal("inference errors must be retryable")
			}
		})
	}
}

func TestInferNetworkError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	host := server.URL
	server.Close()

	_, err := NewVisionModel(common.NewConfig(nil)).Infer(testRequest(host))
	var inferenceErr *domain.InferenceError
	if !errors.As(err, &inferenceErr) {
		t.Fatalf("expected *InferenceError, got %v", err)
	}
	if inferenceErr.StatusCode != 0 {
		t.Fatalf("expected no status code, got %d", inferenceErr.StatusCode)
	}
}

func TestBaseURL(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":                        domain.DefaultOllamaHost,
		"http://gpu:11434/":       "http://gpu:11434",
		"192.168.1.100:11434":     "http://192.168.1.100:11434",
		" https://ollama.example": "https://ollama.example",
	}
	for host, want := range cases {
		if got := baseURL(host); got != want {
			t.Fatalf("baseURL(%q) = %q, want %q", host, got, want)
		}
	}
}
