package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func stubServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key")
	c.SetAPIURL(srv.URL)
	return c, srv
}

func generateResponse(text string) GenerateResponse {
	return GenerateResponse{
		Candidates: []Candidate{
			{Content: Content{Parts: []Part{{Text: text}}}},
		},
	}
}

func TestGenerateReplyRequestShape(t *testing.T) {
	var got GenerateRequest
	var path string

	c, _ := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(generateResponse("ok"))
	})

	reply, err := c.GenerateReply(context.Background(), ReplyRequest{
		Prompt:       "what is the capital of france",
		SystemPrompt: "be brief",
		History: []Message{
			{Role: "user", Content: "hello"},
			{Role: "assistant", Content: "hi"},
		},
		Temperature: 0.3,
		MaxTokens:   100,
	})
	if err != nil {
		t.Fatal(err)
	}
	if reply != "ok" {
		t.Errorf("reply = %q", reply)
	}

	if !strings.Contains(path, "/models/"+DefaultModel+":generateContent") {
		t.Errorf("path = %q", path)
	}
	if got.SystemInstruction == nil || got.SystemInstruction.Parts[0].Text != "be brief" {
		t.Errorf("system instruction = %+v", got.SystemInstruction)
	}
	if len(got.Contents) != 3 {
		t.Fatalf("contents = %d, want history + prompt", len(got.Contents))
	}
	// Assistant turns go over the wire as role "model".
	if got.Contents[1].Role != "model" {
		t.Errorf("assistant role = %q", got.Contents[1].Role)
	}
	if got.Contents[2].Role != "user" || got.Contents[2].Parts[0].Text != "what is the capital of france" {
		t.Errorf("prompt content = %+v", got.Contents[2])
	}
	if got.GenerationConfig == nil || got.GenerationConfig.Temperature != 0.3 || got.GenerationConfig.MaxOutputTokens != 100 {
		t.Errorf("generation config = %+v", got.GenerationConfig)
	}
}

func TestGenerateReplyModelFallback(t *testing.T) {
	var tried []string

	c, _ := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		// Path: /models/<name>:generateContent
		name := strings.TrimPrefix(r.URL.Path, "/models/")
		name = strings.TrimSuffix(name, ":generateContent")
		tried = append(tried, name)

		if name != "backup-b" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(generateResponse("from backup"))
	})
	c.SetModel("primary")
	c.SetFallbackModels([]string{"backup-a", "backup-b"})

	reply, err := c.GenerateReply(context.Background(), ReplyRequest{Prompt: "hi"})
	if err != nil {
		t.Fatal(err)
	}
	if reply != "from backup" {
		t.Errorf("reply = %q", reply)
	}

	want := []string{"primary", "backup-a", "backup-b"}
	if len(tried) != len(want) {
		t.Fatalf("tried = %v, want %v", tried, want)
	}
	for i := range want {
		if tried[i] != want[i] {
			t.Errorf("tried[%d] = %q, want %q", i, tried[i], want[i])
		}
	}
}

func TestGenerateReplyNonNotFoundStopsChain(t *testing.T) {
	calls := 0

	c, _ := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})
	c.SetFallbackModels([]string{"backup"})

	if _, err := c.GenerateReply(context.Background(), ReplyRequest{Prompt: "hi"}); err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (5xx must not trigger model fallback)", calls)
	}
}

func TestGenerateReplyAllModelsUnavailable(t *testing.T) {
	c, _ := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	c.SetFallbackModels([]string{"backup"})

	if _, err := c.GenerateReply(context.Background(), ReplyRequest{Prompt: "hi"}); err == nil {
		t.Fatal("expected error when every model 404s")
	}
}

func TestGenerateReplyEmptyCandidates(t *testing.T) {
	c, _ := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(GenerateResponse{})
	})

	if _, err := c.GenerateReply(context.Background(), ReplyRequest{Prompt: "hi"}); err == nil {
		t.Fatal("expected error for empty candidates")
	}
}
