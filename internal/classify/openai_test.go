package classify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/ecosort/ecosort/internal/model"
)

func completionBody(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func newTestClassifier(t *testing.T, handler http.HandlerFunc) (*OpenAIClassifier, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenAI(srv.URL, "test-key", "gpt-4o-mini", zerolog.Nop()), srv
}

func TestClassify_StructuredAnswer(t *testing.T) {
	var gotBody []byte
	c, _ := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		payload := `{"wasteType":"plastic","description":"a PET bottle","recyclingTips":"rinse and recycle","environmentalImpact":"persists for centuries","reuseIdeas":"planter"}`
		_, _ = w.Write([]byte(completionBody(payload)))
	})

	res := c.Classify(context.Background(), "http://img/1.jpg", "found on the beach")
	if res.Source != SourceModel {
		t.Fatalf("source = %s, want %s", res.Source, SourceModel)
	}
	if res.Classification.WasteType != model.WastePlastic || res.Classification.Description != "a PET bottle" {
		t.Fatalf("classification = %+v", res.Classification)
	}

	// The single request carries the instructions, the user hint, and the image.
	var req chatRequest
	if err := json.Unmarshal(gotBody, &req); err != nil {
		t.Fatalf("request body: %v", err)
	}
	if req.MaxTokens != 500 || len(req.Messages) != 1 {
		t.Fatalf("request shape: %+v", req)
	}
	parts := req.Messages[0].Content
	if len(parts) != 2 || parts[1].ImageURL == nil || parts[1].ImageURL.URL != "http://img/1.jpg" {
		t.Fatalf("content parts: %+v", parts)
	}
	if !strings.Contains(parts[0].Text, "User description: found on the beach") {
		t.Fatalf("prompt missing user description: %q", parts[0].Text)
	}
}

func TestClassify_FencedJSONAnswer(t *testing.T) {
	c, _ := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		payload := "```json\n{\"wasteType\":\"glass\",\"description\":\"jar\",\"recyclingTips\":\"rinse\"}\n```"
		_, _ = w.Write([]byte(completionBody(payload)))
	})
	res := c.Classify(context.Background(), "http://img/2.jpg", "")
	if res.Source != SourceModel || res.Classification.WasteType != model.WasteGlass {
		t.Fatalf("fenced answer: %+v", res)
	}
}

func TestClassify_HeuristicFallback(t *testing.T) {
	long := "This looks like an electronic device, maybe an old phone charger. " + strings.Repeat("More detail. ", 30)
	c, _ := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(completionBody(long)))
	})

	res := c.Classify(context.Background(), "http://img/3.jpg", "")
	if res.Source != SourceHeuristic {
		t.Fatalf("source = %s, want %s", res.Source, SourceHeuristic)
	}
	if res.Classification.WasteType != model.WasteElectronic {
		t.Fatalf("detected type = %s, want electronic", res.Classification.WasteType)
	}
	if len(res.Classification.Description) != 200 {
		t.Fatalf("description len = %d, want 200", len(res.Classification.Description))
	}
	if res.Classification.RecyclingTips != "Please check local recycling guidelines for proper disposal." {
		t.Fatalf("heuristic tips = %q", res.Classification.RecyclingTips)
	}
}

func TestClassify_HeuristicNoKeyword(t *testing.T) {
	c, _ := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(completionBody("I am not sure what this is.")))
	})
	res := c.Classify(context.Background(), "http://img/4.jpg", "")
	if res.Source != SourceHeuristic || res.Classification.WasteType != model.WasteOther {
		t.Fatalf("no-keyword answer: %+v", res)
	}
}

func TestClassify_CallFailureUsesDefault(t *testing.T) {
	c, _ := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	res := c.Classify(context.Background(), "http://img/5.jpg", "")
	want := DefaultResult()
	if res.Source != SourceFallback {
		t.Fatalf("source = %s, want %s", res.Source, SourceFallback)
	}
	if res.Classification != want.Classification {
		t.Fatalf("fallback payload = %+v, want %+v", res.Classification, want.Classification)
	}
}

func TestClassify_UnreachableEndpointUsesDefault(t *testing.T) {
	c := NewOpenAI("http://127.0.0.1:1", "", "gpt-4o-mini", zerolog.Nop())
	res := c.Classify(context.Background(), "http://img/6.jpg", "")
	if res.Source != SourceFallback || res.Classification.WasteType != model.WasteOther {
		t.Fatalf("unreachable endpoint: %+v", res)
	}
}

func TestParseAnswer_MultibyteTruncation(t *testing.T) {
	answer := "Botol plastik dengan label 環境 " + strings.Repeat("ゴミ分別リサイクル", 40)

	res := ParseAnswer(answer)
	if res.Source != SourceHeuristic {
		t.Fatalf("source = %s, want %s", res.Source, SourceHeuristic)
	}
	desc := res.Classification.Description
	if !utf8.ValidString(desc) {
		t.Fatalf("description is not valid UTF-8: %q", desc)
	}
	if n := utf8.RuneCountInString(desc); n != 200 {
		t.Fatalf("description runes = %d, want 200", n)
	}
	if !strings.HasPrefix(answer, desc) {
		t.Fatalf("description is not a prefix of the answer")
	}
}

func TestParseAnswer_KeywordOrder(t *testing.T) {
	// First match in scan order wins.
	res := ParseAnswer("could be metal or plastic")
	if res.Classification.WasteType != model.WastePlastic {
		t.Fatalf("keyword order: got %s, want plastic", res.Classification.WasteType)
	}
}

func TestHealthPing(t *testing.T) {
	c, _ := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/models" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"data":[]}`))
	})
	if err := c.HealthPing(context.Background()); err != nil {
		t.Fatalf("HealthPing: %v", err)
	}

	bad, _ := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	})
	if err := bad.HealthPing(context.Background()); err == nil {
		t.Fatalf("HealthPing on failing endpoint: want error")
	}
}
