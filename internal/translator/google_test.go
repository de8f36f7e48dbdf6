package translator

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"google.golang.org/api/option"
)

// requestParams collects q/target/source whether the client sends them as a
// query, a form body or a JSON body.
func requestParams(t *testing.T, r *http.Request) url.Values {
	t.Helper()
	body, _ := io.ReadAll(r.Body)
	vals := r.URL.Query()
	if len(body) == 0 {
		return vals
	}
	if strings.HasPrefix(strings.TrimSpace(string(body)), "{") {
		var payload struct {
			Q      []string `json:"q"`
			Target string   `json:"target"`
			Source string   `json:"source"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Errorf("bad JSON body: %v", err)
			return vals
		}
		for _, q := range payload.Q {
			vals.Add("q", q)
		}
		if payload.Target != "" {
			vals.Set("target", payload.Target)
		}
		if payload.Source != "" {
			vals.Set("source", payload.Source)
		}
		return vals
	}
	form, err := url.ParseQuery(string(body))
	if err != nil {
		t.Errorf("bad form body: %v", err)
		return vals
	}
	for k, v := range form {
		vals[k] = append(vals[k], v...)
	}
	return vals
}

func newTestService(t *testing.T, handler http.HandlerFunc) *GoogleService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewGoogleService(ServiceConfig{Endpoint: server.URL + "/"}, option.WithHTTPClient(server.Client()))
}

func TestGoogleService_Translate(t *testing.T) {
	tests := []struct {
		name           string
		req            TranslateRequest
		response       string
		wantText       string
		wantDetected   string
		wantSourceSent string
	}{
		{
			name:         "auto detect",
			req:          TranslateRequest{Text: "Hello", TargetLang: "fr"},
			response:     `{"data":{"translations":[{"translatedText":"Bonjour","detectedSourceLanguage":"en"}]}}`,
			wantText:     "Bonjour",
			wantDetected: "en",
		},
		{
			name:           "explicit source",
			req:            TranslateRequest{Text: "Hola", SourceLang: "es", TargetLang: "en"},
			response:       `{"data":{"translations":[{"translatedText":"Hello"}]}}`,
			wantText:       "Hello",
			wantSourceSent: "es",
		},
		{
			name:     "entities passed through",
			req:      TranslateRequest{Text: "Don't", SourceLang: "auto", TargetLang: "fr"},
			response: `{"data":{"translations":[{"translatedText":"N&#39;est pas","detectedSourceLanguage":"en"}]}}`,
			wantText:     "N&#39;est pas",
			wantDetected: "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				params := requestParams(t, r)
				if got := params.Get("target"); got != tt.req.TargetLang {
					t.Errorf("expected target %q, got %q", tt.req.TargetLang, got)
				}
				if got := params.Get("source"); got != tt.wantSourceSent {
					t.Errorf("expected source %q, got %q", tt.wantSourceSent, got)
				}
				if got := params.Get("q"); got != tt.req.Text {
					t.Errorf("expected q %q, got %q", tt.req.Text, got)
				}
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.response))
			})

			result, err := svc.Translate(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.TranslatedText != tt.wantText {
				t.Errorf("expected %q, got %q", tt.wantText, result.TranslatedText)
			}
			if result.DetectedSourceLanguage != tt.wantDetected {
				t.Errorf("expected detected %q, got %q", tt.wantDetected, result.DetectedSourceLanguage)
			}
			if result.ServiceName != "google" {
				t.Errorf("expected service name 'google', got %q", result.ServiceName)
			}
		})
	}
}

func TestGoogleService_Translate_EmptyTranslations(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"translations":[]}}`))
	})

	result, err := svc.Translate(context.Background(), TranslateRequest{Text: "Hello", TargetLang: "fr"})
	if err == nil {
		t.Fatal("expected error for empty translations")
	}
	if result == nil || result.Error == "" {
		t.Error("expected error message in result")
	}
}

func TestGoogleService_Translate_APIError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"The request is missing a valid API key."}}`))
	})

	result, err := svc.Translate(context.Background(), TranslateRequest{Text: "Hello", TargetLang: "fr"})
	if err == nil {
		t.Fatal("expected error for HTTP 403")
	}
	if result.Error == "" {
		t.Error("expected error message in result")
	}
}

func TestGoogleService_Translate_InvalidTarget(t *testing.T) {
	svc := NewGoogleService(ServiceConfig{})

	_, err := svc.Translate(context.Background(), TranslateRequest{Text: "Hello", TargetLang: "not a tag!"})
	if err == nil {
		t.Error("expected error for invalid target language")
	}
}
