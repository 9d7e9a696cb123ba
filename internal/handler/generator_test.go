package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/password"
	"github.com/vaultpass/passgen-go/internal/service"
)

func newTestRouter(t *testing.T, rps float64, burst int) http.Handler {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewGeneratorService(password.New(password.NewSeededSource(3)), logger)
	return NewRouter(ctx, NewGeneratorHandler(svc), RouterOptions{
		Logger:         logger,
		RateLimitRPS:   rps,
		RateLimitBurst: burst,
	})
}

func postGenerate(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleGenerate_Success(t *testing.T) {
	h := newTestRouter(t, 1000, 100)

	for _, n := range []int{4, 12, 100} {
		rec := postGenerate(t, h, `{"length": `+jsonInt(n)+`}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("length %d: expected 200, got %d: %s", n, rec.Code, rec.Body.String())
		}

		var resp model.GenerateResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp.Length != n || len(resp.Password) != n {
			t.Errorf("expected length %d, got %d (%q)", n, resp.Length, resp.Password)
		}
	}
}

func TestHandleGenerate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  error
		wantKind string
	}{
		{"missing body", "", password.ErrLengthNull, service.KindType},
		{"missing field", `{}`, password.ErrLengthNull, service.KindType},
		{"null", `{"length": null}`, password.ErrLengthNull, service.KindType},
		{"string", `{"length": "twelve"}`, password.ErrLengthNotInteger, service.KindType},
		{"float", `{"length": 12.5}`, password.ErrLengthNotInteger, service.KindType},
		{"bool", `{"length": true}`, password.ErrLengthNotInteger, service.KindType},
		{"too short", `{"length": 3}`, password.ErrLengthTooShort, service.KindValue},
		{"negative", `{"length": -1}`, password.ErrLengthTooShort, service.KindValue},
		{"too long", `{"length": 101}`, password.ErrLengthOutOfRange, service.KindValue},
		{"beyond int64", `{"length": 99999999999999999999}`, password.ErrLengthOutOfRange, service.KindValue},
		{"below int64", `{"length": -99999999999999999999}`, password.ErrLengthTooShort, service.KindValue},
	}

	h := newTestRouter(t, 1000, 100)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postGenerate(t, h, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}

			var resp model.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if resp.Error != tt.wantErr.Error() {
				t.Errorf("expected error %q, got %q", tt.wantErr.Error(), resp.Error)
			}
			if resp.Kind != tt.wantKind {
				t.Errorf("expected kind %q, got %q", tt.wantKind, resp.Kind)
			}
		})
	}
}

func TestHandleGenerate_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"truncated", `{"length":`},
		{"trailing garbage", `{"length": 12} trailing`},
		{"second value", `{"length": 12}{"length": 12}`},
	}

	h := newTestRouter(t, 1000, 100)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postGenerate(t, h, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "invalid request body") {
				t.Errorf("unexpected body %q", rec.Body.String())
			}
		})
	}
}

func TestHandleGenerate_TrailingWhitespace(t *testing.T) {
	h := newTestRouter(t, 1000, 100)

	rec := postGenerate(t, h, "{\"length\": 12}\n  \n")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleGenerate_BodyTooLarge(t *testing.T) {
	h := newTestRouter(t, 1000, 100)

	rec := postGenerate(t, h, `{"length": 12, "pad": "`+strings.Repeat("x", maxBodyBytes)+`"}`)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}
}

func TestHandleGenerate_RateLimited(t *testing.T) {
	h := newTestRouter(t, 0.001, 1)

	if rec := postGenerate(t, h, `{"length": 8}`); rec.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", rec.Code)
	}
	if rec := postGenerate(t, h, `{"length": 8}`); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t, 0.001, 1)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("unexpected health response %d %q", rec.Code, rec.Body.String())
	}
}

func jsonInt(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}
