package web

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()
	s, err := New(opts)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	return s
}

func postFormat(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/format", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestIndex(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET / status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	for _, want := range []string{`id="input"`, `id="output"`, `id="format"`, `id="copy"`, "navigator.clipboard.writeText", `alert("Copied!")`} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("page does not contain %q", want)
		}
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("GET /healthz = %d %q, want 200 \"ok\"", rec.Code, rec.Body.String())
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantOutput string
		wantPairs  int
	}{
		{
			name:       "pairs",
			body:       `{"input":"A\nB\nC\nD"}`,
			wantOutput: "A: B\nC: D",
			wantPairs:  2,
		},
		{
			name:       "empty input",
			body:       `{"input":""}`,
			wantOutput: "",
			wantPairs:  0,
		},
		{
			name:       "unpaired name",
			body:       `{"input":"OnlyKey"}`,
			wantOutput: "",
			wantPairs:  0,
		},
		{
			name:       "canonical",
			body:       `{"input":"content-type\ntext/plain","canonical":true}`,
			wantOutput: "Content-Type: text/plain",
			wantPairs:  1,
		},
		{
			name:       "mask",
			body:       `{"input":"authorization\nBearer abcdefghijkl","mask":true}`,
			wantOutput: "authorization: Bear***********ijkl",
			wantPairs:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, Options{})
			rec := postFormat(t, s, tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
			}

			var resp FormatResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if resp.Output != tt.wantOutput {
				t.Errorf("output = %q, want %q", resp.Output, tt.wantOutput)
			}
			if len(resp.Pairs) != tt.wantPairs {
				t.Errorf("pairs = %d, want %d", len(resp.Pairs), tt.wantPairs)
			}
			if resp.Pairs == nil {
				t.Error("pairs encoded as null, want []")
			}
		})
	}
}

func TestFormat_MaskExtraHeaders(t *testing.T) {
	s := newTestServer(t, Options{SensitiveHeaders: []string{"X-Secret"}})
	rec := postFormat(t, s, `{"input":"x-secret\n0123456789","mask":true}`)

	var resp FormatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if resp.Output != "x-secret: 0123**6789" {
		t.Errorf("output = %q, want masked value", resp.Output)
	}
}

func TestFormat_CanonicalThenMask(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := postFormat(t, s, `{"input":"cookie\nsession=abcdefghij","canonical":true,"mask":true}`)

	var resp FormatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if resp.Output != "Cookie: sess**********ghij" {
		t.Errorf("output = %q, want canonical name and masked value", resp.Output)
	}
}

func TestFormat_BadRequests(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		body     string
		wantCode int
	}{
		{name: "malformed json", body: `{"input":`, wantCode: http.StatusBadRequest},
		{name: "empty body", body: ``, wantCode: http.StatusBadRequest},
		{name: "wrong type", body: `{"input":42}`, wantCode: http.StatusBadRequest},
		{name: "too large", opts: Options{MaxBodyBytes: 16}, body: `{"input":"` + strings.Repeat("a", 64) + `"}`, wantCode: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, tt.opts)
			rec := postFormat(t, s, tt.body)
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Error == "" {
				t.Errorf("expected JSON error body, got %q", rec.Body.String())
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t, Options{})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if _, err := uuid.Parse(rec.Header().Get(requestIDHeader)); err != nil {
		t.Errorf("generated request id %q is not a UUID", rec.Header().Get(requestIDHeader))
	}

	given := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, given)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get(requestIDHeader); got != given {
		t.Errorf("request id = %q, want caller's %q", got, given)
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get(requestIDHeader); got == "not-a-uuid" {
		t.Error("invalid caller request id was echoed back")
	}
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	s := newTestServer(t, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Serve(ctx, ln)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "ok" {
		t.Errorf("body = %q, want %q", body, "ok")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() returned %v after cancel, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}
