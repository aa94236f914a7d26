package handlers

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalogsheet-backend/config"
	"catalogsheet-backend/middleware"

	"github.com/gin-gonic/gin"
)

// fakeBackend emulates the OAuth token endpoint and the Sheets values API
// against an in-memory grid per tab, so handler tests exercise the full
// token-exchange + range-call path.
type fakeBackend struct {
	t    *testing.T
	tabs map[string][][]string

	calls []sheetCall

	// failUpdates makes PUT updates fail, to test the clear-then-write
	// partial failure window.
	failUpdates bool
}

type sheetCall struct {
	Kind   string // get, append, update, clear
	Range  string
	Values [][]string
}

func defaultTabs() map[string][][]string {
	return map[string][][]string{
		"Products": {
			{"SKU", "Brand", "Status", "Visibility"},
			{"SKU-100", "acme", "READY", "1"},
			{"SKU-101", "acme", "DRAFT", "1"},
			{"SKU-102", "other", "READY", "0"},
		},
		"Categories": {
			{"Category Paths"},
			{"Indoor/Downlights/Fixed"},
			{"Indoor/Downlights/Adjustable"},
			{"Outdoor/Bollards"},
		},
		"Properties": {
			{"Property", "Section"},
			{"Dimmable", "Electrical"},
		},
		"Legal": {
			{"Property", "Values"},
			{"Dimmable", "Yes"},
			{"IP Rating", "IP20", "IP44"},
		},
		"Brands": {
			{"Brand", "Name", "Website"},
			{"acme", "Acme Lighting", "https://acme.example"},
		},
		"Filter": {
			{"Keyword", "Default"},
			{"downlight", "Downlights"},
		},
		"FilterDefaults": {
			{"Downlights"},
			{"Beam Angle"},
			{"Dimmable"},
		},
		"Responses": {
			{"Timestamp", "SKU", "Brand", "Title"},
		},
	}
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	t.Helper()
	b := &fakeBackend{t: t, tabs: defaultTabs()}
	server := httptest.NewServer(b)
	t.Cleanup(server.Close)
	return b, server
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/token":
		json.NewEncoder(w).Encode(map[string]string{"access_token": "test-token"})
	case r.URL.Path == "/badtoken":
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	case strings.HasPrefix(r.URL.Path, "/v4/spreadsheets/"):
		b.serveValues(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (b *fakeBackend) serveValues(w http.ResponseWriter, r *http.Request) {
	parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/v4/spreadsheets/"), "/values/", 2)
	if len(parts) != 2 {
		http.NotFound(w, r)
		return
	}
	rangeSpec := parts[1]

	var body struct {
		Values [][]string `json:"values"`
	}
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&body)
	}

	switch {
	case strings.HasSuffix(rangeSpec, ":append"):
		rangeA1 := strings.TrimSuffix(rangeSpec, ":append")
		tab, _ := splitRange(rangeA1)
		b.calls = append(b.calls, sheetCall{Kind: "append", Range: rangeA1, Values: body.Values})
		b.tabs[tab] = append(b.tabs[tab], body.Values...)
		w.Write([]byte(`{}`))

	case strings.HasSuffix(rangeSpec, ":clear"):
		rangeA1 := strings.TrimSuffix(rangeSpec, ":clear")
		tab, ref := splitRange(rangeA1)
		b.calls = append(b.calls, sheetCall{Kind: "clear", Range: rangeA1})
		row, _ := refRowCol(ref)
		if rows, ok := b.tabs[tab]; ok && row-1 < len(rows) {
			b.tabs[tab] = rows[:row-1]
		}
		w.Write([]byte(`{}`))

	case r.Method == http.MethodPut:
		if b.failUpdates {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"backend update exploded"}}`))
			return
		}
		tab, ref := splitRange(rangeSpec)
		b.calls = append(b.calls, sheetCall{Kind: "update", Range: rangeSpec, Values: body.Values})
		row, col := refRowCol(ref)
		b.applyUpdate(tab, row, col, body.Values)
		w.Write([]byte(`{}`))

	case r.Method == http.MethodGet:
		tab, ref := splitRange(rangeSpec)
		rows, ok := b.tabs[tab]
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"message":"Unable to parse range: ` + rangeSpec + `"}}`))
			return
		}
		b.calls = append(b.calls, sheetCall{Kind: "get", Range: rangeSpec})
		row, _ := refRowCol(ref)
		out := [][]string{}
		if row-1 < len(rows) {
			out = rows[row-1:]
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"values": out})

	default:
		http.NotFound(w, r)
	}
}

func (b *fakeBackend) applyUpdate(tab string, row, col int, values [][]string) {
	grid := b.tabs[tab]
	for i, vrow := range values {
		target := row - 1 + i
		for len(grid) <= target {
			grid = append(grid, []string{})
		}
		for j, cell := range vrow {
			for len(grid[target]) <= col+j {
				grid[target] = append(grid[target], "")
			}
			grid[target][col+j] = cell
		}
	}
	b.tabs[tab] = grid
}

// writeCalls filters out reads so tests can assert mutation order.
func (b *fakeBackend) writeCalls() []sheetCall {
	var writes []sheetCall
	for _, call := range b.calls {
		if call.Kind != "get" {
			writes = append(writes, call)
		}
	}
	return writes
}

func splitRange(rangeA1 string) (tab, ref string) {
	parts := strings.SplitN(rangeA1, "!", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// refRowCol reads the first cell of a ref like "A2:D" or "C2" into a
// 1-based row and 0-based column. A ref without digits means row 1.
func refRowCol(ref string) (row, col int) {
	row = 1
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		col = col*26 + int(ref[i]-'A'+1)
		i++
	}
	if col > 0 {
		col--
	}
	digits := 0
	for i < len(ref) && ref[i] >= '0' && ref[i] <= '9' {
		digits = digits*10 + int(ref[i]-'0')
		i++
	}
	if digits > 0 {
		row = digits
	}
	return row, col
}

func testServiceAccountJSON(t *testing.T, tokenURI string) string {
	t.Helper()

	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate test key: %v", err)
	}
	der, err := x509.MarshalPKCS8PrivateKey(rsaKey)
	if err != nil {
		t.Fatalf("failed to marshal test key: %v", err)
	}
	pemKey := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})

	raw, _ := json.Marshal(map[string]string{
		"client_email": "robot@test-project.iam.gserviceaccount.com",
		"private_key":  string(pemKey),
		"token_uri":    tokenURI,
	})
	return string(raw)
}

const testOrigin = "https://catalog.example.com"

func testConfig(t *testing.T, backendURL string) *config.Config {
	t.Helper()
	return &config.Config{
		ServiceAccountJSON: testServiceAccountJSON(t, backendURL+"/token"),
		SpreadsheetID:      "sheet-test",
		AllowedOrigins:     []string{testOrigin},
		SheetsBaseURL:      backendURL,
	}
}

func setupSyncRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &SyncHandler{Cfg: cfg}
	r.POST("/api/sheets", middleware.OriginAuth(cfg.AllowedOrigins), h.Handle)
	return r
}

func syncRequest(body interface{}) *http.Request {
	var reader *bytes.Reader
	switch b := body.(type) {
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest("POST", "/api/sheets", reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", testOrigin)
	return req
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response %q: %v", w.Body.String(), err)
	}
	return resp
}
