package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://sheets.googleapis.com"

// Client performs raw range operations against one spreadsheet. It holds no
// state beyond the bearer token obtained for the current request; every
// request constructs a fresh Client.
type Client struct {
	SpreadsheetID string
	Token         string

	// BaseURL overrides the Sheets API endpoint (tests). Empty means the
	// public endpoint.
	BaseURL string

	HTTPClient *http.Client
}

func NewClient(spreadsheetID, token, baseURL string) *Client {
	return &Client{
		SpreadsheetID: spreadsheetID,
		Token:         token,
		BaseURL:       baseURL,
		HTTPClient:    &http.Client{Timeout: 30 * time.Second},
	}
}

// GetValues fetches a range. A non-2xx response is logged and returned as an
// empty slice, not an error: callers must treat empty as "nothing found"
// rather than "confirmed empty" unless a header row proves otherwise.
func (c *Client) GetValues(ctx context.Context, rangeA1 string) ([][]string, error) {
	resp, err := c.do(ctx, http.MethodGet, c.valuesURL(rangeA1, "", nil), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("sheets: get %s returned %d: %s", rangeA1, resp.StatusCode, strings.TrimSpace(string(body)))
		return [][]string{}, nil
	}

	var payload struct {
		Values [][]string `json:"values"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("sheets: get %s returned unparseable body: %v", rangeA1, err)
		return [][]string{}, nil
	}
	return payload.Values, nil
}

// AppendRow appends one sanitized row to a tab with USER_ENTERED
// interpretation. Failure is fatal for the request and carries the
// provider's error text.
func (c *Client) AppendRow(ctx context.Context, tab string, row []string) error {
	body := map[string]interface{}{
		"values": [][]string{sanitizeRow(row)},
	}
	u := c.valuesURL(tab+"!A:A", ":append", url.Values{"valueInputOption": {"USER_ENTERED"}})
	return c.write(ctx, http.MethodPost, u, body, "append to "+tab)
}

// UpdateRange writes sanitized values at an exact range via PUT.
func (c *Client) UpdateRange(ctx context.Context, rangeA1 string, values [][]string) error {
	sanitized := make([][]string, len(values))
	for i, row := range values {
		sanitized[i] = sanitizeRow(row)
	}
	body := map[string]interface{}{"values": sanitized}
	u := c.valuesURL(rangeA1, "", url.Values{"valueInputOption": {"USER_ENTERED"}})
	return c.write(ctx, http.MethodPut, u, body, "update "+rangeA1)
}

// ClearRange empties a range. Callers that clear-then-write must surface the
// non-atomic window: a failure after a successful clear leaves the tab
// cleared with no automatic recovery.
func (c *Client) ClearRange(ctx context.Context, rangeA1 string) error {
	u := c.valuesURL(rangeA1, ":clear", nil)
	return c.write(ctx, http.MethodPost, u, map[string]interface{}{}, "clear "+rangeA1)
}

func (c *Client) valuesURL(rangeA1, verb string, query url.Values) string {
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	u := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s%s",
		base, url.PathEscape(c.SpreadsheetID), url.PathEscape(rangeA1), verb)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) write(ctx context.Context, method, u string, body interface{}, op string) error {
	resp, err := c.do(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("sheets: %s returned %d: %s", op, resp.StatusCode, strings.TrimSpace(string(raw)))
		return fmt.Errorf("failed to %s: %s", op, strings.TrimSpace(string(raw)))
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, u string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return httpClient.Do(req)
}
