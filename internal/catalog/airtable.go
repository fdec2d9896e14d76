package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ecoproject/funding-matcher/internal/types"
)

// DefaultBaseURL is the Airtable REST API root.
const DefaultBaseURL = "https://api.airtable.com/v0"

// DefaultTimeout is the default HTTP request timeout for catalog calls.
const DefaultTimeout = 30 * time.Second

// pageSize is the number of records requested per page. Airtable caps pages at 100.
const pageSize = 100

// Error represents a failure talking to the hosted catalog.
type Error struct {
	Table   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog error for table %s: %s: %v", e.Table, e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog error for table %s: %s", e.Table, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// AirtableProvider fetches funding programs from an Airtable base over its REST
// API, following pagination offsets until the table is exhausted.
type AirtableProvider struct {
	BaseURL string
	Token   string
	BaseID  string
	Table   string

	client *http.Client
}

// NewAirtableProvider creates a provider for one table of an Airtable base.
func NewAirtableProvider(token, baseID, table string) *AirtableProvider {
	return &AirtableProvider{
		BaseURL: DefaultBaseURL,
		Token:   token,
		BaseID:  baseID,
		Table:   table,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
}

type airtableRecord struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

type airtablePage struct {
	Records []airtableRecord `json:"records"`
	Offset  string           `json:"offset"`
}

// ListPrograms retrieves every record in the table, one page at a time.
func (p *AirtableProvider) ListPrograms(ctx context.Context) ([]types.FundingProgram, error) {
	var programs []types.FundingProgram

	offset := ""
	for {
		page, err := p.fetchPage(ctx, offset)
		if err != nil {
			return nil, err
		}

		for _, record := range page.Records {
			if record.ID == "" {
				continue
			}
			fields := record.Fields
			if fields == nil {
				fields = map[string]any{}
			}
			programs = append(programs, types.FundingProgram{ID: record.ID, Fields: fields})
		}

		if page.Offset == "" {
			return programs, nil
		}
		offset = page.Offset
	}
}

func (p *AirtableProvider) fetchPage(ctx context.Context, offset string) (*airtablePage, error) {
	query := url.Values{}
	query.Set("pageSize", fmt.Sprintf("%d", pageSize))
	if offset != "" {
		query.Set("offset", offset)
	}
	requestURL := fmt.Sprintf("%s/%s/%s?%s",
		p.BaseURL, p.BaseID, url.PathEscape(p.Table), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &Error{Table: p.Table, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+p.Token)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &Error{Table: p.Table, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Table: p.Table, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{
			Table:   p.Table,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	var page airtablePage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, &Error{Table: p.Table, Message: "failed to parse response", Cause: err}
	}
	return &page, nil
}
