// Package source fetches worksheet data from the Google Sheets API and
// shapes it into engine tables.
//
// A [Client] talks to the API with read-only service-account credentials.
// Wrap it in a [CachingFetcher] to memoize snapshots for a bounded time;
// both satisfy [Fetcher], which is what the web layer consumes.
package source

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/scogonw/sheetstack/internal/engine"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// Fetcher retrieves one worksheet as a point-in-time table snapshot.
// An empty worksheet name selects the spreadsheet's first worksheet.
type Fetcher interface {
	FetchTable(ctx context.Context, sheetID, worksheet string) (*Snapshot, error)
}

// Snapshot is a fetched table plus identity metadata. The ID is new for
// every fetch, so clients can tell a cache hit from a refresh.
type Snapshot struct {
	Table     *engine.Table
	Worksheet string
	ID        string
	FetchedAt time.Time
}

// Client fetches worksheet data from the Google Sheets API.
type Client struct {
	svc *sheets.Service
}

// NewClient builds a Sheets API client from a service-account credentials
// file, requesting the read-only spreadsheets scope.
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, unavailablef(err, "initialize sheets service")
	}
	return &Client{svc: svc}, nil
}

// FetchTable retrieves all values of one worksheet and converts them to a
// table. With an empty worksheet name the spreadsheet's first worksheet is
// used, matching the API's default-tab behavior users expect.
func (c *Client) FetchTable(ctx context.Context, sheetID, worksheet string) (*Snapshot, error) {
	title := worksheet
	if title == "" {
		meta, err := c.svc.Spreadsheets.Get(sheetID).
			Fields("sheets.properties.title").
			Context(ctx).Do()
		if err != nil {
			return nil, classifyAPIError(err, "spreadsheet", sheetID)
		}
		if len(meta.Sheets) == 0 {
			return nil, notFoundf(nil, "spreadsheet %q has no worksheets", sheetID)
		}
		title = meta.Sheets[0].Properties.Title
	}

	resp, err := c.svc.Spreadsheets.Values.Get(sheetID, rangeRef(title)).
		Context(ctx).Do()
	if err != nil {
		return nil, classifyAPIError(err, "worksheet", title)
	}

	table, err := TableFromValues(resp.Values)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Table:     table,
		Worksheet: title,
		ID:        uuid.NewString(),
		FetchedAt: time.Now(),
	}, nil
}

// rangeRef quotes a worksheet title for use as an A1 range reference.
// Titles containing spaces or punctuation must be single-quoted, with
// embedded quotes doubled.
func rangeRef(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

// classifyAPIError maps a Sheets API failure onto a fetch error kind.
// 404 means the spreadsheet or worksheet does not exist; 400 on a values
// read means the range (worksheet title) could not be resolved, which the
// API uses for missing tabs. Everything else, including 403 for sheets not
// shared with the service account, is an upstream availability problem.
func classifyAPIError(err error, what, name string) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			return notFoundf(err, "%s %q not found", what, name)
		case http.StatusBadRequest:
			if what == "worksheet" {
				return notFoundf(err, "worksheet %q not found", name)
			}
		case http.StatusForbidden:
			return unavailablef(err, "%s %q is not shared with the service account", what, name)
		}
	}
	return unavailablef(err, "fetch %s %q", what, name)
}
