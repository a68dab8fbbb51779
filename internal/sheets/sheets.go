package sheets

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"indiekaum-bot/internal/domain"
)

// appendRange anchors appends to the first sheet; the API extends the table downward
const appendRange = "Sheet1!A1"

// Client appends completed intake records to a Google Sheet
type Client struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewClient builds a Sheets client using the first credential file that
// exists in the given fallback list
func NewClient(ctx context.Context, credentialFiles []string, spreadsheetID string) (*Client, error) {
	path, err := ResolveCredentials(credentialFiles)
	if err != nil {
		return nil, err
	}

	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(path),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return &Client{
		service:       service,
		spreadsheetID: spreadsheetID,
	}, nil
}

// ResolveCredentials returns the first path in the list that exists on disk
func ResolveCredentials(paths []string) (string, error) {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no credential file found among %v", paths)
}

// Append writes one record as a new row in the fixed column order
// [name, role, city, phone, email]
func (c *Client) Append(ctx context.Context, record domain.IntakeRecord) error {
	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{record.Row()},
	}

	_, err := c.service.Spreadsheets.Values.Append(c.spreadsheetID, appendRange, valueRange).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("unable to append record: %w", err)
	}

	return nil
}
