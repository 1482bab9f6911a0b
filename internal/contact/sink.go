// Package contact captures newsletter signups into a Notion database.
package contact

import (
	"context"
	"net/mail"
	"strings"

	"github.com/jomei/notionapi"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/hyppe-labs/scoriz/pkg/notion"
)

// ErrInvalidEmail reports an address that does not parse as RFC 5322.
var ErrInvalidEmail = eris.New("contact: invalid email")

// Sink writes contact records to a Notion database. Each signup
// becomes one page with the email as its title.
type Sink struct {
	client     notion.Client
	databaseID string
}

// NewSink creates a Sink targeting the given Notion database.
func NewSink(client notion.Client, databaseID string) *Sink {
	return &Sink{client: client, databaseID: databaseID}
}

// Capture validates the email and creates the Notion page. New
// contacts arrive tagged for the update-and-news mailing with a fresh
// status.
func (s *Sink) Capture(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return eris.Wrapf(ErrInvalidEmail, "%q", email)
	}

	req := &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			DatabaseID: notionapi.DatabaseID(s.databaseID),
		},
		Properties: notionapi.Properties{
			"Name": notionapi.TitleProperty{
				Title: []notionapi.RichText{
					{Text: &notionapi.Text{Content: email}},
				},
			},
			"Email": notionapi.EmailProperty{
				Email: email,
			},
			"Type": notionapi.SelectProperty{
				Select: notionapi.Option{Name: "MAJ & Infos"},
			},
			"Status": notionapi.SelectProperty{
				Select: notionapi.Option{Name: "New"},
			},
		},
	}

	page, err := s.client.CreatePage(ctx, req)
	if err != nil {
		return eris.Wrap(err, "contact: capture")
	}

	zap.L().Info("contact captured",
		zap.String("page_id", string(page.ID)),
	)
	return nil
}
