package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNotion records the last page creation request.
type fakeNotion struct {
	req *notionapi.PageCreateRequest
	err error
}

func (f *fakeNotion) CreatePage(_ context.Context, req *notionapi.PageCreateRequest) (*notionapi.Page, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &notionapi.Page{ID: "page-1"}, nil
}

func TestCaptureBuildsPage(t *testing.T) {
	client := &fakeNotion{}
	sink := NewSink(client, "db-123")

	require.NoError(t, sink.Capture(context.Background(), "marie@example.fr"))

	require.NotNil(t, client.req)
	assert.Equal(t, notionapi.DatabaseID("db-123"), client.req.Parent.DatabaseID)

	title, ok := client.req.Properties["Name"].(notionapi.TitleProperty)
	require.True(t, ok)
	require.Len(t, title.Title, 1)
	assert.Equal(t, "marie@example.fr", title.Title[0].Text.Content)

	email, ok := client.req.Properties["Email"].(notionapi.EmailProperty)
	require.True(t, ok)
	assert.Equal(t, "marie@example.fr", email.Email)

	typ, ok := client.req.Properties["Type"].(notionapi.SelectProperty)
	require.True(t, ok)
	assert.Equal(t, "MAJ & Infos", typ.Select.Name)

	status, ok := client.req.Properties["Status"].(notionapi.SelectProperty)
	require.True(t, ok)
	assert.Equal(t, "New", status.Select.Name)
}

func TestCaptureTrimsWhitespace(t *testing.T) {
	client := &fakeNotion{}
	sink := NewSink(client, "db-123")

	require.NoError(t, sink.Capture(context.Background(), "  jean@example.fr "))

	email := client.req.Properties["Email"].(notionapi.EmailProperty)
	assert.Equal(t, "jean@example.fr", email.Email)
}

func TestCaptureRejectsInvalidEmail(t *testing.T) {
	client := &fakeNotion{}
	sink := NewSink(client, "db-123")

	err := sink.Capture(context.Background(), "pas-un-email")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEmail)
	assert.Nil(t, client.req)
}

func TestCapturePropagatesAPIError(t *testing.T) {
	client := &fakeNotion{err: errors.New("unauthorized")}
	sink := NewSink(client, "db-123")

	err := sink.Capture(context.Background(), "marie@example.fr")
	assert.Error(t, err)
}
