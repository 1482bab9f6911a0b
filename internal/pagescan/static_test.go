package pagescan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Boulangerie Martin - Pain artisanal</title></head>
<body>
<header>
  <nav>
    <a href="/produits">Nos produits</a>
    <a href="/boutique">La boutique</a>
    <a href="/contact">Contact</a>
  </nav>
</header>
<h1>Boulangerie Martin</h1>
<h2>Pain au levain depuis 1987</h2>
<h3>Commandez en ligne</h3>
<a class="btn-primary" href="/commander">Commander</a>
<button type="button">En savoir plus</button>
<img src="/pain.jpg" alt="pain"><img src="/four.jpg" alt="four">
<form action="/newsletter">
  <input type="email" name="email" placeholder="Votre email" required>
  <input type="submit" value="S'inscrire">
</form>
<footer>Mentions légales et beaucoup de texte pour remplir la page au-delà du seuil minimal.</footer>
</body>
</html>`

func TestStaticScanner_Scan(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	snap, err := NewStaticScanner().Scan(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "Boulangerie Martin - Pain artisanal", snap.Title)
	assert.Equal(t, []string{"Boulangerie Martin", "Pain au levain depuis 1987", "Commandez en ligne"}, snap.Headings)
	assert.Equal(t, 1, snap.Forms)
	assert.Equal(t, 2, snap.Images)
	assert.True(t, strings.Contains(snap.HTML, "<h1>Boulangerie Martin</h1>"))

	require.Len(t, snap.NavLinks, 3)
	assert.Equal(t, NavLink{Text: "Nos produits", Href: "/produits"}, snap.NavLinks[0])

	// The contact nav link and the primary button both match CTA selectors.
	var ctaTexts []string
	for _, c := range snap.CTAs {
		ctaTexts = append(ctaTexts, c.Text)
	}
	assert.Contains(t, ctaTexts, "Commander")
	assert.Contains(t, ctaTexts, "Contact")

	require.NotEmpty(t, snap.FormFields)
	assert.Equal(t, FormField{Type: "email", Name: "email", Placeholder: "Votre email", Required: true}, snap.FormFields[0])
}

func TestStaticScanner_CTADedup(t *testing.T) {
	// One element matching several CTA selectors is reported once.
	page := `<html><head><title>t</title></head><body>` +
		strings.Repeat("<p>remplissage</p>", 20) +
		`<a class="btn btn-primary cta" href="/signup">Essai gratuit</a></body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	snap, err := NewStaticScanner().Scan(context.Background(), srv.URL)

	require.NoError(t, err)
	require.Len(t, snap.CTAs, 1)
	assert.Equal(t, "Essai gratuit", snap.CTAs[0].Text)
	assert.Equal(t, "a", snap.CTAs[0].Type)
}

func TestStaticScanner_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	snap, err := NewStaticScanner().Scan(context.Background(), srv.URL)

	assert.Error(t, err)
	assert.Nil(t, snap)
	assert.Contains(t, err.Error(), "status 503")
}

func TestStaticScanner_EmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	_, err := NewStaticScanner().Scan(context.Background(), srv.URL)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty page")
}
