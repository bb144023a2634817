package sitedoc_test

import (
	"testing"

	"github.com/fwojciec/sitedoc"
	"github.com/stretchr/testify/assert"
)

func TestStaticDocuments(t *testing.T) {
	t.Parallel()

	docs := sitedoc.StaticDocuments(newCodec(t))

	assert.GreaterOrEqual(t, len(docs), 4)
	assert.Equal(t, "/", docs[0].Path)
	assert.Equal(t, testBase+"/index.html", docs[0].URL)
	for _, doc := range docs {
		assert.NoError(t, doc.Validate())
		assert.NotEmpty(t, doc.Title)
	}
}

func TestDefaultSeeds(t *testing.T) {
	t.Parallel()

	seeds := sitedoc.DefaultSeeds()

	assert.GreaterOrEqual(t, len(seeds), 4)
	for _, s := range seeds {
		assert.True(t, sitedoc.IsEligibleDocumentPath(s.Path), s.Path)
	}
}
