package jsonschema_test

import (
	"testing"
	"time"

	"github.com/fwojciec/schemagen"
	"github.com/fwojciec/schemagen/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *jsonschema.Validator {
	t.Helper()
	v, err := jsonschema.NewValidator()
	require.NoError(t, err)
	return v
}

func TestValidator_Validate_Breadcrumb(t *testing.T) {
	t.Parallel()

	t.Run("accepts generated breadcrumb list", func(t *testing.T) {
		t.Parallel()

		b := &schemagen.BreadcrumbBuilder{BaseURL: "https://example.com"}
		list, err := b.Build("https://example.com/docs/getting-started/")
		require.NoError(t, err)

		err = newValidator(t).Validate(schemagen.KindBreadcrumb, list.JSONLD())

		assert.NoError(t, err)
	})

	t.Run("accepts raw JSON", func(t *testing.T) {
		t.Parallel()

		raw := `{"@context":"https://schema.org","@type":"BreadcrumbList","itemListElement":[` +
			`{"@type":"ListItem","position":1,"name":"Home","item":"https://example.com"}]}`

		err := newValidator(t).Validate(schemagen.KindBreadcrumb, raw)

		assert.NoError(t, err)
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		t.Parallel()

		schema := &schemagen.BreadcrumbListSchema{
			Context:         schemagen.SchemaContext,
			Type:            "BreadcrumbList",
			ItemListElement: []schemagen.ListItemSchema{},
		}

		err := newValidator(t).Validate(schemagen.KindBreadcrumb, schema)

		assert.Equal(t, schemagen.EINVALID, schemagen.ErrorCode(err))
		assert.Contains(t, schemagen.ErrorMessage(err), "/itemListElement")
	})

	t.Run("rejects relative item URL", func(t *testing.T) {
		t.Parallel()

		raw := `{"@context":"https://schema.org","@type":"BreadcrumbList","itemListElement":[` +
			`{"@type":"ListItem","position":1,"name":"Home","item":"/docs/"}]}`

		err := newValidator(t).Validate(schemagen.KindBreadcrumb, raw)

		assert.Equal(t, schemagen.EINVALID, schemagen.ErrorCode(err))
		assert.Contains(t, schemagen.ErrorMessage(err), "/itemListElement/0/item")
	})

	t.Run("rejects non-contiguous positions", func(t *testing.T) {
		t.Parallel()

		raw := `{"@context":"https://schema.org","@type":"BreadcrumbList","itemListElement":[` +
			`{"@type":"ListItem","position":1,"name":"Home","item":"https://example.com"},` +
			`{"@type":"ListItem","position":3,"name":"Docs","item":"https://example.com/docs/"}]}`

		err := newValidator(t).Validate(schemagen.KindBreadcrumb, raw)

		assert.Equal(t, schemagen.EINVALID, schemagen.ErrorCode(err))
		assert.Contains(t, schemagen.ErrorMessage(err), "position 3, want 2")
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		err := newValidator(t).Validate(schemagen.KindBreadcrumb, []byte(`{"@type":`))

		assert.Equal(t, schemagen.EINVALID, schemagen.ErrorCode(err))
	})
}

func TestValidator_Validate_Article(t *testing.T) {
	t.Parallel()

	org := schemagen.OrganizationIdentity{
		Name:    "Example",
		URL:     "https://example.com",
		LogoURL: "https://example.com/logo.png",
	}
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("accepts generated article", func(t *testing.T) {
		t.Parallel()

		article := schemagen.BuildArticle("https://example.com/post/", schemagen.ArticleMetadata{Headline: "Post"}, org, now)

		err := newValidator(t).Validate(schemagen.KindArticle, article.JSONLD())

		assert.NoError(t, err)
	})

	t.Run("rejects empty headline and bad timestamp", func(t *testing.T) {
		t.Parallel()

		article := schemagen.BuildArticle("https://example.com/post/", schemagen.ArticleMetadata{}, org, now)
		jsonld := article.JSONLD()
		jsonld.DateModified = "yesterday"

		err := newValidator(t).Validate(schemagen.KindArticle, jsonld)

		require.Equal(t, schemagen.EINVALID, schemagen.ErrorCode(err))
		msg := schemagen.ErrorMessage(err)
		assert.Contains(t, msg, "/headline")
		assert.Contains(t, msg, "/dateModified")
	})

	t.Run("rejects breadcrumb validated as article", func(t *testing.T) {
		t.Parallel()

		b := &schemagen.BreadcrumbBuilder{BaseURL: "https://example.com"}
		list, err := b.Build("https://example.com/docs/")
		require.NoError(t, err)

		err = newValidator(t).Validate(schemagen.KindArticle, list.JSONLD())

		assert.Equal(t, schemagen.EINVALID, schemagen.ErrorCode(err))
	})
}

func TestValidator_Validate_UnknownKind(t *testing.T) {
	t.Parallel()

	err := newValidator(t).Validate(schemagen.Kind("faq"), map[string]any{})

	assert.Equal(t, schemagen.EINVALID, schemagen.ErrorCode(err))
}
