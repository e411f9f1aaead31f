package schemagen_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/schemagen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadURLs(t *testing.T) {
	t.Parallel()

	input := "  https://site.com/a  \n\n\thttps://site.com/b\r\n   \nhttps://site.com/c"

	urls, err := schemagen.ReadURLs(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []string{"https://site.com/a", "https://site.com/b", "https://site.com/c"}, urls)
}

func TestReadURLs_Empty(t *testing.T) {
	t.Parallel()

	urls, err := schemagen.ReadURLs(strings.NewReader("\n  \n"))

	require.NoError(t, err)
	assert.Empty(t, urls)
}
