package images

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1712345/imagenes/abc.jpg", "imagenes/abc"},
		{"https://res.cloudinary.com/demo/image/upload/imagenes/abc.png", "imagenes/abc"},
		{"https://res.cloudinary.com/demo/image/upload/v1/abc", "abc"},
	}

	for _, tt := range tests {
		got, err := publicIDFromURL(tt.url)
		require.NoError(t, err, tt.url)
		assert.Equal(t, tt.want, got)
	}
}

func TestPublicIDFromURLRejectsForeignURLs(t *testing.T) {
	for _, u := range []string{
		"https://example.com/some/photo.jpg",
		"https://res.cloudinary.com/demo/image/upload/",
		"https://res.cloudinary.com/demo/image/upload/v123",
	} {
		_, err := publicIDFromURL(u)
		assert.ErrorIs(t, err, ErrUnknownURL, u)
	}
}

func TestObjectKeyLayout(t *testing.T) {
	key := objectKey()

	assert.True(t, strings.HasPrefix(key, Folder+"/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.NotEqual(t, key, objectKey())
}

func TestKeyFromURL(t *testing.T) {
	base := "http://localhost:9000/unilocal/"

	key, err := keyFromURL(base, base+"imagenes/abc.jpg")
	require.NoError(t, err)
	assert.Equal(t, "imagenes/abc.jpg", key)

	_, err = keyFromURL(base, "http://elsewhere/unilocal/imagenes/abc.jpg")
	assert.ErrorIs(t, err, ErrUnknownURL)

	_, err = keyFromURL(base, base)
	assert.ErrorIs(t, err, ErrUnknownURL)
}
