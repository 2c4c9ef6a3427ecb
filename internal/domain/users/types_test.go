package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordKeepsOnlyHash(t *testing.T) {
	var p password
	require.NoError(t, p.Set("s3cret-pass"))

	assert.NotEmpty(t, p.hash)
	assert.NotContains(t, string(p.hash), "s3cret-pass")
	assert.NoError(t, p.Compare("s3cret-pass"))
	assert.Error(t, p.Compare("wrong-pass"))
}

func TestHasFavorite(t *testing.T) {
	u := &User{Favorites: []int64{3, 7}}

	assert.True(t, u.HasFavorite(7))
	assert.False(t, u.HasFavorite(4))
}
