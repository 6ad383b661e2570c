package artworks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "KT1X_0", Key("KT1X", 0))
	assert.Equal(t, "KT1A1r5J3NKVyhSBm2S7PPaG3Y1NtgAoUTho_30", Key("KT1A1r5J3NKVyhSBm2S7PPaG3Y1NtgAoUTho", 30))
}

func TestAllowlist_IsEligible(t *testing.T) {
	al := New([]Artwork{
		{ContractAddress: "KT1X", TokenID: 0},
		{ContractAddress: "KT1Y", TokenID: 3},
	})

	assert.True(t, al.IsEligible("KT1X", 0))
	assert.True(t, al.IsEligible("KT1Y", 3))
	assert.False(t, al.IsEligible("KT1X", 1), "same contract, different token")
	assert.False(t, al.IsEligible("KT1ZZZ", 99))
}

func TestAllowlist_LinksFor(t *testing.T) {
	al := New([]Artwork{
		{
			ContractAddress: "KT1X",
			TokenID:         0,
			Links: Links{
				ObjktLink:       "https://objkt.com/tokens/KT1X/0",
				TwitterHandle:   "https://x.com/artist",
				TwitterUsername: "@artist",
			},
		},
	})

	known := al.LinksFor("KT1X", 0)
	assert.Equal(t, "@artist", known.TwitterUsername)

	// Unknown artworks get synthesized placeholders, never broken links
	unknown := al.LinksFor("KT1ZZZ", 99)
	assert.Equal(t, "https://objkt.com/tokens/KT1ZZZ/99", unknown.ObjktLink)
	assert.Equal(t, "#", unknown.TwitterHandle)
	assert.Equal(t, "@unknown", unknown.TwitterUsername)
}

func TestDefault_CuratedRound(t *testing.T) {
	al := Default()

	assert.Equal(t, 10, al.Size())
	assert.True(t, al.IsEligible("KT1Tj26yEQwFAKnpHCF6pWasz5qeYbVWC1iP", 0))
	assert.True(t, al.IsEligible("KT1A1r5J3NKVyhSBm2S7PPaG3Y1NtgAoUTho", 30))
	assert.False(t, al.IsEligible("KT1Tj26yEQwFAKnpHCF6pWasz5qeYbVWC1iP", 1))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "allowlist.json")
	data := `[
		{"contractAddress": "KT1X", "tokenId": 0, "links": {"objktLink": "https://objkt.com/tokens/KT1X/0", "twitterHandle": "#", "twitterUsername": "@a"}},
		{"contractAddress": "KT1Y", "tokenId": 3, "links": {}}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	al, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, al.Size())
	assert.True(t, al.IsEligible("KT1Y", 3))
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile("/nonexistent/allowlist.json")
	assert.Error(t, err)

	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o600))
	_, err = LoadFile(bad)
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte("[]"), 0o600))
	_, err = LoadFile(empty)
	assert.Error(t, err)
}
