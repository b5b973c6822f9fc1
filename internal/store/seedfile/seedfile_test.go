package seedfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitbill/splitbill/internal/roster"
)

func TestLoad_EmptyPathUsesDefaultSeed(t *testing.T) {
	friends, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, roster.DefaultSeed(), friends)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_YAMLList(t *testing.T) {
	p := filepath.Join(t.TempDir(), "friends.yaml")
	doc := `
- id: a1
  name: Ada
  image: https://img.test/a.png
  balance: -12.5
- id: b2
  name: Bo
`
	require.NoError(t, os.WriteFile(p, []byte(doc), 0o644))

	friends, err := Load(p)
	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, "Ada", friends[0].Name)
	assert.Equal(t, "-12.5", friends[0].Balance.String())
	assert.True(t, friends[1].Balance.IsZero())
}

func TestParse_FriendsKey(t *testing.T) {
	friends, err := Parse([]byte(`{"friends":[{"id":"x","name":"Xi","balance":"4"}]}`))
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "4", friends[0].Balance.String())
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte(`[{"id":"x"}]`))
	assert.ErrorContains(t, err, "id and name are required")

	_, err = Parse([]byte(`[{"id":"x","name":"Xi","balance":"lots"}]`))
	assert.ErrorContains(t, err, "balance")
}

func TestExport_RoundTrips(t *testing.T) {
	s := roster.New(roster.DefaultSeed())
	s.SelectFriend("118836")
	s.SplitBill(decimal.NewFromInt(60))

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, s.Snapshot()))
	assert.Contains(t, buf.String(), `"view": "roster"`)

	friends, err := Parse(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, friends, 3)
	assert.Equal(t, "Clark", friends[0].Name)
	assert.Equal(t, "53", friends[0].Balance.String())
}

func TestExportFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, ExportFile(p, roster.New(roster.DefaultSeed()).Snapshot()))

	friends, err := Load(p)
	require.NoError(t, err)
	assert.Len(t, friends, 3)
}
