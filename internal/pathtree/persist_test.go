package pathtree

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	store, oracle := newTestStore(t)
	oracle.addFile("a/b/c")
	oracle.addDir("a/d")
	oracle.addFile("x")
	require.NoError(t, store.RegisterAll([]string{"a/b/c", "a/d", "x"}))

	data, err := store.Encode()
	require.NoError(t, err)

	root, err := Decode(data)
	require.NoError(t, err)

	restored := New(oracle)
	require.NoError(t, restored.ReplaceAll(root))

	assert.Equal(t, store.ListAll(), restored.ListAll())

	for _, path := range store.ListAll() {
		want, err := store.MetadataOf(path)
		require.NoError(t, err)
		got, err := restored.MetadataOf(path)
		require.NoError(t, err)

		assert.Equal(t, want.Registered, got.Registered, "path %s", path)
		assert.Equal(t, want.IsFile, got.IsFile, "path %s", path)
		require.NotNil(t, got.RegisteredAt, "path %s", path)
		assert.True(t, want.RegisteredAt.Equal(*got.RegisteredAt), "path %s", path)
	}
}

func TestEncode_WireLayout(t *testing.T) {
	store, oracle := newTestStore(t)
	oracle.addFile("a/b")
	require.NoError(t, store.Register("a/b"))

	data, err := store.Encode()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	a, ok := doc["a"].(map[string]any)
	require.True(t, ok, "segment a must be an object")

	b, ok := a["b"].(map[string]any)
	require.True(t, ok, "segment b must be an object")

	meta, ok := b["//"].(map[string]any)
	require.True(t, ok, "metadata must live under the reserved key")

	assert.Equal(t, true, meta["registered"])
	assert.Equal(t, true, meta["isFile"])
	assert.Equal(t, "2026-08-31T12:00:00Z", meta["registeredAt"])

	// Structural ancestor has a zero metadata record.
	aMeta, ok := a["//"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, aMeta["registered"])
	assert.Nil(t, aMeta["registeredAt"])
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := Decode([]byte("{not json"))
	assert.ErrorIs(t, err, ErrParse)
}

func TestDecode_TopLevelNotObject(t *testing.T) {
	for _, doc := range []string{`[]`, `"text"`, `42`, `null`} {
		_, err := Decode([]byte(doc))
		assert.ErrorIs(t, err, ErrInvalidData, "document %s", doc)
	}
}

func TestDecode_BadMetadata(t *testing.T) {
	docs := []string{
		// registered without a timestamp
		`{"a": {"//": {"registered": true, "isFile": false, "registeredAt": null}}}`,
		// structural with a timestamp
		`{"a": {"//": {"registered": false, "isFile": false, "registeredAt": "2026-08-31T12:00:00Z"}}}`,
		// timestamp not in wire format
		`{"a": {"//": {"registered": true, "isFile": false, "registeredAt": "31/08/2026"}}}`,
		// metadata not an object
		`{"a": {"//": "oops"}}`,
	}

	for _, doc := range docs {
		_, err := Decode([]byte(doc))
		assert.ErrorIs(t, err, ErrInvalidData, "document %s", doc)
	}
}

func TestDecode_NullValues(t *testing.T) {
	docs := []string{
		// null child node
		`{"a": null}`,
		// null metadata record
		`{"a": {"//": null}}`,
	}

	for _, doc := range docs {
		_, err := Decode([]byte(doc))
		assert.ErrorIs(t, err, ErrInvalidData, "document %s", doc)
	}
}

func TestDecode_SegmentContainingSeparator(t *testing.T) {
	doc := `{"a/b": {"//": {"registered": false, "isFile": false, "registeredAt": null}}}`
	_, err := Decode([]byte(doc))
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestDecode_EmptyObject(t *testing.T) {
	root, err := Decode([]byte(`{}`))
	require.NoError(t, err)

	store := New(newFakeOracle())
	require.NoError(t, store.ReplaceAll(root))
	assert.Empty(t, store.ListAll())
}

func TestSaveLoad(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "nested", "paths.json")

	store, oracle := newTestStore(t)
	oracle.addFile("a/b")
	require.NoError(t, store.Register("a/b"))
	require.NoError(t, store.Save(filePath))

	restored := New(oracle)
	require.NoError(t, restored.Load(filePath))

	assert.Equal(t, []string{"a/b"}, restored.ListAll())

	meta, err := restored.MetadataOf("a/b")
	require.NoError(t, err)
	assert.True(t, meta.Registered)
	assert.True(t, meta.IsFile)
}

func TestSave_Overwrites(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "paths.json")
	require.NoError(t, os.WriteFile(filePath, []byte("old content"), 0644))

	store, oracle := newTestStore(t)
	oracle.addFile("a")
	require.NoError(t, store.Register("a"))
	require.NoError(t, store.Save(filePath))

	restored := New(oracle)
	require.NoError(t, restored.Load(filePath))
	assert.Equal(t, []string{"a"}, restored.ListAll())
}

func TestLoad_MissingFile(t *testing.T) {
	store, oracle := newTestStore(t)
	oracle.addFile("a")
	require.NoError(t, store.Register("a"))

	err := store.Load(filepath.Join(t.TempDir(), "absent.json"))
	require.ErrorIs(t, err, fs.ErrNotExist)

	// The in-memory tree is unchanged on failure.
	assert.Equal(t, []string{"a"}, store.ListAll())
}

func TestLoad_MalformedFile(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "paths.json")
	require.NoError(t, os.WriteFile(filePath, []byte("{broken"), 0644))

	store, oracle := newTestStore(t)
	oracle.addFile("a")
	require.NoError(t, store.Register("a"))

	err := store.Load(filePath)
	require.ErrorIs(t, err, ErrParse)
	assert.Equal(t, []string{"a"}, store.ListAll())
}

func TestMetadata_TimestampPrecision(t *testing.T) {
	store, oracle := newTestStore(t)
	store.now = func() time.Time {
		return time.Date(2026, 8, 31, 12, 0, 0, 123456789, time.UTC)
	}
	oracle.addFile("a")
	require.NoError(t, store.Register("a"))

	data, err := store.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"registeredAt": "2026-08-31T12:00:00Z"`)
}
