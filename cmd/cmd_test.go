package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryan-rushton/omni/internal/history"
	"github.com/ryan-rushton/omni/internal/kvstore"
)

// execute runs the command tree with args and returns everything written to
// stdout and stderr.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// writeConfig writes a config that keeps history and logs inside a temp dir.
func writeConfig(t *testing.T) (configPath, dbPath string) {
	t.Helper()
	dir := t.TempDir()
	dbPath = filepath.Join(dir, "omni.db")
	configPath = filepath.Join(dir, "config.toml")
	body := fmt.Sprintf("[history]\nbackend = \"sqlite\"\npath = %q\n\n[log]\npath = \"\"\n", dbPath)
	require.NoError(t, os.WriteFile(configPath, []byte(body), 0o644))
	return configPath, dbPath
}

func TestSearch_Text(t *testing.T) {
	out, err := execute(t, "search", "json", "prettifier")
	require.NoError(t, err)
	assert.Contains(t, out, `Found 1 matching tools for "json prettifier"`)
	assert.Contains(t, out, "Developer Tools")
	assert.Contains(t, out, "#json-prettifier")
}

func TestSearch_JSON(t *testing.T) {
	out, err := execute(t, "search", "--json", "json prettifier")
	require.NoError(t, err)

	var got []toolJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "json-prettifier", got[0].ID)
	assert.Equal(t, "developer", got[0].Category)
	assert.Equal(t, "Developer Tools", got[0].CategoryLabel)
}

func TestSearch_NoMatches(t *testing.T) {
	out, err := execute(t, "search", "zzzzzz-nothing")
	require.NoError(t, err)
	assert.Contains(t, out, "No tools matched your query")
}

func TestSearch_RequiresQuery(t *testing.T) {
	_, err := execute(t, "search")
	require.Error(t, err)
}

func TestCategories(t *testing.T) {
	out, err := execute(t, "categories")
	require.NoError(t, err)
	for _, want := range []string{"Text Tools", "#text-tools", "ecommerce", "Online Utilities", "756 tools in total"} {
		assert.Contains(t, out, want)
	}
}

func TestList(t *testing.T) {
	for _, arg := range []string{"developer", "Developer Tools", "developer-tools", "#developer-tools"} {
		t.Run(arg, func(t *testing.T) {
			out, err := execute(t, "list", arg)
			require.NoError(t, err)
			assert.Contains(t, out, "Developer Tools (40)")
			assert.Contains(t, out, "json-prettifier")
		})
	}
}

func TestList_UnknownCategory(t *testing.T) {
	_, err := execute(t, "list", "json-prettifier")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestResolve(t *testing.T) {
	tests := []struct {
		args  []string
		state string
		token string
	}{
		{[]string{"json-prettifier"}, "tool(json-prettifier)", `"json-prettifier"`},
		{[]string{"Text Tools"}, "category(Text Tools)", `"text-tools"`},
		{[]string{"no-such-place"}, "home", `""`},
		{nil, "home", `""`},
	}
	for _, tt := range tests {
		out, err := execute(t, append([]string{"resolve"}, tt.args...)...)
		require.NoError(t, err)
		assert.Contains(t, out, "state: "+tt.state)
		assert.Contains(t, out, "token: "+tt.token)
	}
}

func TestRecent(t *testing.T) {
	configPath, dbPath := writeConfig(t)

	out, err := execute(t, "recent", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No recent searches")

	store, err := kvstore.NewSQLite(dbPath)
	require.NoError(t, err)
	h := history.Open(store, nil)
	require.NoError(t, h.Record("pdf"))
	require.NoError(t, h.Record("json"))
	require.NoError(t, store.Close())

	out, err = execute(t, "recent", "--config", configPath)
	require.NoError(t, err)
	assert.Equal(t, "1. json\n2. pdf\n", out)

	out, err = execute(t, "recent", "--clear", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared recent searches")

	out, err = execute(t, "recent", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No recent searches")
}

func TestRecent_Ephemeral(t *testing.T) {
	configPath, dbPath := writeConfig(t)

	out, err := execute(t, "recent", "--ephemeral", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No recent searches")
	assert.NoFileExists(t, dbPath)
}

func TestRecent_CorruptStoreFallsBackToMemory(t *testing.T) {
	configPath, dbPath := writeConfig(t)
	require.NoError(t, os.WriteFile(dbPath, []byte("definitely not a database file, just some bytes"), 0o644))

	out, err := execute(t, "recent", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No recent searches")

	root := newRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--config", configPath}))
	e, err := openEnv(root)
	require.NoError(t, err)
	defer e.Close()
	assert.IsType(t, &kvstore.Memory{}, e.store)
	require.NoError(t, e.history.Record("pdf"))
	assert.Equal(t, []string{"pdf"}, e.history.List())
}

func TestRecent_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[history]\nbackend = \"redis\"\n"), 0o644))

	_, err := execute(t, "recent", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history.backend")
}

func TestToolModel(t *testing.T) {
	m, err := toolModel("word-counter")
	require.NoError(t, err)
	assert.NotNil(t, m)

	_, err = toolModel("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tool")
}

func TestUpdate_DevBuildSkips(t *testing.T) {
	out, err := execute(t, "update")
	require.NoError(t, err)
	assert.Contains(t, out, "Skipping update check")
}

func TestCheckUpdate_DevBuildDisabled(t *testing.T) {
	assert.Nil(t, checkUpdate(nil))
}
