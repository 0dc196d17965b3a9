package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NewsletterDesk/internal/infrastructure/share"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCommand(&stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func submissionsFolder(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "20240701_100000_広報部.txt"), []byte("【広報部】\n\n活動報告です"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "メルマガ原稿_（研究部）.docx"), []byte("PK"), 0o644))
	return dir
}

func TestBuildWritesIssue(t *testing.T) {
	dir := submissionsFolder(t)
	out := filepath.Join(t.TempDir(), "vol30.txt")

	_, _, err := runCLI(t, "build", "--folder", dir, "--source", "local",
		"--volume", "30", "--year", "2024", "--month", "7", "--day", "15", "--out", out)
	require.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	doc := string(raw)
	assert.Contains(t, doc, "【広報部】\n\n活動報告です")
	assert.Contains(t, doc, "vol.30　2024年7月15日発行")
	assert.Contains(t, doc, "vol.30 をお読みいただきありがとうございました。")
}

func TestBuildToStdout(t *testing.T) {
	dir := submissionsFolder(t)

	stdout, _, err := runCLI(t, "build", "--folder", dir, "--source", "local",
		"--volume", "31", "--year", "2024", "--month", "9")
	require.NoError(t, err)
	assert.Contains(t, stdout, "メルマガいたしん vol.31　2024年9月15日発行")
}

func TestBuildRejectsBadMonth(t *testing.T) {
	_, _, err := runCLI(t, "build", "--folder", t.TempDir(), "--source", "local",
		"--volume", "30", "--year", "2024", "--month", "13")
	assert.Error(t, err)
}

func TestScanJSON(t *testing.T) {
	dir := submissionsFolder(t)

	stdout, _, err := runCLI(t, "scan", "--folder", dir, "--json")
	require.NoError(t, err)

	var groups []struct {
		Dept  string `json:"dept"`
		Files []struct {
			Filename string `json:"filename"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &groups))
	require.Len(t, groups, 2)
	assert.Equal(t, "広報部", groups[0].Dept)
	assert.Equal(t, "研究部", groups[1].Dept)
}

func TestArticlesTable(t *testing.T) {
	dir := submissionsFolder(t)

	stdout, _, err := runCLI(t, "articles", "--folder", dir, "--source", "local")
	require.NoError(t, err)
	assert.Contains(t, stdout, "20240701_100000_広報部.txt")
	assert.Contains(t, stdout, "活動報告です")
}

func TestArticlesShareInputError(t *testing.T) {
	_, _, err := runCLI(t, "articles", "--source", "share", "--share-url", "https://example.com/nothing")
	require.Error(t, err)
	assert.Equal(t, "共有URLに /s/<トークン> が含まれていません", userMessage(err))
}

func TestUserMessage(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("collect share: %w", &share.Error{Kind: share.KindAuth, Message: "パスワードが正しくありません"})
	assert.Equal(t, "パスワードが正しくありません", userMessage(wrapped))
	assert.Equal(t, "plain", userMessage(fmt.Errorf("plain")))
}

func TestScanJSONEmptyFolder(t *testing.T) {
	stdout, _, err := runCLI(t, "scan", "--folder", t.TempDir(), "--json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", stdout)

	stdout, _, err = runCLI(t, "scan", "--folder", filepath.Join(t.TempDir(), "missing"), "--json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", stdout)
}
