package localfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name string, size int) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0o644))
	}
	write("20240115_093000_広報部.txt", 2048)
	write("template_（総務部）.docx", 100)
	write("report.pdf", 10)
	write("20240116_080000_広報部.txt", 1536)
	write("memo.txt", 1)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755))

	listing := NewScanner(nil).Scan(dir)

	var keys []string
	for _, g := range listing.Groups() {
		keys = append(keys, g.Department)
	}
	assert.Equal(t, []string{"広報部", "memo.txt", "総務部"}, keys)

	pr := listing.Files("広報部")
	require.Len(t, pr, 2)
	assert.Equal(t, "20240115_093000_広報部.txt", pr[0].Filename)
	assert.Equal(t, 2.0, pr[0].SizeKB)
	assert.Equal(t, 1.5, pr[1].SizeKB)
	assert.Equal(t, ".txt", pr[0].Extension)
	require.NotNil(t, pr[0].Modified)
	assert.Len(t, pr[0].ModifiedLabel(), len("01/02 15:04"))

	docs := listing.Files("総務部")
	require.Len(t, docs, 1)
	assert.Equal(t, ".docx", docs[0].Extension)
	assert.Equal(t, 0.1, docs[0].SizeKB)

	assert.Nil(t, listing.Files("report.pdf"))
}

func TestScanMissingFolder(t *testing.T) {
	t.Parallel()

	s := NewScanner(nil)
	assert.Equal(t, 0, s.Scan("").Len())
	assert.Equal(t, 0, s.Scan(filepath.Join(t.TempDir(), "nope")).Len())
}
