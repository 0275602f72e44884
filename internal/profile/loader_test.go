package profile

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPaths struct {
	profile  string
	projects string
	summary  string
}

func (p testPaths) GetProfilePDFPath() string  { return p.profile }
func (p testPaths) GetProjectsPDFPath() string { return p.projects }
func (p testPaths) GetSummaryPath() string     { return p.summary }

func TestLoad_MissingProfilePDF(t *testing.T) {
	dir := t.TempDir()
	paths := testPaths{
		profile:  filepath.Join(dir, "ProfileLinkedIn.pdf"),
		projects: filepath.Join(dir, "ProjectsLinkedIn.pdf"),
		summary:  filepath.Join(dir, "summary.txt"),
	}

	bundle, err := Load(context.Background(), "Rahul Anand", paths)
	require.Error(t, err)
	assert.Nil(t, bundle)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "profile document")
}

func TestLoad_MissingSummary(t *testing.T) {
	dir := t.TempDir()
	paths := testPaths{
		profile:  filepath.Join(dir, "ProfileLinkedIn.pdf"),
		projects: filepath.Join(dir, "ProjectsLinkedIn.pdf"),
		summary:  filepath.Join(dir, "summary.txt"),
	}
	writeMinimalPDF(t, paths.profile)
	writeMinimalPDF(t, paths.projects)

	_, err := Load(context.Background(), "Rahul Anand", paths)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "summary")
}

func TestLoad_OK(t *testing.T) {
	dir := t.TempDir()
	paths := testPaths{
		profile:  filepath.Join(dir, "ProfileLinkedIn.pdf"),
		projects: filepath.Join(dir, "ProjectsLinkedIn.pdf"),
		summary:  filepath.Join(dir, "summary.txt"),
	}
	writeMinimalPDF(t, paths.profile)
	writeMinimalPDF(t, paths.projects)
	require.NoError(t, os.WriteFile(paths.summary, []byte("Engineer with a decade of backend work."), 0644))

	bundle, err := Load(context.Background(), "Rahul Anand", paths)
	require.NoError(t, err)
	assert.Equal(t, "Rahul Anand", bundle.Name)
	assert.Equal(t, "Engineer with a decade of backend work.", bundle.Summary)
}

// writeMinimalPDF emits a syntactically valid empty single-page PDF.
func writeMinimalPDF(t *testing.T, path string) {
	t.Helper()

	const body = `%PDF-1.4
1 0 obj
<< /Type /Catalog /Pages 2 0 R >>
endobj
2 0 obj
<< /Type /Pages /Kids [3 0 R] /Count 1 >>
endobj
3 0 obj
<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>
endobj
xref
0 4
0000000000 65535 f
0000000009 00000 n
0000000058 00000 n
0000000115 00000 n
trailer
<< /Size 4 /Root 1 0 R >>
startxref
186
%%EOF
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}
