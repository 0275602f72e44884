package profile

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/raanand/careerbot/pkg/log"
)

// Config provides the resource file locations, normally config.AppConfig.
type Config interface {
	GetProfilePDFPath() string
	GetProjectsPDFPath() string
	GetSummaryPath() string
}

// Load reads the candidate documents into an immutable Bundle. A missing or
// unreadable file is a launch-time configuration error; callers are expected
// to abort, not to retry during conversations.
func Load(ctx context.Context, name string, cfg Config) (*Bundle, error) {
	profileText, err := extractPDFText(cfg.GetProfilePDFPath())
	if err != nil {
		return nil, fmt.Errorf("profile document: %w", err)
	}

	projectsText, err := extractPDFText(cfg.GetProjectsPDFPath())
	if err != nil {
		return nil, fmt.Errorf("projects document: %w", err)
	}

	summary, err := os.ReadFile(cfg.GetSummaryPath())
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	bundle := &Bundle{
		Name:         name,
		Summary:      string(summary),
		ProfileText:  profileText,
		ProjectsText: projectsText,
	}

	log.FromCtx(ctx).Info().
		Str("candidate", name).
		Int("profile_bytes", len(bundle.ProfileText)).
		Int("projects_bytes", len(bundle.ProjectsText)).
		Msg("profile bundle loaded")

	return bundle, nil
}

// extractPDFText concatenates the plain text of every non-empty page.
func extractPDFText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var sb strings.Builder
	fonts := make(map[string]*pdf.Font)

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("page %d of %s: %w", i, path, err)
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}
