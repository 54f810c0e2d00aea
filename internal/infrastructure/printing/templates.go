package printing

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/printhub/backend/internal/domain/printing"
)

// baseDesignToken marks locations relative to the shared design root; any
// other @name@ token names a module whose files live under that module's
// directory.
const baseDesignToken = "basedesign"

var (
	// ErrEmptyTemplateLocation is returned when a template line has no
	// location configured.
	ErrEmptyTemplateLocation = errors.New("template line has no location")

	// ErrTemplateNotFound is returned when the template file exists under
	// neither probed root.
	ErrTemplateNotFound = errors.New("template file not found")
)

// TemplateFileResolver maps template line locations to files on disk.
// Locations may start with a @basedesign@ or @<module>@ source-root token;
// the resulting relative path is probed first under the design root, then
// under the web root.
type TemplateFileResolver struct {
	DesignRoot string
	WebRoot    string
}

// NewTemplateFileResolver creates a resolver over the two template roots
func NewTemplateFileResolver(designRoot, webRoot string) *TemplateFileResolver {
	return &TemplateFileResolver{DesignRoot: designRoot, WebRoot: webRoot}
}

// Resolve returns the absolute path of the template file named by
// location. Failures are surfaced as ProviderErrors: a broken template
// configuration is a provider-side fault, not caller input.
func (r *TemplateFileResolver) Resolve(location string) (string, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return "", printing.WrapProviderError("resolve template", ErrEmptyTemplateLocation)
	}

	rel := expandToken(location)
	rel = strings.TrimPrefix(rel, "/")
	rel = filepath.FromSlash(rel)

	designPath := filepath.Join(r.DesignRoot, rel)
	if fileExists(designPath) {
		return designPath, nil
	}
	webPath := filepath.Join(r.WebRoot, rel)
	if fileExists(webPath) {
		return webPath, nil
	}
	return "", printing.WrapProviderError(
		fmt.Sprintf("template %q (probed %q and %q)", location, designPath, webPath),
		ErrTemplateNotFound)
}

// expandToken rewrites a leading @token@ into a relative path segment.
// Token matching is case-insensitive; @basedesign@ contributes no segment.
func expandToken(location string) string {
	if !strings.HasPrefix(location, "@") {
		return location
	}
	end := strings.Index(location[1:], "@")
	if end < 0 {
		return location
	}
	token := location[1 : end+1]
	rest := location[end+2:]
	if strings.EqualFold(token, baseDesignToken) {
		return rest
	}
	return token + "/" + strings.TrimPrefix(rest, "/")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
