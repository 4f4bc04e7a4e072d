// Package renderer is the placeholder substitution engine. It resolves a
// fixed vocabulary of ${name} tokens against an AppConfig, escapes every
// substituted value for the destination file's syntax, and expands the
// repeated-block tokens for navigation links and shortcut menus. Unknown
// tokens pass through as literal text.
package renderer

import (
	"path"
	"strings"
	"unicode/utf8"

	"github.com/ismailco/pwa2native/internal/errors"
	"github.com/ismailco/pwa2native/internal/manifest"
	"github.com/ismailco/pwa2native/internal/registry"
)

// RenderedFile is one output file with its final content.
type RenderedFile struct {
	RelPath    string
	Data       []byte
	Executable bool
}

// RenderedProject is the fully substituted template tree for one
// platform, ready for the emitter.
type RenderedProject struct {
	Platform registry.Platform
	Files    []RenderedFile
}

// binaryExtensions lists file types that pass through unmodified.
var binaryExtensions = map[string]bool{
	".png":  true,
	".ico":  true,
	".icns": true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Render substitutes the bundle's templates against cfg. The url field is
// required: rendering never substitutes an empty string for ${url}.
func Render(bundle *registry.TemplateBundle, cfg *manifest.AppConfig) (*RenderedProject, error) {
	if cfg.URL == "" {
		return nil, errors.NewRenderError("url").WithPlatform(string(bundle.Platform))
	}
	if cfg.AppName == "" {
		return nil, errors.NewRenderError("app_name").WithPlatform(string(bundle.Platform))
	}

	project := &RenderedProject{
		Platform: bundle.Platform,
		Files:    make([]RenderedFile, 0, len(bundle.Files)),
	}

	for _, file := range bundle.Files {
		relPath := substituteScalars(file.RelPath, SyntaxPath, cfg)

		data := file.Raw
		if !isBinary(file.RelPath, file.Raw) {
			syntax := SyntaxForPath(file.RelPath)
			text := expandBlocks(string(file.Raw), syntax, cfg)
			data = []byte(substituteScalars(text, syntax, cfg))
		}

		project.Files = append(project.Files, RenderedFile{
			RelPath:    relPath,
			Data:       data,
			Executable: file.Executable,
		})
	}

	return project, nil
}

func isBinary(relPath string, raw []byte) bool {
	if binaryExtensions[strings.ToLower(path.Ext(relPath))] {
		return true
	}

	return !utf8.Valid(raw)
}
