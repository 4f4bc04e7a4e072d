package renderer

import (
	"path"
	"strings"
)

// Syntax identifies the escaping rule family of a destination file.
// Substituted values are escaped according to the file they land in, not
// by one universal rule.
type Syntax int

const (
	// SyntaxPlain performs no escaping (gradle.properties, pbxproj, sln).
	SyntaxPlain Syntax = iota
	// SyntaxSource escapes for string literals in C-family source
	// (Swift, Java, C#, Kotlin, Groovy build scripts).
	SyntaxSource
	// SyntaxXML escapes XML entities (AndroidManifest.xml, plists, csproj).
	SyntaxXML
	// SyntaxShell escapes for double-quoted strings in POSIX shell.
	SyntaxShell
	// SyntaxPath sanitizes values substituted into destination paths.
	SyntaxPath
)

var syntaxByExtension = map[string]Syntax{
	".swift":      SyntaxSource,
	".java":       SyntaxSource,
	".cs":         SyntaxSource,
	".kt":         SyntaxSource,
	".gradle":     SyntaxSource,
	".xml":        SyntaxXML,
	".plist":      SyntaxXML,
	".csproj":     SyntaxXML,
	".storyboard": SyntaxXML,
	".sh":         SyntaxShell,
}

// SyntaxForPath selects the escaping syntax for a destination file.
func SyntaxForPath(relPath string) Syntax {
	ext := strings.ToLower(path.Ext(relPath))
	if s, ok := syntaxByExtension[ext]; ok {
		return s
	}

	return SyntaxPlain
}

// The single quote is escaped too: Groovy build scripts use
// single-quoted literals, and \' is a valid escape in Swift, Java and
// C# string literals as well.
var sourceEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

var shellEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"`", "\\`",
	"$", `\$`,
)

// Escape applies the escaping rule of the given syntax to a substituted
// value. Template text around the token is never touched.
func Escape(value string, syntax Syntax) string {
	switch syntax {
	case SyntaxSource:
		return sourceEscaper.Replace(value)
	case SyntaxXML:
		return xmlEscaper.Replace(value)
	case SyntaxShell:
		return shellEscaper.Replace(value)
	case SyntaxPath:
		return escapePath(value)
	default:
		return value
	}
}

// escapePath strips characters that are separators or unsafe in file
// names so a substituted value cannot escape the output tree.
func escapePath(value string) string {
	var sb strings.Builder
	for _, r := range value {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', '$', '{', '}':
			// dropped
		default:
			sb.WriteRune(r)
		}
	}

	return strings.TrimSpace(sb.String())
}
