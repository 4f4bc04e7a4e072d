package renderer

import (
	"strconv"
	"strings"

	"github.com/ismailco/pwa2native/internal/manifest"
)

// Repeated-block placeholders expand to one fragment per entry, each
// fragment rendered from its own small template through the same
// substitution machinery as the outer file (two-level render). Entry
// order follows the manifest; duplicates are kept.
const (
	tokenNavigationLinks = "navigation_links"
	tokenShortcutsMenu   = "shortcuts_menu"

	noNavigationComment = "// No navigation links found"
	noShortcutsComment  = "// No shortcuts available"
)

const navItemFragment = `let navItem${index} = NSMenuItem(
    title: "${title}",
    action: #selector(loadURL(_:)),
    keyEquivalent: ""
)
navItem${index}.target = self
shortcutURLs["${title}"] = "${link}"
navigationMenu.addItem(navItem${index})`

const shortcutsMenuHeader = `let shortcutsMenuItem = NSMenuItem()
let shortcutsMenu = NSMenu(title: "Shortcuts")
shortcutsMenuItem.submenu = shortcutsMenu`

const shortcutItemFragment = `let menuItem${index} = NSMenuItem(
    title: "${title}",
    action: #selector(loadURL(_:)),
    keyEquivalent: "${key}"
)
menuItem${index}.target = self
shortcutURLs["${title}"] = "${link}"
shortcutsMenu.addItem(menuItem${index})`

const shortcutsMenuFooter = `mainMenu.addItem(shortcutsMenuItem)`

// expandBlocks replaces the repeated-block tokens in text. Expanded
// fragments inherit the indentation of the line holding the token so the
// generated source stays readable.
func expandBlocks(text string, syntax Syntax, cfg *manifest.AppConfig) string {
	text = replaceBlockToken(text, tokenNavigationLinks, renderNavigationLinks(syntax, cfg))
	text = replaceBlockToken(text, tokenShortcutsMenu, renderShortcutsMenu(syntax, cfg))

	return text
}

func renderNavigationLinks(syntax Syntax, cfg *manifest.AppConfig) string {
	if len(cfg.NavLinks) == 0 {
		return noNavigationComment
	}

	fragments := make([]string, 0, len(cfg.NavLinks))
	for i, link := range cfg.NavLinks {
		fragments = append(fragments, renderEntry(navItemFragment, syntax, map[string]string{
			"index": strconv.Itoa(i),
			"title": link.Title,
			"link":  cfg.ResolveURL(link.URL),
			"key":   "",
		}))
	}

	return strings.Join(fragments, "\n")
}

func renderShortcutsMenu(syntax Syntax, cfg *manifest.AppConfig) string {
	if len(cfg.Shortcuts) == 0 {
		return noShortcutsComment
	}

	parts := []string{shortcutsMenuHeader}
	for i, shortcut := range cfg.Shortcuts {
		key := ""
		if i < 9 {
			key = strconv.Itoa(i + 1)
		}
		parts = append(parts, renderEntry(shortcutItemFragment, syntax, map[string]string{
			"index": strconv.Itoa(i),
			"title": shortcut.Name,
			"link":  cfg.ResolveURL(shortcut.URL),
			"key":   key,
		}))
	}
	parts = append(parts, shortcutsMenuFooter)

	return strings.Join(parts, "\n")
}

// renderEntry renders one inner per-entry template. The index and key
// values are generated, never escaped; title and link come from manifest
// data and are escaped for the outer file's syntax.
func renderEntry(fragment string, syntax Syntax, scope map[string]string) string {
	return substitute(fragment, func(name string) (string, bool) {
		value, ok := scope[name]
		if !ok {
			return "", false
		}
		if name == "title" || name == "link" {
			return Escape(value, syntax), true
		}

		return value, true
	})
}

// replaceBlockToken substitutes every ${token} occurrence with the
// replacement text, re-indenting continuation lines to the token's own
// line indentation.
func replaceBlockToken(text, token, replacement string) string {
	marker := "${" + token + "}"

	for {
		idx := strings.Index(text, marker)
		if idx < 0 {
			return text
		}

		indent := lineIndent(text, idx)
		indented := strings.ReplaceAll(replacement, "\n", "\n"+indent)
		text = text[:idx] + indented + text[idx+len(marker):]
	}
}

// lineIndent returns the leading whitespace of the line containing
// position idx, but only when nothing else precedes idx on that line.
func lineIndent(text string, idx int) string {
	start := strings.LastIndexByte(text[:idx], '\n') + 1
	prefix := text[start:idx]
	if strings.TrimSpace(prefix) != "" {
		return ""
	}

	return prefix
}
