// Package glob compiles resource patterns into path matchers.
//
// A resource pattern is one or more |-separated alternatives. Within an
// alternative, * matches any run of characters inside a single path
// segment and ** matches zero or more whole segments. An alternative
// without a slash is "bare" and selects by file name at any depth.
package glob

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob is a compiled resource pattern. A path matches the glob if it
// matches any alternative.
type Glob struct {
	alts []alternative
}

type alternative struct {
	pattern  string
	bare     bool // no '/' in the pattern
	wildcard bool // contains glob metacharacters
	literal  bool // pattern failed to validate, compare as a plain string
}

// Compile builds a matcher from a resource pattern. It never fails: an
// alternative that does not validate as a glob degrades to a literal
// string comparison, and an empty pattern matches nothing but itself.
func Compile(pattern string) *Glob {
	g := &Glob{}
	for _, alt := range strings.Split(pattern, "|") {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			continue
		}
		g.alts = append(g.alts, compileAlternative(alt))
	}
	if len(g.alts) == 0 {
		g.alts = append(g.alts, alternative{
			pattern: pattern,
			bare:    !strings.Contains(pattern, "/"),
			literal: true,
		})
	}
	return g
}

func compileAlternative(alt string) alternative {
	a := alternative{
		pattern:  alt,
		bare:     !strings.Contains(alt, "/"),
		wildcard: strings.ContainsAny(alt, "*?["),
	}
	if !doublestar.ValidatePattern(alt) {
		a.literal = true
	}
	return a
}

// Match reports whether the slash-separated relative path matches the
// glob. Matching is case-sensitive.
func (g *Glob) Match(relPath string) bool {
	for _, a := range g.alts {
		if a.match(relPath) {
			return true
		}
	}
	return false
}

func (a alternative) match(relPath string) bool {
	if a.literal {
		return relPath == a.pattern || (a.bare && path.Base(relPath) == a.pattern)
	}
	if a.bare {
		// A slash-free pattern selects a file regardless of its
		// directory depth: match the final segment, or the exact
		// relative path for wildcard-free patterns.
		if ok, err := doublestar.Match(a.pattern, path.Base(relPath)); err == nil && ok {
			return true
		}
		if !a.wildcard {
			return relPath == a.pattern || strings.HasSuffix(relPath, "/"+a.pattern)
		}
		return false
	}
	ok, err := doublestar.Match(a.pattern, relPath)
	return err == nil && ok
}

// CouldMatchDir reports whether the directory at relDir could contain a
// matching file. It is deliberately conservative: a true result only
// means the subtree cannot be skipped, final acceptance is always
// re-checked against the full relative path.
func (g *Glob) CouldMatchDir(relDir string) bool {
	for _, a := range g.alts {
		if a.couldMatchDir(relDir) {
			return true
		}
	}
	return false
}

func (a alternative) couldMatchDir(relDir string) bool {
	if a.bare {
		return true
	}
	if a.literal {
		return strings.HasPrefix(a.pattern, relDir+"/")
	}
	segs := strings.Split(a.pattern, "/")
	dirSegs := strings.Split(relDir, "/")
	for i, ds := range dirSegs {
		if i >= len(segs) {
			return false
		}
		if segs[i] == "**" {
			return true
		}
		ok, err := doublestar.Match(segs[i], ds)
		if err != nil || !ok {
			return false
		}
	}
	// Every directory segment matched; the pattern still needs at least
	// one segment left over to name a file inside the directory.
	return len(segs) > len(dirSegs)
}
