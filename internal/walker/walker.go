// Package walker enumerates candidate files under a project root.
package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/resfind/resfind-mcp/internal/glob"
	"github.com/resfind/resfind-mcp/internal/types"
)

// RootError reports a project root that does not exist or is not a
// directory. It is the only error that aborts a whole search.
type RootError struct {
	Path string
	Err  error
}

func (e *RootError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("project root not accessible: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("project root is not a directory: %s", e.Path)
}

func (e *RootError) Unwrap() error { return e.Err }

// Walker streams regular files under a validated project root.
type Walker struct {
	root   string
	logger *zap.Logger
	ignore *glob.Glob // optional; nil means nothing is excluded
}

// New validates root and returns a walker for it. A nil logger is
// replaced with a no-op logger.
func New(root string, logger *zap.Logger) (*Walker, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, &RootError{Path: root, Err: err}
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, &RootError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &RootError{Path: root}
	}
	return &Walker{root: abs, logger: logger}, nil
}

// Root returns the absolute project root.
func (w *Walker) Root() string { return w.root }

// SetIgnore installs patterns whose matches are excluded from every
// walk. The default is no exclusions.
func (w *Walker) SetIgnore(g *glob.Glob) { w.ignore = g }

// Walk calls fn for every regular file under the root, depth-first.
// Symbolic links are never followed, which also rules out link cycles.
// Unreadable subtrees are logged and skipped. When a prune glob is
// supplied, directories that cannot contain a match are skipped; the
// caller still re-checks acceptance against the full relative path.
func (w *Walker) Walk(prune *glob.Glob, fn func(types.FileCandidate) error) error {
	return w.walkDir(w.root, "", prune, fn)
}

func (w *Walker) walkDir(dir, rel string, prune *glob.Glob, fn func(types.FileCandidate) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.logger.Warn("skipping unreadable directory", zap.String("path", dir), zap.Error(err))
		return nil
	}

	for _, entry := range entries {
		name := entry.Name()
		childRel := name
		if rel != "" {
			childRel = rel + "/" + name
		}
		childAbs := filepath.Join(dir, name)

		if entry.Type()&os.ModeSymlink != 0 {
			continue
		}
		if w.ignore != nil && w.ignore.Match(childRel) {
			continue
		}

		if entry.IsDir() {
			if prune != nil && !prune.CouldMatchDir(childRel) {
				continue
			}
			if err := w.walkDir(childAbs, childRel, prune, fn); err != nil {
				return err
			}
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// File vanished between ReadDir and stat.
			w.logger.Warn("skipping entry", zap.String("path", childAbs), zap.Error(err))
			continue
		}
		candidate := types.FileCandidate{
			RelPath: childRel,
			AbsPath: childAbs,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}
		if err := fn(candidate); err != nil {
			return err
		}
	}
	return nil
}

// ResolvePath resolves a relative path inside the root and rejects
// traversal outside it.
func (w *Walker) ResolvePath(relativePath string) (string, error) {
	relativePath = strings.TrimSpace(relativePath)
	normalized := strings.TrimPrefix(relativePath, "/")

	abs, err := filepath.Abs(filepath.Join(w.root, normalized))
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(w.root, abs)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal not allowed: %s", relativePath)
	}

	return abs, nil
}
