// Package search coordinates glob, metadata and content filtering into
// a single resource discovery pass.
package search

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/resfind/resfind-mcp/internal/content"
	"github.com/resfind/resfind-mcp/internal/glob"
	"github.com/resfind/resfind-mcp/internal/metadata"
	"github.com/resfind/resfind-mcp/internal/types"
	"github.com/resfind/resfind-mcp/internal/walker"
)

// Service runs resource discovery over one project root. All state is
// set up front; each FindResources call is independent, so concurrent
// calls are safe.
type Service struct {
	rootPath  string
	logger    *zap.Logger
	workers   int
	chunkSize int
	carryOver int
	ignore    *glob.Glob
}

// New creates a discovery service for rootPath. A nil logger is
// replaced with a no-op logger.
func New(rootPath string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		rootPath:  rootPath,
		logger:    logger,
		workers:   runtime.NumCPU(),
		chunkSize: content.DefaultChunkSize,
		carryOver: content.DefaultCarryOver,
	}
}

// SetWorkers bounds the content-search worker pool.
func (s *Service) SetWorkers(n int) {
	if n > 0 {
		s.workers = n
	}
}

// SetWindow overrides the streaming chunk and carry-over sizes used for
// content search.
func (s *Service) SetWindow(chunkSize, carryOver int) {
	if chunkSize > 0 {
		s.chunkSize = chunkSize
	}
	if carryOver > 0 {
		s.carryOver = carryOver
	}
}

// SetIgnore installs patterns excluded from every walk. The default is
// no exclusions.
func (s *Service) SetIgnore(g *glob.Glob) { s.ignore = g }

// FindResources locates every file under the root that satisfies all
// supplied criteria. Cheap predicates run first: the path glob, then
// the stat filters, and only then content search. A content pattern
// that fails to compile degrades the whole call to zero matches, with
// the compiler diagnostic preserved in the result; the only fatal error
// is an inaccessible root.
func (s *Service) FindResources(criteria types.SearchCriteria) (types.SearchResult, error) {
	description := Describe(criteria)

	var pathGlob *glob.Glob
	if criteria.ResourcePattern != "" {
		pathGlob = glob.Compile(criteria.ResourcePattern)
	}

	var searcher *content.Searcher
	if criteria.ContentPattern != "" {
		var err error
		searcher, err = content.New(criteria.ContentPattern, criteria.CaseSensitive)
		if err != nil {
			var patternErr *content.PatternError
			if errors.As(err, &patternErr) {
				return types.SearchResult{
					Count:       0,
					Paths:       []string{},
					Description: description,
					ErrorNote:   patternErr.Error(),
				}, nil
			}
			return types.SearchResult{}, err
		}
		searcher.SetWindow(s.chunkSize, s.carryOver)
	}

	w, err := walker.New(s.rootPath, s.logger)
	if err != nil {
		return types.SearchResult{}, err
	}
	w.SetIgnore(s.ignore)

	var candidates []types.FileCandidate
	err = w.Walk(pathGlob, func(c types.FileCandidate) error {
		if pathGlob != nil && !pathGlob.Match(c.RelPath) {
			return nil
		}
		if !metadata.SizeInRange(c.Size, criteria.SizeMin, criteria.SizeMax) {
			return nil
		}
		if !metadata.MTimeInRange(c.ModTime, criteria.DateAfter, criteria.DateBefore) {
			return nil
		}
		candidates = append(candidates, c)
		return nil
	})
	if err != nil {
		return types.SearchResult{}, err
	}

	paths := make([]string, 0, len(candidates))
	if searcher == nil {
		for _, c := range candidates {
			paths = append(paths, c.RelPath)
		}
	} else {
		paths = s.contentFilter(searcher, candidates)
	}

	return types.SearchResult{
		Count:       len(paths),
		Paths:       paths,
		Description: description,
	}, nil
}

// contentFilter runs the expensive content check over the candidates in
// parallel and returns the accepted paths in traversal order.
func (s *Service) contentFilter(searcher *content.Searcher, candidates []types.FileCandidate) []string {
	if len(candidates) == 0 {
		return []string{}
	}

	numWorkers := max(min(s.workers, len(candidates)), 1)

	type indexedPath struct {
		idx int
		rel string
	}

	resultsCh := make(chan indexedPath, len(candidates))
	fileCh := make(chan struct {
		idx  int
		cand types.FileCandidate
	}, len(candidates))

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Go(func() {
			for item := range fileCh {
				ok, err := searcher.Matches(item.cand.AbsPath)
				if err != nil {
					// Vanished or unreadable since stat; skip it.
					s.logger.Warn("skipping candidate",
						zap.String("path", item.cand.RelPath), zap.Error(err))
					continue
				}
				if ok {
					resultsCh <- indexedPath{idx: item.idx, rel: item.cand.RelPath}
				}
			}
		})
	}

	for i, c := range candidates {
		fileCh <- struct {
			idx  int
			cand types.FileCandidate
		}{i, c}
	}
	close(fileCh)

	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	var accepted []indexedPath
	for r := range resultsCh {
		accepted = append(accepted, r)
	}
	sort.Slice(accepted, func(i, j int) bool {
		return accepted[i].idx < accepted[j].idx
	})

	paths := make([]string, 0, len(accepted))
	for _, a := range accepted {
		paths = append(paths, a.rel)
	}
	return paths
}

// Describe renders the criteria description fragment: a comma-joined
// list of the supplied criteria, in a fixed order. The exact wording
// and punctuation are a stable contract with callers.
func Describe(c types.SearchCriteria) string {
	var clauses []string
	if c.ContentPattern != "" {
		sensitivity := "case-insensitive"
		if c.CaseSensitive {
			sensitivity = "case-sensitive"
		}
		clauses = append(clauses, fmt.Sprintf("content pattern \"%s\", %s", c.ContentPattern, sensitivity))
	}
	if c.ResourcePattern != "" {
		clauses = append(clauses, fmt.Sprintf("resource pattern \"%s\"", c.ResourcePattern))
	}
	if c.DateAfter != nil {
		clauses = append(clauses, "modified after "+c.DateAfter.Format("2006-01-02"))
	}
	if c.DateBefore != nil {
		clauses = append(clauses, "modified before "+c.DateBefore.Format("2006-01-02"))
	}
	if c.SizeMin != nil {
		clauses = append(clauses, fmt.Sprintf("minimum size %d bytes", *c.SizeMin))
	}
	if c.SizeMax != nil {
		clauses = append(clauses, fmt.Sprintf("maximum size %d bytes", *c.SizeMax))
	}
	return strings.Join(clauses, ", ")
}
