package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

// Sentinel errors for batch operations.
var (
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWritePage    = errors.New("failed to write page")
	ErrPagesFailed  = errors.New("some pages failed")
)

// PageConverter is the interface for page conversion.
type PageConverter interface {
	Convert(ctx context.Context, input mdsite.Input) (*mdsite.Result, error)
}

// Compile-time interface implementation check.
var _ PageConverter = (*mdsite.Converter)(nil)

// skipDraft is the PageResult.Skipped reason for unpublished drafts.
const skipDraft = "draft"

// PageResult holds the outcome of a single page.
type PageResult struct {
	Source   string
	Dest     string
	Title    string
	Size     int
	Skipped  string // Reason the page was left out, empty if generated
	Err      error
	Duration time.Duration
}

// generatePages converts pages concurrently; results keep discovery order.
func generatePages(ctx context.Context, conv PageConverter, pages []PageFile, workers int, drafts bool) []PageResult {
	if len(pages) == 0 {
		return nil
	}

	if workers > len(pages) {
		workers = len(pages)
	}

	results := make([]PageResult, len(pages))
	jobs := make(chan int, len(pages))

	for i := range pages {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					results[i] = PageResult{Source: pages[i].Source, Dest: pages[i].Dest, Err: err}
					continue
				}
				results[i] = generatePage(ctx, conv, pages[i], drafts)
			}
		}()
	}

	wg.Wait()
	return results
}

// generatePage reads, converts and writes one page.
// Drafts are detected from front matter before conversion, so unfinished
// drafts never fail the build.
func generatePage(ctx context.Context, conv PageConverter, p PageFile, drafts bool) (result PageResult) {
	start := time.Now()
	result = PageResult{Source: p.Source, Dest: p.Dest}
	defer func() { result.Duration = time.Since(start) }()

	content, err := os.ReadFile(p.Source) // #nosec G304 -- path comes from content discovery
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrReadMarkdown, err)
		return result
	}

	if !drafts {
		meta, _, err := mdsite.ParseFrontMatter(string(content))
		if err != nil {
			result.Err = err
			return result
		}
		if meta.Draft {
			result.Skipped = skipDraft
			return result
		}
	}

	out, err := conv.Convert(ctx, mdsite.Input{Markdown: string(content)})
	if err != nil {
		result.Err = err
		return result
	}

	if err := fileutil.WriteFile(p.Dest, out.HTML); err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrWritePage, err)
		return result
	}

	result.Title = out.Title
	result.Size = len(out.HTML)
	return result
}

// ResultSummary counts pages by outcome.
type ResultSummary struct {
	Generated int
	Skipped   int
	Failed    int
	FirstErr  error
}

// countResults tallies page outcomes.
func countResults(results []PageResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
			if summary.FirstErr == nil {
				summary.FirstErr = r.Err
			}
		case r.Skipped != "":
			summary.Skipped++
		default:
			summary.Generated++
		}
	}
	return summary
}

// printResults writes one line per page and a summary for multi-page builds.
// Failures always go to stderr; generated pages are silenced by quiet.
func printResults(results []PageResult, quiet, verbose bool, env *Environment) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.Source, r.Err, contentHint(r.Err))
			continue
		}

		// Skipped pages are logged, not printed.
		if quiet || r.Skipped != "" {
			continue
		}

		switch {
		case verbose:
			fmt.Fprintf(env.Stdout, "%s -> %s (%s, %v)\n",
				r.Source, r.Dest, humanize.Bytes(uint64(r.Size)), r.Duration.Round(time.Millisecond)) // #nosec G115 -- sizes are non-negative
		default:
			fmt.Fprintf(env.Stdout, "Created %s\n", r.Dest)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d generated, %d skipped, %d failed\n",
			summary.Generated, summary.Skipped, summary.Failed)
	}

	return summary
}

// resolveWorkers determines the worker count.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolveWorkers(n int) int {
	if n > 0 {
		return n
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	w := runtime.GOMAXPROCS(0) / 2

	// Minimum 1, maximum 8
	if w < 1 {
		return 1
	}
	if w > 8 {
		return 8
	}
	return w
}
