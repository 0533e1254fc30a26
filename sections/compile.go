package sections

import (
	"context"
	"html/template"
	"sync"

	cerrors "github.com/migratio/contentcatalog/errors"
	"github.com/migratio/contentcatalog/markdown"
)

// DefaultCompileWorkers bounds the section compilation fan-out.
const DefaultCompileWorkers = 4

// Compiler compiles all sections of one document concurrently.
type Compiler struct {
	workers int
	compile func([]byte) (template.HTML, error)
}

// NewCompiler returns a Compiler with the given fan-out bound (defaulted
// when non-positive).
func NewCompiler(workers int) Compiler {
	if workers < 1 {
		workers = DefaultCompileWorkers
	}
	return Compiler{workers: workers, compile: markdown.Compile}
}

// Compile renders every section of m independently and waits for the full
// set. The result preserves the key set of m. A single section failure fails
// the whole call, carrying the document identity and section key; missing
// content is never presented as a legitimate empty section.
func (c Compiler) Compile(ctx context.Context, docID string, m *SectionMap) (map[string]template.HTML, error) {
	keys := m.Keys()

	workers := c.workers
	if workers > len(keys) {
		workers = len(keys)
	}
	if workers < 1 {
		workers = 1
	}

	compiled := make(map[string]template.HTML, len(keys))
	failures := make(map[string]error)

	tasks := make(chan string)
	var wg sync.WaitGroup
	var mu sync.Mutex
	worker := func() {
		defer wg.Done()
		for key := range tasks {
			select {
			case <-ctx.Done():
				return
			default:
			}
			raw, _ := m.Get(key)
			out, err := c.compile([]byte(raw))
			mu.Lock()
			if err != nil {
				failures[key] = err
			} else {
				compiled[key] = out
			}
			mu.Unlock()
		}
	}
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go worker()
	}
	for _, key := range keys {
		select {
		case <-ctx.Done():
			close(tasks)
			wg.Wait()
			return nil, ctx.Err()
		case tasks <- key:
		}
	}
	close(tasks)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Surface the first failure in section order for determinism.
	for _, key := range keys {
		if err, failed := failures[key]; failed {
			return nil, cerrors.SectionCompileFailed(docID, key, err)
		}
	}
	// Sections skipped by a canceled worker have neither output nor failure.
	for _, key := range keys {
		if _, ok := compiled[key]; !ok {
			return nil, cerrors.SectionCompileFailed(docID, key, context.Canceled)
		}
	}
	return compiled, nil
}
