package render

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/blockwrap/pkg/wrap"
)

// Page is one rendered block.
type Page struct {
	// Index is the zero-based block position.
	Index int

	// PNG holds the encoded image. Nil when Error is set.
	PNG []byte

	// Error is set if the block could not be rendered.
	Error error
}

// Name returns the archive entry name for the page ("1.png", "2.png", ...).
func (p Page) Name() string {
	return PageName(p.Index)
}

// PageName returns the one-based file name for block index i.
func PageName(i int) string {
	return fmt.Sprintf("%d.png", i+1)
}

// BatchStats captures aggregate information about a batch.
type BatchStats struct {
	Blocks   int
	Rendered int
	Errored  int
	Bytes    int
}

// Batch is the result of rendering many blocks.
type Batch struct {
	// Pages are ordered by block index.
	Pages []Page

	Stats BatchStats
}

// Err returns the first page error in block order.
func (b *Batch) Err() error {
	if b == nil {
		return nil
	}
	for _, page := range b.Pages {
		if page.Error != nil {
			return fmt.Errorf("render block %d: %w", page.Index+1, page.Error)
		}
	}
	return nil
}

// RenderAll renders and encodes every block on a pool of jobs workers
// (NumCPU when jobs <= 0). Pages come back in block order regardless of
// completion order.
func (r *Renderer) RenderAll(ctx context.Context, blocks []wrap.Block, jobs int) (*Batch, error) {
	batch := &Batch{
		Pages: make([]Page, 0, len(blocks)),
		Stats: BatchStats{Blocks: len(blocks)},
	}

	if len(blocks) == 0 {
		return batch, nil
	}

	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(blocks))

	workCh := make(chan int)
	outCh := make(chan Page)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, blocks, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for idx := range blocks {
			select {
			case <-ctx.Done():
				return
			case workCh <- idx:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers finish out of order.
	pages := make(map[int]Page, len(blocks))
	for page := range outCh {
		pages[page.Index] = page
	}

	for idx := range blocks {
		if page, ok := pages[idx]; ok {
			batch.accumulate(page)
		}
	}

	if ctx.Err() != nil {
		return batch, fmt.Errorf("render cancelled: %w", ctx.Err())
	}

	return batch, nil
}

func (r *Renderer) worker(ctx context.Context, blocks []wrap.Block, workCh <-chan int, outCh chan<- Page) {
	for idx := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		page := Page{Index: idx}

		img, err := r.RenderBlock(blocks[idx])
		if err == nil {
			page.PNG, err = EncodePNG(img)
		}
		page.Error = err

		select {
		case <-ctx.Done():
			return
		case outCh <- page:
		}
	}
}

func (b *Batch) accumulate(page Page) {
	b.Pages = append(b.Pages, page)

	if page.Error != nil {
		b.Stats.Errored++
		return
	}

	b.Stats.Rendered++
	b.Stats.Bytes += len(page.PNG)
}
