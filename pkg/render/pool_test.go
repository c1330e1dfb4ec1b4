package render_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/blockwrap/pkg/render"
	"github.com/yaklabco/blockwrap/pkg/wrap"
)

func sampleBlocks() []wrap.Block {
	return []wrap.Block{
		{"One fish.", "Two fish."},
		{"Red fish."},
		{"Blue", "fish", "again."},
		{"The end."},
	}
}

func TestRenderAll_DeterministicOrder(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, smallOptions())

	for _, jobs := range []int{0, 1, 2, 16} {
		batch, err := r.RenderAll(context.Background(), sampleBlocks(), jobs)
		require.NoError(t, err)
		require.NoError(t, batch.Err())

		require.Len(t, batch.Pages, 4)
		for i, page := range batch.Pages {
			assert.Equal(t, i, page.Index)
			assert.NotEmpty(t, page.PNG)
		}

		assert.Equal(t, 4, batch.Stats.Blocks)
		assert.Equal(t, 4, batch.Stats.Rendered)
		assert.Zero(t, batch.Stats.Errored)
		assert.Positive(t, batch.Stats.Bytes)
	}
}

func TestRenderAll_NoBlocks(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, smallOptions())

	batch, err := r.RenderAll(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, batch.Pages)
	assert.NoError(t, batch.Err())
}

func TestRenderAll_PageError(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, smallOptions())

	blocks := []wrap.Block{{"ok"}, {}, {"ok"}}
	batch, err := r.RenderAll(context.Background(), blocks, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, batch.Stats.Rendered)
	assert.Equal(t, 1, batch.Stats.Errored)

	pageErr := batch.Err()
	require.ErrorIs(t, pageErr, render.ErrEmptyBlock)
	assert.Contains(t, pageErr.Error(), "block 2")
}

func TestRenderAll_Cancelled(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, smallOptions())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.RenderAll(ctx, sampleBlocks(), 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestArchive(t *testing.T) {
	t.Parallel()

	pages := []render.Page{
		{Index: 0, PNG: []byte("first")},
		{Index: 1, Error: render.ErrEmptyBlock},
		{Index: 2, PNG: []byte("third")},
	}

	data, err := render.Archive(pages)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"1.png", "3.png"}, names)

	rc, err := zr.File[1].Open()
	require.NoError(t, err)
	defer rc.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(rc)
	require.NoError(t, err)
	assert.Equal(t, "third", buf.String())
}

func TestPageName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.png", render.PageName(0))
	assert.Equal(t, "12.png", render.Page{Index: 11}.Name())
}
