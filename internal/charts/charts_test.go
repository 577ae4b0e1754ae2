package charts

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-dev/fintrack/internal/analysis"
	"github.com/fintrack-dev/fintrack/internal/model"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func testRenderer() *Renderer {
	return NewRenderer(800, 400, 10)
}

func sampleTotals() model.Series {
	return model.Series{
		{Label: "Rent", Value: d(1000)},
		{Label: "Groceries", Value: d(500)},
		{Label: "Eating_Out", Value: d(250)},
	}
}

func assertPNG(t *testing.T, buf *bytes.Buffer) {
	t.Helper()
	require.Greater(t, buf.Len(), len(pngMagic))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), "output is not a PNG")
}

func TestIncomeHistogram(t *testing.T) {
	var buf bytes.Buffer
	err := testRenderer().IncomeHistogram(&buf, []float64{1000, 2000, 2500, 4000, 12000})
	require.NoError(t, err)
	assertPNG(t, &buf)
}

func TestRatioHistogram_SingleValue(t *testing.T) {
	var buf bytes.Buffer
	err := testRenderer().RatioHistogram(&buf, []float64{0.5, 0.5})
	require.NoError(t, err)
	assertPNG(t, &buf)
}

func TestHistogram_NothingToPlot(t *testing.T) {
	err := testRenderer().RatioHistogram(io.Discard, nil)
	assert.ErrorIs(t, err, ErrNothingToPlot)
}

func TestCategoryBar(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testRenderer().CategoryBar(&buf, sampleTotals()))
	assertPNG(t, &buf)

	assert.ErrorIs(t, testRenderer().CategoryBar(io.Discard, nil), ErrNothingToPlot)
}

func TestSavingsPie(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testRenderer().SavingsPie(&buf, sampleTotals()))
	assertPNG(t, &buf)
}

func TestSavingsPie_AllZero(t *testing.T) {
	err := testRenderer().SavingsPie(io.Discard, model.Series{{Label: "A", Value: d(0)}, {Label: "B", Value: d(-1)}})
	assert.ErrorIs(t, err, ErrNothingToPlot)
}

func TestTopCategoryBar(t *testing.T) {
	h := analysis.Highlight{
		Top: model.Point{Label: "Rent", Value: d(1000)},
		Categories: []analysis.Ranked{
			{Point: model.Point{Label: "Rent", Value: d(1000)}, IsTop: true},
			{Point: model.Point{Label: "Groceries", Value: d(500)}},
		},
	}

	bars := highlightBars(h)
	require.Len(t, bars, 2)
	assert.Equal(t, topColor, bars[0].Style.FillColor)
	assert.Equal(t, otherColor, bars[1].Style.FillColor)
	assert.Equal(t, "Groceries", bars[1].Label)

	var buf bytes.Buffer
	require.NoError(t, testRenderer().TopCategoryBar(&buf, h))
	assertPNG(t, &buf)
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	path, err := WriteFile(dir, "category-distribution", func(w io.Writer) error {
		return testRenderer().CategoryBar(w, sampleTotals())
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "category-distribution.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestWriteFile_RenderFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteFile(dir, "broken", func(io.Writer) error { return ErrNothingToPlot })
	require.ErrorIs(t, err, ErrNothingToPlot)

	_, err = os.Stat(filepath.Join(dir, "broken.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestRenderAll(t *testing.T) {
	dir := t.TempDir()
	r := testRenderer()
	jobs := []Job{
		{Name: "categories", Render: func(w io.Writer) error { return r.CategoryBar(w, sampleTotals()) }},
		{Name: "savings", Render: func(w io.Writer) error { return r.SavingsPie(w, sampleTotals()) }},
		{Name: "income", Render: func(w io.Writer) error { return r.IncomeHistogram(w, []float64{1, 2, 3}) }},
	}

	paths, err := RenderAll(context.Background(), dir, jobs)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "categories.png"),
		filepath.Join(dir, "savings.png"),
		filepath.Join(dir, "income.png"),
	}, paths)
	for _, p := range paths {
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}
}

func TestRenderAll_Failure(t *testing.T) {
	boom := errors.New("boom")
	jobs := []Job{
		{Name: "ok", Render: func(w io.Writer) error { return testRenderer().CategoryBar(w, sampleTotals()) }},
		{Name: "bad", Render: func(io.Writer) error { return boom }},
	}
	_, err := RenderAll(context.Background(), t.TempDir(), jobs)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "chart bad")
}
