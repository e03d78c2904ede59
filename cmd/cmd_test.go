package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/jing2uo/top100db/loader"
	"github.com/jing2uo/top100db/model"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Symbol,Name,Wtd Alpha,Rank,Last,Prev Rank,Change,%Chg,52W High,52W Low,52W %Chg,Time
ZM,Zoom Video Communications,+287.50,1,1296.00,3,+25.50,+2.01%,1301.00,60.48,+550.80%,08/28/20
TSLA,"Tesla, Inc.",+276.02,2,"2,213.40",,+74.08,+3.46%,"2,318.49",211.00,+879.74%,08/28/20
"Downloaded from Barchart.com as of 08-30-2020 03:50pm CDT"
`

func setup(t *testing.T) Options {
	t.Helper()
	color.NoColor = true

	dir := t.TempDir()
	file := filepath.Join(dir, "top-100-stocks-to-buy.csv")
	require.NoError(t, os.WriteFile(file, []byte(sampleCSV), 0644))

	return Options{
		DB:   "sqlite://" + filepath.Join(dir, "top100.db"),
		File: file,
	}
}

func TestLoad_Idempotent(t *testing.T) {
	opts := setup(t)
	ctx := context.Background()

	res, err := Load(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, loader.OutcomeLoaded, res.Outcome)
	assert.Equal(t, 2, res.Inserted)
	assert.Equal(t, 1, res.Skipped)

	res, err = Load(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, loader.OutcomeAlreadyLoaded, res.Outcome)
	assert.Equal(t, 0, res.Inserted)

	var out bytes.Buffer
	require.NoError(t, Dates(ctx, &out, opts))
	assert.Equal(t, "2020-08-28\n", out.String())
}

func TestLoad_BadURI(t *testing.T) {
	opts := setup(t)
	opts.DB = "oracle://localhost/top100"

	_, err := Load(context.Background(), opts)
	assert.ErrorContains(t, err, "unsupported db type")
}

func TestInit(t *testing.T) {
	opts := setup(t)
	ctx := context.Background()

	require.NoError(t, Init(ctx, opts))
	require.NoError(t, Init(ctx, opts))

	var out bytes.Buffer
	require.NoError(t, Dates(ctx, &out, opts))
	assert.Empty(t, out.String())
}

func TestDates_NoTable(t *testing.T) {
	opts := setup(t)

	var out bytes.Buffer
	require.NoError(t, Dates(context.Background(), &out, opts))
	assert.Contains(t, out.String(), "all_top_100 does not exist")
}

func TestSymbols(t *testing.T) {
	opts := setup(t)

	var out bytes.Buffer
	require.NoError(t, Symbols(&out, opts.File))
	assert.Equal(t, "ZM - Zoom Video Communications\nTSLA - Tesla, Inc.\n", out.String())
}

func TestDump(t *testing.T) {
	opts := setup(t)

	var out bytes.Buffer
	require.NoError(t, Dump(&out, opts.File, false))
	assert.Contains(t, out.String(), "Tesla, Inc.")
	assert.Contains(t, out.String(), "08/28/20")
	assert.NotContains(t, out.String(), "Downloaded from")

	out.Reset()
	require.NoError(t, Dump(&out, opts.File, true))
	assert.Contains(t, out.String(), `"Tesla Inc."`)
	assert.Contains(t, out.String(), `"2020-08-28"`)
	assert.Contains(t, out.String(), "2213.40")
}

func TestExport(t *testing.T) {
	opts := setup(t)
	ctx := context.Background()
	_, err := Load(ctx, opts)
	require.NoError(t, err)

	outDir := filepath.Join(t.TempDir(), "export")

	path, err := Export(ctx, opts, ExportOptions{OutputDir: outDir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "all_top_100.parquet"), path)

	rows, err := parquet.ReadFile[model.TopStock](path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ZM", rows[0].Symbol)
	assert.Equal(t, int64(0), rows[1].PrevRank)

	path, err = Export(ctx, opts, ExportOptions{OutputDir: outDir, Format: ExportCSV, Date: "2020-08-28"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "all_top_100_2020-08-28.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "id,name,symbol,wtd_alpha")
	assert.Contains(t, string(data), "TSLA")
}

func TestExport_BadOptions(t *testing.T) {
	opts := setup(t)
	ctx := context.Background()

	_, err := Export(ctx, opts, ExportOptions{OutputDir: t.TempDir(), Format: "xlsx"})
	assert.ErrorContains(t, err, "unsupported export format")

	_, err = Export(ctx, opts, ExportOptions{OutputDir: t.TempDir(), Date: "08/28/20"})
	assert.ErrorContains(t, err, "invalid --date")
}
