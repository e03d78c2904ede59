package duckdb

import (
	"net/url"
	"testing"

	"github.com/jing2uo/top100db/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSNFromURL(t *testing.T) {
	tests := map[string]string{
		"duckdb://":                        "",
		"duckdb://top100.duckdb":           "top100.duckdb",
		"duckdb:///var/lib/top100.duckdb":  "/var/lib/top100.duckdb",
		"duckdb://data/top100.duckdb":      "data/top100.duckdb",
		"duckdb:top100.duckdb":             "top100.duckdb",
		"duckdb://top100.duckdb?threads=2": "top100.duckdb?threads=2",
	}
	for in, want := range tests {
		u, err := url.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, dsnFromURL(u), in)
	}
}

func TestDialect(t *testing.T) {
	d := dialect{}
	meta := model.TableTop100

	assert.Equal(t, `"id" BIGINT PRIMARY KEY DEFAULT nextval('"all_top_100_id_seq"')`, d.KeyColumn(meta))
	assert.Equal(t, []string{`CREATE SEQUENCE IF NOT EXISTS "all_top_100_id_seq" START 1`}, d.PreCreate(meta))

	odd := meta.Named("top-100")
	assert.Equal(t, `"id" BIGINT PRIMARY KEY DEFAULT nextval('"top-100_id_seq"')`, d.KeyColumn(odd))
	assert.Equal(t, []string{`CREATE SEQUENCE IF NOT EXISTS "top-100_id_seq" START 1`}, d.PreCreate(odd))
	assert.Equal(t, "DOUBLE", d.MapType(model.TypeFloat64))
	assert.Equal(t, "DATE", d.MapType(model.TypeDate))
	assert.Equal(t, `"my ""table"""`, d.QuoteIdent(`my "table"`))
}
