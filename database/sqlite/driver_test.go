package sqlite

import (
	"net/url"
	"testing"
	"time"

	"github.com/jing2uo/top100db/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSNFromURL(t *testing.T) {
	tests := map[string]string{
		"sqlite://":                   ":memory:",
		"sqlite://top100.db":          "top100.db",
		"sqlite:///tmp/top100.db":     "/tmp/top100.db",
		"sqlite://top100.db?mode=rwc": "file:top100.db?mode=rwc",
	}
	for in, want := range tests {
		u, err := url.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, dsnFromURL(u), in)
	}
}

func TestDialect(t *testing.T) {
	d := dialect{}

	assert.Equal(t, `"id" INTEGER PRIMARY KEY AUTOINCREMENT`, d.KeyColumn(model.TableTop100))
	assert.Empty(t, d.PreCreate(model.TableTop100))
	assert.Equal(t, "REAL", d.MapType(model.TypeFloat64))
	assert.Equal(t, "2020-08-30", d.BindDate(time.Date(2020, 8, 30, 0, 0, 0, 0, time.UTC)))
}
