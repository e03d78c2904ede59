package duckdb

import (
	"net/url"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/jing2uo/top100db/database/sqlbase"
	"github.com/jing2uo/top100db/model"
	"github.com/jmoiron/sqlx"
)

func init() {
	sqlx.BindDriver("duckdb", sqlx.QUESTION)
}

type DuckDBDriver struct {
	*sqlbase.Driver
}

// NewDriver 接受 duckdb://path 形式的地址, path 为空时使用内存库
func NewDriver(u *url.URL, meta *model.TableMeta) *DuckDBDriver {
	return &DuckDBDriver{Driver: sqlbase.New(dialect{}, dsnFromURL(u), meta)}
}

func dsnFromURL(u *url.URL) string {
	path := u.Host + u.Path
	if u.Opaque != "" {
		path = u.Opaque
	}
	path = strings.TrimPrefix(path, "//")
	if path == ":memory:" {
		return ""
	}
	if u.RawQuery != "" {
		return path + "?" + u.RawQuery
	}
	return path
}
