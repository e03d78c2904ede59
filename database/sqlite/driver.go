package sqlite

import (
	"net/url"
	"strings"
	"time"

	"github.com/jing2uo/top100db/database/sqlbase"
	"github.com/jing2uo/top100db/model"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteDriver struct {
	*sqlbase.Driver
}

// NewDriver 接受 sqlite://path 形式的地址, path 为空时使用内存库
func NewDriver(u *url.URL, meta *model.TableMeta) *SQLiteDriver {
	return &SQLiteDriver{Driver: sqlbase.New(dialect{}, dsnFromURL(u), meta)}
}

func dsnFromURL(u *url.URL) string {
	path := u.Host + u.Path
	if u.Opaque != "" {
		path = u.Opaque
	}
	if path == "" {
		path = ":memory:"
	}
	if u.RawQuery != "" {
		return "file:" + path + "?" + u.RawQuery
	}
	return path
}

type dialect struct{}

func (dialect) DriverName() string { return "sqlite3" }

func (dialect) MapType(dt model.DataType) string {
	switch dt {
	case model.TypeString:
		return "TEXT"
	case model.TypeFloat64:
		return "REAL"
	case model.TypeInt64:
		return "INTEGER"
	case model.TypeDate:
		return "DATE"
	default:
		return "TEXT"
	}
}

func (d dialect) KeyColumn(meta *model.TableMeta) string {
	return d.QuoteIdent(meta.KeyColumn) + " INTEGER PRIMARY KEY AUTOINCREMENT"
}

func (dialect) PreCreate(*model.TableMeta) []string { return nil }

func (dialect) ListTables() string {
	return "SELECT name FROM sqlite_master WHERE type = 'table'"
}

func (dialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// 以 YYYY-MM-DD 文本保存, 与其他后端保持相同的值
func (dialect) BindDate(t time.Time) any { return t.Format("2006-01-02") }
