package duckdb

import (
	"fmt"
	"strings"
	"time"

	"github.com/jing2uo/top100db/model"
)

type dialect struct{}

func (dialect) DriverName() string { return "duckdb" }

// MapType 将通用 DataType 转换为 DuckDB 的 SQL 类型
func (dialect) MapType(dt model.DataType) string {
	switch dt {
	case model.TypeString:
		return "VARCHAR"
	case model.TypeFloat64:
		return "DOUBLE"
	case model.TypeInt64:
		return "BIGINT"
	case model.TypeDate:
		return "DATE"
	default:
		return "VARCHAR"
	}
}

// DuckDB 没有 AUTO_INCREMENT, 自增主键依赖序列
func (d dialect) KeyColumn(meta *model.TableMeta) string {
	return fmt.Sprintf("%s BIGINT PRIMARY KEY DEFAULT nextval('%s')",
		d.QuoteIdent(meta.KeyColumn), strings.ReplaceAll(d.QuoteIdent(sequenceName(meta)), "'", "''"))
}

func (d dialect) PreCreate(meta *model.TableMeta) []string {
	return []string{fmt.Sprintf("CREATE SEQUENCE IF NOT EXISTS %s START 1", d.QuoteIdent(sequenceName(meta)))}
}

func (dialect) ListTables() string {
	// 只看未限定表名解析到的 schema
	return "SELECT table_name FROM information_schema.tables " +
		"WHERE table_type = 'BASE TABLE' AND table_catalog = current_database() AND table_schema = current_schema()"
}

func (dialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (dialect) BindDate(t time.Time) any { return t }

func sequenceName(meta *model.TableMeta) string {
	return meta.TableName + "_id_seq"
}
