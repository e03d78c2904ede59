package sqlbase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// TableExists 列出当前库的所有表, 判断目标表是否存在
func (d *Driver) TableExists(ctx context.Context) (bool, error) {
	db, err := d.conn()
	if err != nil {
		return false, err
	}

	var tables []string
	if err := db.SelectContext(ctx, &tables, d.dialect.ListTables()); err != nil {
		return false, fmt.Errorf("failed to list tables: %w", err)
	}

	for _, t := range tables {
		if strings.EqualFold(t, d.meta.TableName) {
			return true, nil
		}
	}
	return false, nil
}

// CreateTable 不检查表是否已存在, 重复调用会返回数据库错误
func (d *Driver) CreateTable(ctx context.Context) error {
	db, err := d.conn()
	if err != nil {
		return err
	}

	for _, stmt := range d.dialect.PreCreate(d.meta) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to prepare table %s: %w", d.meta.TableName, err)
		}
	}

	query := d.createTableSQL()
	log.Debug().Str("sql", query).Msg("create table")

	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", d.meta.TableName, err)
	}
	return nil
}

func (d *Driver) createTableSQL() string {
	colDefs := []string{d.dialect.KeyColumn(d.meta)}
	for _, col := range d.meta.Columns {
		colDefs = append(colDefs, fmt.Sprintf("%s %s NOT NULL",
			d.dialect.QuoteIdent(col.Name), d.dialect.MapType(col.Type)))
	}

	return fmt.Sprintf("CREATE TABLE %s (%s)",
		d.dialect.QuoteIdent(d.meta.TableName), strings.Join(colDefs, ", "))
}
