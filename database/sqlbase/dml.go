package sqlbase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jing2uo/top100db/model"
	"github.com/rs/zerolog/log"
)

const dateColumn = "time"

// AlreadyLoaded 判断表中是否已有该日期的数据
func (d *Driver) AlreadyLoaded(ctx context.Context, date time.Time) (bool, error) {
	db, err := d.conn()
	if err != nil {
		return false, err
	}

	query := db.Rebind(fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ?",
		d.dialect.QuoteIdent(d.meta.TableName), d.dialect.QuoteIdent(dateColumn)))

	var count int64
	if err := db.GetContext(ctx, &count, query, d.dialect.BindDate(date)); err != nil {
		return false, fmt.Errorf("failed to look up dataset %s: %w", date.Format("2006-01-02"), err)
	}
	return count > 0, nil
}

// InsertRows 在同一个事务里逐行插入, 结束时只提交一次; 任一行失败则整体回滚
func (d *Driver) InsertRows(ctx context.Context, rows []model.TopStock) (int, error) {
	db, err := d.conn()
	if err != nil {
		return 0, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	query := d.insertSQL()
	inserted := 0
	for i := range rows {
		if _, err := tx.NamedExecContext(ctx, query, d.params(&rows[i])); err != nil {
			return 0, fmt.Errorf("failed to insert %s (row %d): %w", rows[i].Symbol, i+1, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit %d rows: %w", inserted, err)
	}

	log.Debug().Int("rows", inserted).Str("table", d.meta.TableName).Msg("committed")
	return inserted, nil
}

// QueryRows 回读数据, date 为 nil 时返回全部
func (d *Driver) QueryRows(ctx context.Context, date *time.Time) ([]model.TopStock, error) {
	db, err := d.conn()
	if err != nil {
		return nil, err
	}

	cols := append([]string{d.meta.KeyColumn}, d.meta.ColumnNames()...)
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = d.dialect.QuoteIdent(c)
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(quoted, ", "), d.dialect.QuoteIdent(d.meta.TableName))
	var args []any
	if date != nil {
		query += fmt.Sprintf(" WHERE %s = ?", d.dialect.QuoteIdent(dateColumn))
		args = append(args, d.dialect.BindDate(*date))
	}
	query += fmt.Sprintf(" ORDER BY %s, %s", d.dialect.QuoteIdent(dateColumn), d.dialect.QuoteIdent(d.meta.KeyColumn))

	var results []model.TopStock
	if err := db.SelectContext(ctx, &results, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", d.meta.TableName, err)
	}
	return results, nil
}

// ReportDates 返回已入库的所有报告日期, 升序
func (d *Driver) ReportDates(ctx context.Context) ([]time.Time, error) {
	db, err := d.conn()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT DISTINCT %s FROM %s ORDER BY %s",
		d.dialect.QuoteIdent(dateColumn), d.dialect.QuoteIdent(d.meta.TableName), d.dialect.QuoteIdent(dateColumn))

	var dates []time.Time
	if err := db.SelectContext(ctx, &dates, query); err != nil {
		return nil, fmt.Errorf("failed to query report dates: %w", err)
	}
	return dates, nil
}

func (d *Driver) insertSQL() string {
	cols := d.meta.ColumnNames()
	quoted := make([]string, len(cols))
	named := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = d.dialect.QuoteIdent(c)
		named[i] = ":" + c
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.dialect.QuoteIdent(d.meta.TableName), strings.Join(quoted, ", "), strings.Join(named, ", "))
}

func (d *Driver) params(row *model.TopStock) map[string]any {
	return map[string]any{
		"name":           row.Name,
		"symbol":         row.Symbol,
		"wtd_alpha":      row.WtdAlpha,
		"curr_rank":      row.CurrRank,
		"prev_rank":      row.PrevRank,
		"last":           row.Last,
		"change_value":   row.ChangeValue,
		"change_percent": row.ChangePercent,
		"high_52w":       row.High52W,
		"low_52w":        row.Low52W,
		"percent_52w":    row.Percent52W,
		"time":           d.dialect.BindDate(row.Time),
	}
}
