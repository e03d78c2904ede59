// Package loader 把一个数据集幂等地写入目标表。
//
// 同一报告日期的数据只会导入一次: 导入前先按首行日期查询目标表,
// 已存在则不做任何修改。所有行在同一个事务中插入, 遇到尾部说明行即停止。
package loader

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jing2uo/top100db/format"
	"github.com/jing2uo/top100db/model"
	"github.com/rs/zerolog/log"
)

// FooterMarker 出现在导出文件最后一行的 Symbol 列中, 标志数据结束
const FooterMarker = "Downloaded from"

var (
	ErrEmptyDataset  = errors.New("dataset has no records")
	ErrInvalidRecord = errors.New("invalid record")
)

type Outcome string

const (
	OutcomeLoaded        Outcome = "loaded"
	OutcomeAlreadyLoaded Outcome = "already loaded"
)

type Result struct {
	Outcome  Outcome
	Date     time.Time
	Inserted int
	// Skipped 是尾部说明行及其之后被丢弃的行数
	Skipped int
}

func (r *Result) String() string {
	if r.Outcome == OutcomeAlreadyLoaded {
		return fmt.Sprintf("dataset %s already loaded", r.Date.Format(format.SQLDateLayout))
	}
	return fmt.Sprintf("dataset %s loaded: %d rows", r.Date.Format(format.SQLDateLayout), r.Inserted)
}

// Store 是 Loader 需要的那部分数据库能力
type Store interface {
	AlreadyLoaded(ctx context.Context, date time.Time) (bool, error)
	InsertRows(ctx context.Context, rows []model.TopStock) (int, error)
}

type Loader struct {
	store    Store
	validate *validator.Validate
}

func New(store Store) *Loader {
	return &Loader{store: store, validate: validator.New()}
}

// IsFooterMarker 判断 symbol 是否为尾部说明行
func IsFooterMarker(symbol string) bool {
	return strings.Contains(symbol, FooterMarker)
}

// ReportDate 取第一条记录的日期作为整个数据集的报告日期
func ReportDate(ds *model.Dataset) (time.Time, error) {
	if ds.Len() == 0 {
		return time.Time{}, ErrEmptyDataset
	}
	date, err := format.ReportDate(ds.Records[0].Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to determine report date: %w", err)
	}
	return date, nil
}

// Rows 转换尾部说明行之前的全部记录, 返回转换结果和被丢弃的行数
func (l *Loader) Rows(ds *model.Dataset) ([]model.TopStock, int, error) {
	rows := make([]model.TopStock, 0, ds.Len())
	for i, rec := range ds.Records {
		if IsFooterMarker(rec.Symbol) {
			return rows, ds.Len() - i, nil
		}

		row, err := format.Row(rec)
		if err != nil {
			return nil, 0, fmt.Errorf("record %d (%s): %w", i+1, rec.Symbol, err)
		}
		if err := l.validate.Struct(row); err != nil {
			return nil, 0, fmt.Errorf("%w: record %d (%s): %v", ErrInvalidRecord, i+1, rec.Symbol, err)
		}
		rows = append(rows, row)
	}
	return rows, 0, nil
}

func (l *Loader) Load(ctx context.Context, ds *model.Dataset) (*Result, error) {
	date, err := ReportDate(ds)
	if err != nil {
		return nil, err
	}
	logger := log.With().Str("date", date.Format(format.SQLDateLayout)).Str("source", ds.Source).Logger()

	loaded, err := l.store.AlreadyLoaded(ctx, date)
	if err != nil {
		return nil, err
	}
	if loaded {
		logger.Info().Msg("🌲 dataset already in database")
		return &Result{Outcome: OutcomeAlreadyLoaded, Date: date}, nil
	}

	rows, skipped, err := l.Rows(ds)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		logger.Debug().Int("skipped", skipped).Msg("footer reached")
	}

	inserted, err := l.store.InsertRows(ctx, rows)
	if err != nil {
		return nil, err
	}

	logger.Info().Int("rows", inserted).Msg("✅ dataset added to database")
	return &Result{Outcome: OutcomeLoaded, Date: date, Inserted: inserted, Skipped: skipped}, nil
}
