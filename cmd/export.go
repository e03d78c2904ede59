package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/jing2uo/top100db/format"
	"github.com/jing2uo/top100db/model"
	"github.com/jing2uo/top100db/utils"
	"github.com/rs/zerolog/log"
)

const (
	ExportParquet = "parquet"
	ExportCSV     = "csv"
)

// ExportOptions 控制导出格式和范围, Date 为空时导出全部日期
type ExportOptions struct {
	OutputDir string
	Format    string
	Date      string
}

// Export 把表中数据回读并写成 parquet 或 csv 文件, 返回输出路径
func Export(ctx context.Context, opts Options, eo ExportOptions) (string, error) {
	start := time.Now()

	if eo.Format == "" {
		eo.Format = ExportParquet
	}
	if eo.Format != ExportParquet && eo.Format != ExportCSV {
		return "", fmt.Errorf("unsupported export format %q (want %s or %s)", eo.Format, ExportParquet, ExportCSV)
	}

	var date *time.Time
	if eo.Date != "" {
		d, err := time.Parse(format.SQLDateLayout, eo.Date)
		if err != nil {
			return "", fmt.Errorf("invalid --date %q, use YYYY-MM-DD: %w", eo.Date, err)
		}
		date = &d
	}

	if err := utils.CheckOutputDir(eo.OutputDir); err != nil {
		return "", err
	}

	db, err := openDB(ctx, opts)
	if err != nil {
		return "", err
	}
	defer closeDB(db)

	rows, err := db.QueryRows(ctx, date)
	if err != nil {
		return "", fmt.Errorf("failed to query rows: %w", err)
	}

	name := db.Table().TableName
	if eo.Date != "" {
		name += "_" + eo.Date
	}
	path := filepath.Join(eo.OutputDir, name+"."+eo.Format)

	switch eo.Format {
	case ExportCSV:
		err = writeCSV(path, rows)
	default:
		err = writeParquet(path, rows)
	}
	if err != nil {
		return "", err
	}

	log.Info().
		Str("path", path).
		Int("rows", len(rows)).
		Dur("elapsed", time.Since(start)).
		Msg("✅ export finished")
	return path, nil
}

func writeCSV(path string, rows []model.TopStock) error {
	w, err := utils.CreateCSVWriter[model.TopStock](path)
	if err != nil {
		return err
	}
	if err := w.Write(rows); err != nil {
		w.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return w.Close()
}

func writeParquet(path string, rows []model.TopStock) error {
	w, err := utils.CreateParquetWriter[model.TopStock](path)
	if err != nil {
		return err
	}
	if err := w.Write(rows); err != nil {
		w.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return w.Close()
}
