package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jing2uo/top100db/format"
	"github.com/jing2uo/top100db/loader"
	"github.com/jing2uo/top100db/mapper"
	"github.com/jing2uo/top100db/model"
	"github.com/olekukonko/tablewriter"
)

// Symbols 输出文件中每条记录的 "代码 - 名称"
func Symbols(w io.Writer, file string) error {
	ds, err := mapper.ReadDataset(file)
	if err != nil {
		return err
	}

	symbol := color.New(color.FgCyan, color.Bold)
	for _, rec := range ds.Records {
		if loader.IsFooterMarker(rec.Symbol) {
			break
		}
		symbol.Fprint(w, rec.Symbol)
		fmt.Fprintf(w, " - %s\n", rec.Name)
	}
	return nil
}

// Dump 以表格形式输出文件内容, literal 为 true 时输出 SQL 字面量
func Dump(w io.Writer, file string, literal bool) error {
	ds, err := mapper.ReadDataset(file)
	if err != nil {
		return err
	}

	fields := model.Fields()
	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = f.Column
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)

	for _, rec := range ds.Records {
		if loader.IsFooterMarker(rec.Symbol) {
			break
		}
		row := rec.Values()
		if literal {
			for i, f := range fields {
				v, err := format.Literal(f.ID, row[i])
				if err != nil {
					return fmt.Errorf("record %s: %w", rec.Symbol, err)
				}
				row[i] = v
			}
		}
		table.Append(row)
	}
	table.Render()
	return nil
}

// Dates 列出库中已有的报告日期
func Dates(ctx context.Context, w io.Writer, opts Options) error {
	db, err := openDB(ctx, opts)
	if err != nil {
		return err
	}
	defer closeDB(db)

	exists, err := db.TableExists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		color.New(color.FgYellow).Fprintf(w, "table %s does not exist\n", db.Table().TableName)
		return nil
	}

	dates, err := db.ReportDates(ctx)
	if err != nil {
		return err
	}
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(format.SQLDateLayout)
	}
	if len(out) > 0 {
		fmt.Fprintln(w, strings.Join(out, "\n"))
	}
	return nil
}
