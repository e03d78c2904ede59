package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"time"
)

// CSVWriter 按 col 标签把结构体切片写成 CSV
type CSVWriter[T any] struct {
	closer        io.Closer
	writer        *csv.Writer
	headerWritten bool
	columns       []columnInfo
}

type columnInfo struct {
	Index      int    // 字段索引
	HeaderName string // CSV 表头 (来自 col 标签)
	IsTime     bool
	IsDateType bool // 标记了 type:"date", 输出 YYYY-MM-DD
}

// CreateCSVWriter 创建文件并返回写入器
func CreateCSVWriter[T any](filename string) (*CSVWriter[T], error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	cw, err := NewCSVWriter[T](f)
	if err != nil {
		f.Close()
		return nil, err
	}
	cw.closer = f
	return cw, nil
}

// NewCSVWriter 写入任意 io.Writer, Close 不会关闭 w
func NewCSVWriter[T any](w io.Writer) (*CSVWriter[T], error) {
	cols, err := analyzeStructTags[T]()
	if err != nil {
		return nil, err
	}
	return &CSVWriter[T]{writer: csv.NewWriter(w), columns: cols}, nil
}

func analyzeStructTags[T any]() ([]columnInfo, error) {
	var t T
	typ := reflect.TypeOf(t)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("generic type T must be a struct")
	}

	var cols []columnInfo
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		colTag := field.Tag.Get("col")
		if colTag == "-" || !field.IsExported() {
			continue
		}
		if colTag == "" {
			colTag = field.Name
		}

		cols = append(cols, columnInfo{
			Index:      i,
			HeaderName: colTag,
			IsTime:     field.Type == reflect.TypeOf(time.Time{}),
			IsDateType: field.Tag.Get("type") == "date",
		})
	}
	return cols, nil
}

func (cw *CSVWriter[T]) Write(data []T) error {
	if !cw.headerWritten {
		headers := make([]string, len(cw.columns))
		for i, col := range cw.columns {
			headers[i] = col.HeaderName
		}
		if err := cw.writer.Write(headers); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		cw.headerWritten = true
	}

	record := make([]string, len(cw.columns))
	for _, item := range data {
		val := reflect.ValueOf(item)
		if val.Kind() == reflect.Ptr {
			val = val.Elem()
		}

		for i, col := range cw.columns {
			record[i] = formatField(val.Field(col.Index), col)
		}

		if err := cw.writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	return nil
}

func formatField(v reflect.Value, col columnInfo) string {
	if col.IsTime {
		t := v.Interface().(time.Time)
		switch {
		case t.IsZero():
			return ""
		case col.IsDateType:
			return t.Format("2006-01-02")
		default:
			return t.Format(time.RFC3339)
		}
	}

	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.String:
		return v.String()
	default:
		return fmt.Sprint(v.Interface())
	}
}

func (cw *CSVWriter[T]) Close() error {
	cw.writer.Flush()
	if err := cw.writer.Error(); err != nil {
		if cw.closer != nil {
			cw.closer.Close()
		}
		return fmt.Errorf("failed to flush: %w", err)
	}
	if cw.closer != nil {
		return cw.closer.Close()
	}
	return nil
}
