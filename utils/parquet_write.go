package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
)

type ParquetWriter[T any] struct {
	closer io.Closer
	writer *parquet.GenericWriter[T]
}

// CreateParquetWriter 创建文件并返回写入器, options 追加在默认配置之后
func CreateParquetWriter[T any](filename string, options ...parquet.WriterOption) (*ParquetWriter[T], error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	pw := NewParquetWriter[T](f, options...)
	pw.closer = f
	return pw, nil
}

// NewParquetWriter 写入任意 io.Writer, Close 不会关闭 w
func NewParquetWriter[T any](w io.Writer, options ...parquet.WriterOption) *ParquetWriter[T] {
	// 单个数据集只有百行左右, 不需要大缓冲
	defaultOpts := []parquet.WriterOption{
		parquet.Compression(&parquet.Snappy),
		parquet.PageBufferSize(64 * 1024),
	}
	finalOpts := append(defaultOpts, options...)

	return &ParquetWriter[T]{writer: parquet.NewGenericWriter[T](w, finalOpts...)}
}

func (p *ParquetWriter[T]) Write(data []T) error {
	_, err := p.writer.Write(data)
	return err
}

// Close 先写入 footer 再关闭文件
func (p *ParquetWriter[T]) Close() error {
	if err := p.writer.Close(); err != nil {
		if p.closer != nil {
			p.closer.Close()
		}
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}

	if p.closer != nil {
		if err := p.closer.Close(); err != nil {
			return fmt.Errorf("failed to close file: %w", err)
		}
	}

	return nil
}
