// Package mapper 读取 top 100 导出文件, 并把源表头映射到规范字段
package mapper

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jing2uo/top100db/model"
	"github.com/jing2uo/top100db/utils"
	"github.com/jszwec/csvutil"
)

var ErrMapping = errors.New("input header does not match the expected columns")

// MappingError 列出表头中缺失的源列
type MappingError struct {
	Source  string
	Missing []string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("%s: missing columns %s", e.Source, strings.Join(e.Missing, ", "))
}

func (e *MappingError) Unwrap() error { return ErrMapping }

// ReadDataset 读取整个文件
func ReadDataset(path string) (*model.Dataset, error) {
	if err := utils.CheckFile(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f, path)
}

// Decode 从 r 解析数据集, source 只用于错误信息
func Decode(r io.Reader, source string) (*model.Dataset, error) {
	cr := csv.NewReader(skipBOM(r))
	cr.FieldsPerRecord = -1 // 尾部说明行的列数与表头不同
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &MappingError{Source: source, Missing: model.Headers()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", source, err)
	}
	header = normalizeHeader(header)

	if missing := missingHeaders(header); len(missing) > 0 {
		return nil, &MappingError{Source: source, Missing: missing}
	}

	dec, err := csvutil.NewDecoder(&paddedReader{r: cr, width: len(header)}, header...)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder for %s: %w", source, err)
	}

	ds := &model.Dataset{Source: source}
	for {
		var rec model.Record
		if err := dec.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to decode %s line %d: %w", source, len(ds.Records)+2, err)
		}
		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// skipBOM 去掉流开头的 UTF-8 BOM, 带引号的首列表头才能被正确解析
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM)) //nolint:errcheck
	}
	return br
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.TrimSpace(h)
	}
	return out
}

func missingHeaders(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	var missing []string
	for _, want := range model.Headers() {
		if !present[want] {
			missing = append(missing, want)
		}
	}
	return missing
}

// paddedReader 把短行补齐到表头宽度, 长行截断
type paddedReader struct {
	r     *csv.Reader
	width int
}

func (p *paddedReader) Read() ([]string, error) {
	rec, err := p.r.Read()
	if err != nil {
		return nil, err
	}
	switch {
	case len(rec) < p.width:
		padded := make([]string, p.width)
		copy(padded, rec)
		return padded, nil
	case len(rec) > p.width:
		return rec[:p.width], nil
	}
	return rec, nil
}
