// Package format 把导出文件中的原始文本转换为 SQL 字面量或强类型的绑定参数。
//
// 两条路径共用同一套清洗规则:
//  1. 去掉千分位逗号
//  2. 日期字段按 MM/DD/YY 解析, 输出 YYYY-MM-DD
//  3. prev_rank 为空时取 0
//  4. 文本与日期字段加双引号
//  5. 去掉末尾的百分号
//  6. 其余数值字段为空时返回 EmptyValueError
//
// Literal 用于展示和调试, 入库时使用 Value / Row 得到的参数绑定值。
package format

import (
	"strings"
	"time"

	"github.com/jing2uo/top100db/model"
	"github.com/shopspring/decimal"
)

const (
	// SourceDateLayout 是导出文件 Time 列的格式 (MM/DD/YY)
	SourceDateLayout = "01/02/06"
	// SQLDateLayout 是入库日期格式 (YYYY-MM-DD)
	SQLDateLayout = "2006-01-02"

	// 月、日允许一位数字
	parseDateLayout = "1/2/06"
)

// Literal 返回 raw 在 SQL 语句中的字面量形式
func Literal(id model.FieldID, raw string) (string, error) {
	value := strip(raw)
	field := id.Field()

	if id == model.FieldTime {
		t, err := ReportDate(value)
		if err != nil {
			return "", err
		}
		value = t.Format(SQLDateLayout)
	}

	if id == model.FieldPrevRank && value == "" {
		return "0", nil
	}

	if field.Quoted {
		return quote(value), nil
	}

	value = strings.TrimSuffix(value, "%")
	if value == "" {
		return "", &EmptyValueError{Field: id}
	}
	return value, nil
}

// ReportDate 把 MM/DD/YY 解析为 UTC 零点的日期
func ReportDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	t, err := time.Parse(parseDateLayout, value)
	if err != nil {
		return time.Time{}, &DateFormatError{Value: value, Err: err}
	}
	return t, nil
}

// Value 返回 raw 在目标列上的强类型值:
// 文本为 string, 浮点为 float64, 整数为 int64, 日期为 time.Time
func Value(id model.FieldID, raw string) (any, error) {
	value := strip(raw)
	field := id.Field()

	switch field.Type {
	case model.TypeDate:
		return ReportDate(value)
	case model.TypeString:
		return value, nil
	}

	value = strings.TrimSuffix(value, "%")
	if value == "" {
		if id == model.FieldPrevRank {
			return int64(0), nil
		}
		return nil, &EmptyValueError{Field: id}
	}

	d, err := decimal.NewFromString(strings.TrimPrefix(value, "+"))
	if err != nil {
		return nil, &NumberFormatError{Field: id, Value: raw, Err: err}
	}

	if field.Type == model.TypeInt64 {
		return d.Round(0).IntPart(), nil
	}
	return d.InexactFloat64(), nil
}

// Row 把一条记录整体转换为 TopStock, 遇到第一个无法转换的字段即返回错误
func Row(rec model.Record) (model.TopStock, error) {
	v := make(map[model.FieldID]any, len(model.Fields()))
	for _, f := range model.Fields() {
		val, err := Value(f.ID, rec.Get(f.ID))
		if err != nil {
			return model.TopStock{}, err
		}
		v[f.ID] = val
	}

	return model.TopStock{
		Name:          v[model.FieldName].(string),
		Symbol:        v[model.FieldSymbol].(string),
		WtdAlpha:      v[model.FieldWtdAlpha].(float64),
		CurrRank:      v[model.FieldCurrRank].(int64),
		PrevRank:      v[model.FieldPrevRank].(int64),
		Last:          v[model.FieldLast].(float64),
		ChangeValue:   v[model.FieldChangeValue].(float64),
		ChangePercent: v[model.FieldChangePercent].(float64),
		High52W:       v[model.FieldHigh52W].(float64),
		Low52W:        v[model.FieldLow52W].(float64),
		Percent52W:    v[model.FieldPercent52W].(int64),
		Time:          v[model.FieldTime].(time.Time),
	}, nil
}

func strip(raw string) string {
	return strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
}

func quote(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `"`, `""`)
	return `"` + value + `"`
}
