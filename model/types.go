package model

import "time"

// Record 是导出文件中的一行原始文本, 字段已换成规范名
type Record struct {
	Name          string `csv:"Name"`
	Symbol        string `csv:"Symbol"`
	WtdAlpha      string `csv:"Wtd Alpha"`
	CurrRank      string `csv:"Rank"`
	PrevRank      string `csv:"Prev Rank"`
	Last          string `csv:"Last"`
	ChangeValue   string `csv:"Change"`
	ChangePercent string `csv:"%Chg"`
	High52W       string `csv:"52W High"`
	Low52W        string `csv:"52W Low"`
	Percent52W    string `csv:"52W %Chg"`
	Time          string `csv:"Time"`
}

func (r *Record) Get(id FieldID) string {
	switch id {
	case FieldName:
		return r.Name
	case FieldSymbol:
		return r.Symbol
	case FieldWtdAlpha:
		return r.WtdAlpha
	case FieldCurrRank:
		return r.CurrRank
	case FieldPrevRank:
		return r.PrevRank
	case FieldLast:
		return r.Last
	case FieldChangeValue:
		return r.ChangeValue
	case FieldChangePercent:
		return r.ChangePercent
	case FieldHigh52W:
		return r.High52W
	case FieldLow52W:
		return r.Low52W
	case FieldPercent52W:
		return r.Percent52W
	case FieldTime:
		return r.Time
	default:
		return ""
	}
}

// Values 按表列顺序返回原始值
func (r *Record) Values() []string {
	fs := Fields()
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = r.Get(f.ID)
	}
	return out
}

// Dataset 是一次读取的全部记录, 顺序与文件一致
type Dataset struct {
	Source  string
	Records []Record
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// TopStock 是一条记录转换后的强类型形式, 用于参数绑定和回读
type TopStock struct {
	ID            int64     `db:"id"             parquet:"id"             col:"id"`
	Name          string    `db:"name"           parquet:"name"           col:"name"           validate:"required"`
	Symbol        string    `db:"symbol"         parquet:"symbol,dict"    col:"symbol"         validate:"required"`
	WtdAlpha      float64   `db:"wtd_alpha"      parquet:"wtd_alpha"      col:"wtd_alpha"`
	CurrRank      int64     `db:"curr_rank"      parquet:"curr_rank"      col:"curr_rank"`
	PrevRank      int64     `db:"prev_rank"      parquet:"prev_rank"      col:"prev_rank"`
	Last          float64   `db:"last"           parquet:"last"           col:"last"`
	ChangeValue   float64   `db:"change_value"   parquet:"change_value"   col:"change_value"`
	ChangePercent float64   `db:"change_percent" parquet:"change_percent" col:"change_percent"`
	High52W       float64   `db:"high_52w"       parquet:"high_52w"       col:"high_52w"`
	Low52W        float64   `db:"low_52w"        parquet:"low_52w"        col:"low_52w"`
	Percent52W    int64     `db:"percent_52w"    parquet:"percent_52w"    col:"percent_52w"`
	Time          time.Time `db:"time"           parquet:"time"           col:"time"           type:"date" validate:"required"`
}
