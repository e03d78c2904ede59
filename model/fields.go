package model

// FieldID 标识 top 100 导出文件中的一个规范字段
type FieldID int

const (
	FieldName FieldID = iota
	FieldSymbol
	FieldWtdAlpha
	FieldCurrRank
	FieldPrevRank
	FieldLast
	FieldChangeValue
	FieldChangePercent
	FieldHigh52W
	FieldLow52W
	FieldPercent52W
	FieldTime

	fieldCount
)

// Field 描述一个字段: 表列名、CSV 表头、语义类型以及是否按字符串字面量输出
type Field struct {
	ID     FieldID
	Column string
	Header string
	Type   DataType
	Quoted bool
}

// 顺序即目标表的列顺序
var fields = [fieldCount]Field{
	FieldName:          {ID: FieldName, Column: "name", Header: "Name", Type: TypeString, Quoted: true},
	FieldSymbol:        {ID: FieldSymbol, Column: "symbol", Header: "Symbol", Type: TypeString, Quoted: true},
	FieldWtdAlpha:      {ID: FieldWtdAlpha, Column: "wtd_alpha", Header: "Wtd Alpha", Type: TypeFloat64},
	FieldCurrRank:      {ID: FieldCurrRank, Column: "curr_rank", Header: "Rank", Type: TypeInt64},
	FieldPrevRank:      {ID: FieldPrevRank, Column: "prev_rank", Header: "Prev Rank", Type: TypeInt64},
	FieldLast:          {ID: FieldLast, Column: "last", Header: "Last", Type: TypeFloat64},
	FieldChangeValue:   {ID: FieldChangeValue, Column: "change_value", Header: "Change", Type: TypeFloat64},
	FieldChangePercent: {ID: FieldChangePercent, Column: "change_percent", Header: "%Chg", Type: TypeFloat64},
	FieldHigh52W:       {ID: FieldHigh52W, Column: "high_52w", Header: "52W High", Type: TypeFloat64},
	FieldLow52W:        {ID: FieldLow52W, Column: "low_52w", Header: "52W Low", Type: TypeFloat64},
	FieldPercent52W:    {ID: FieldPercent52W, Column: "percent_52w", Header: "52W %Chg", Type: TypeInt64},
	FieldTime:          {ID: FieldTime, Column: "time", Header: "Time", Type: TypeDate, Quoted: true},
}

// Fields 按表列顺序返回全部字段描述
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields[:])
	return out
}

// Lookup 返回字段描述, id 越界时 ok 为 false
func Lookup(id FieldID) (Field, bool) {
	if id < 0 || id >= fieldCount {
		return Field{}, false
	}
	return fields[id], true
}

func (id FieldID) Field() Field {
	f, _ := Lookup(id)
	return f
}

func (id FieldID) String() string {
	if f, ok := Lookup(id); ok {
		return f.Column
	}
	return "unknown"
}

// Headers 返回输入文件必须包含的全部表头
func Headers() []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Header)
	}
	return out
}
