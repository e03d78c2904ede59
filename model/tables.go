package model

type DataType int

const (
	TypeString DataType = iota
	TypeFloat64
	TypeInt64
	TypeDate // YYYY-MM-DD
)

func (t DataType) String() string {
	switch t {
	case TypeString:
		return "text"
	case TypeFloat64:
		return "float"
	case TypeInt64:
		return "integer"
	case TypeDate:
		return "date"
	default:
		return "unknown"
	}
}

type Column struct {
	Name string
	Type DataType
}

type TableMeta struct {
	TableName string
	// KeyColumn 是自增主键列, 不在 Columns 中
	KeyColumn string
	Columns   []Column
}

// SchemaFromFields 由字段描述生成 TableMeta, 列顺序与 fs 一致
func SchemaFromFields(tableName string, fs []Field) *TableMeta {
	cols := make([]Column, 0, len(fs))
	for _, f := range fs {
		cols = append(cols, Column{Name: f.Column, Type: f.Type})
	}
	return &TableMeta{
		TableName: tableName,
		KeyColumn: "id",
		Columns:   cols,
	}
}

// Named 返回换了表名的副本, name 为空时返回自身
func (m *TableMeta) Named(name string) *TableMeta {
	if name == "" || name == m.TableName {
		return m
	}
	cp := *m
	cp.TableName = name
	cp.Columns = append([]Column(nil), m.Columns...)
	return &cp
}

// ColumnNames 按顺序返回数据列名
func (m *TableMeta) ColumnNames() []string {
	names := make([]string, len(m.Columns))
	for i, c := range m.Columns {
		names[i] = c.Name
	}
	return names
}

// --- 表结构元数据 (TableMeta) ---

var TableTop100 = SchemaFromFields("all_top_100", Fields())
