package model

type DBType string

const (
	DBTypeDuckDB   DBType = "duckdb"
	DBTypePostgres DBType = "postgres"
	DBTypeMySQL    DBType = "mysql"
	DBTypeSQLite   DBType = "sqlite"
)

type DBConfig struct {
	Type DBType
	DSN  string
	// Table overrides the destination table name; empty means TableTop100.
	Table string
}
