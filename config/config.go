// Package config 合并配置文件、环境变量和命令行参数。
//
// 优先级从低到高: 默认值 < top100db.yaml < 环境变量 (含 .env) < 命令行参数。
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

const (
	DefaultConfigFile = "top100db.yaml"
	DefaultDB         = "duckdb://top100.duckdb"
	DefaultFile       = ".data/top-100-stocks-to-buy.csv"

	EnvDB    = "TOP100_DB"
	EnvFile  = "TOP100_FILE"
	EnvTable = "TOP100_TABLE"
)

// ConnectionConfig 是 DB 地址的拆分形式, 只在没有给出 db 时使用
type ConnectionConfig struct {
	Type     string `yaml:"type"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port,omitempty"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

type Config struct {
	DB         string           `yaml:"db"`
	File       string           `yaml:"file"`
	Table      string           `yaml:"table"`
	Connection ConnectionConfig `yaml:"connection"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadDotEnv 加载 .env, 文件不存在不算错误; 已有的环境变量不会被覆盖
func LoadDotEnv(paths ...string) {
	_ = godotenv.Load(paths...)
}

// Resolve 在 file 之上叠加环境变量并补齐默认值, file 可以为 nil
func Resolve(file *Config, lookup func(string) (string, bool)) Config {
	var cfg Config
	if file != nil {
		cfg = *file
	}
	if cfg.DB == "" {
		cfg.DB = cfg.Connection.DSN()
	}

	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvDB); ok && v != "" {
		cfg.DB = v
	}
	if v, ok := lookup(EnvFile); ok && v != "" {
		cfg.File = v
	}
	if v, ok := lookup(EnvTable); ok && v != "" {
		cfg.Table = v
	}

	if cfg.DB == "" {
		cfg.DB = DefaultDB
	}
	if cfg.File == "" {
		cfg.File = DefaultFile
	}
	return cfg
}

// DSN 由拆分的连接参数拼出数据库地址, Type 为空时返回空串
func (c ConnectionConfig) DSN() string {
	if c.Type == "" {
		return ""
	}

	switch c.Type {
	case "duckdb", "sqlite", "sqlite3":
		return c.Type + "://" + c.Database
	}

	u := url.URL{Scheme: c.Type}

	u.Host = c.Host
	if c.Port != 0 {
		u.Host += ":" + strconv.Itoa(c.Port)
	}
	if c.User != "" {
		if c.Password != "" {
			u.User = url.UserPassword(c.User, c.Password)
		} else {
			u.User = url.User(c.User)
		}
	}
	u.Path = "/" + c.Database
	return u.String()
}
