package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrInputNotFound 表示输入文件不存在
var ErrInputNotFound = errors.New("input file does not exist")

// CheckFile 确认 path 是一个可读的普通文件
func CheckFile(path string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrInputNotFound, path)
	case err != nil:
		return fmt.Errorf("could not stat %s: %w", path, err)
	case !info.Mode().IsRegular():
		return fmt.Errorf("the specified path %s is not a file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}
	return f.Close()
}

// CheckOutputDir 确认导出目录可写, 不存在时逐级创建
func CheckOutputDir(path string) error {
	if path == "" {
		return fmt.Errorf("output directory is required")
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("could not create output directory %s: %w", path, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not access output directory %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("the specified output path is not a directory: %s", path)
	}

	probe, err := os.CreateTemp(path, ".top100db-")
	if err != nil {
		return fmt.Errorf("output directory %s is not writable: %w", path, err)
	}
	probe.Close()
	return os.Remove(probe.Name())
}
