package format

import (
	"errors"
	"fmt"

	"github.com/jing2uo/top100db/model"
)

var (
	ErrDateFormat   = errors.New("invalid date format")
	ErrEmptyValue   = errors.New("empty value")
	ErrNumberFormat = errors.New("invalid number")
)

// DateFormatError 报告无法按 MM/DD/YY 解析的日期
type DateFormatError struct {
	Value string
	Err   error
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("date %q does not match %s", e.Value, SourceDateLayout)
}

func (e *DateFormatError) Unwrap() []error { return []error{ErrDateFormat, e.Err} }

type EmptyValueError struct {
	Field model.FieldID
}

func (e *EmptyValueError) Error() string {
	return fmt.Sprintf("field %s is empty", e.Field)
}

func (e *EmptyValueError) Unwrap() error { return ErrEmptyValue }

type NumberFormatError struct {
	Field model.FieldID
	Value string
	Err   error
}

func (e *NumberFormatError) Error() string {
	return fmt.Sprintf("field %s: %q is not a number", e.Field, e.Value)
}

func (e *NumberFormatError) Unwrap() []error { return []error{ErrNumberFormat, e.Err} }
