package dto

import (
	"bytes"
	"encoding/json"
)

// Field 三态请求字段：未出现 / 显式 null / 有值
// 用于部分更新：未出现的字段保持不变，null 表示清空
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// UnmarshalJSON 仅在字段出现在请求体中时被调用（包括 null）
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		f.Null = true
		return nil
	}
	return json.Unmarshal(b, &f.Value)
}

// Of 构造一个已设置的字段，便于测试与内部调用
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null 构造一个显式 null 的字段
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// StringField 字符串字段
type StringField = Field[string]

// RawField 原始值字段（数字或数字字符串），由服务层做类型转换
type RawField = Field[interface{}]
