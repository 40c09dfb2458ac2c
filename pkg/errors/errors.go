// Package errors 定义服务层与 HTTP 层共享的领域错误类型。
//
// 服务层只返回三类错误：*ValidationError、*NotFoundError 以及其余基础设施错误；
// 处理器通过 errors.Is / errors.As 区分它们并映射到 400 / 404 / 500。
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrValidation 输入校验失败的哨兵错误
	ErrValidation = errors.New("validation error")
	// ErrNotFound 目标或引用记录不存在的哨兵错误
	ErrNotFound = errors.New("not found")
	// ErrInternal 基础设施（数据库、网络等）失败的哨兵错误
	ErrInternal = errors.New("internal error")
)

// ── ValidationError ──

// ValidationError 输入校验错误，Fields 为 字段名 → 原因
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError 创建空的校验错误，调用方通过 Add 追加字段
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add 记录一个非法字段；同一字段只保留第一条原因
func (e *ValidationError) Add(field, reason string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; ok {
		return
	}
	e.Fields[field] = reason
}

// Merge 合并另一组字段错误
func (e *ValidationError) Merge(fields map[string]string) {
	for f, r := range fields {
		e.Add(f, r)
	}
}

// HasErrors 是否存在字段错误
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// OrNil 无字段错误时返回 nil，便于 `return verr.OrNil()`
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// Is 支持 errors.Is(err, ErrValidation)
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ── NotFoundError ──

// NotFoundError 记录不存在；Entity 为实体名，Message 为面向用户的提示
type NotFoundError struct {
	Entity  string
	Message string
}

// NewNotFound 创建指定实体的不存在错误
func NewNotFound(entity, message string) *NotFoundError {
	return &NotFoundError{Entity: entity, Message: message}
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// Is 支持 errors.Is(err, ErrNotFound)，以及同实体 NotFoundError 之间的比较
func (e *NotFoundError) Is(target error) bool {
	if target == ErrNotFound {
		return true
	}
	var other *NotFoundError
	if errors.As(target, &other) {
		return other.Entity == e.Entity
	}
	return false
}

// ── 基础设施错误 ──

// internalError 包装底层错误，对外只暴露 ErrInternal
type internalError struct {
	op  string
	err error
}

// Internal 将基础设施错误包装为内部错误，op 描述失败的操作
func Internal(op string, err error) error {
	if err == nil {
		return nil
	}
	return &internalError{op: op, err: err}
}

func (e *internalError) Error() string {
	return fmt.Sprintf("%s: %v", e.op, e.err)
}

func (e *internalError) Unwrap() error { return e.err }

func (e *internalError) Is(target error) bool { return target == ErrInternal }
