package service

import (
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"

	"github.com/FelipeSantos92Dev/senai-2025-2/internal/dto"
	pkgerrors "github.com/FelipeSantos92Dev/senai-2025-2/pkg/errors"
)

const (
	msgNotInteger = "deve ser um número inteiro"
	msgOutOfRange = "valor fora do intervalo permitido"
	msgBadDate    = "data inválida, use RFC 3339 ou AAAA-MM-DD"
	msgBadStatus  = "status inválido"
)

var integerPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)

var (
	errNotInteger = errors.New(msgNotInteger)
	errOutOfRange = errors.New(msgOutOfRange)
)

// toInt 将数字或数字字符串转换为 int
// present=false 表示值为空（nil 或空白字符串）
func toInt(v interface{}) (n int, present bool, err error) {
	switch val := v.(type) {
	case nil:
		return 0, false, nil
	case bool:
		return 0, true, errNotInteger
	case string:
		return parseIntString(val)
	case json.Number:
		return parseIntString(val.String())
	case float64:
		if math.Trunc(val) != val || math.IsInf(val, 0) {
			return 0, true, errNotInteger
		}
		if math.Abs(val) > math.MaxInt32 {
			return 0, true, errOutOfRange
		}
		return cast.ToInt(val), true, nil
	}

	n64, err := cast.ToInt64E(v)
	if err != nil {
		return 0, true, errNotInteger
	}
	if n64 > math.MaxInt32 || n64 < math.MinInt32 {
		return 0, true, errOutOfRange
	}
	return int(n64), true, nil
}

func parseIntString(s string) (int, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	if !integerPattern.MatchString(s) {
		return 0, true, errNotInteger
	}

	// 去掉前导零，避免被按八进制解析
	sign := ""
	if s[0] == '+' || s[0] == '-' {
		sign, s = s[:1], s[1:]
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		s = "0"
	}
	if len(s) > 10 {
		return 0, true, errOutOfRange
	}

	n64, err := cast.ToInt64E(sign + s)
	if err != nil {
		return 0, true, errNotInteger
	}
	if n64 > math.MaxInt32 || n64 < math.MinInt32 {
		return 0, true, errOutOfRange
	}
	return int(n64), true, nil
}

// parseDate 解析 RFC 3339 时间戳或 YYYY-MM-DD 日期，统一转为 UTC
// 不带时区的输入按 UTC 处理
func parseDate(s string) (time.Time, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, nil
	}
	t, err := cast.ToTimeInDefaultLocationE(s, time.UTC)
	if err != nil {
		return time.Time{}, true, err
	}
	return t.UTC(), true, nil
}

// optionalString 去除首尾空白，空字符串视为未提供
func optionalString(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

// formatTime 统一输出 RFC 3339（UTC，保留小数秒）
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// isRecordID 主键均为标准 36 位 UUID，格式不符的 id 不可能对应任何记录
func isRecordID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// ── 部分更新 ──

// patch 收集部分更新中被修改的字段（Go 字段名）与转换错误
type patch struct {
	verr   *pkgerrors.ValidationError
	fields []string
}

func newPatch() *patch {
	return &patch{verr: pkgerrors.NewValidationError()}
}

func (p *patch) touch(name string) {
	p.fields = append(p.fields, name)
}

// str 必填字符串：null 置空后由校验器报告缺失
func (p *patch) str(dst *string, f dto.StringField, name string) {
	if !f.Set {
		return
	}
	*dst = ""
	if !f.Null {
		*dst = strings.TrimSpace(f.Value)
	}
	p.touch(name)
}

// optStr 可选字符串：null 或空白表示清空
func (p *patch) optStr(dst **string, f dto.StringField, name string) {
	if !f.Set {
		return
	}
	if f.Null {
		*dst = nil
	} else {
		*dst = optionalString(&f.Value)
	}
	p.touch(name)
}

// integer 非空整数：null 或空白置为 0
func (p *patch) integer(dst *int, f dto.RawField, name, jsonName string) {
	if !f.Set {
		return
	}
	n, _, err := toInt(f.Value)
	if err != nil {
		p.verr.Add(jsonName, err.Error())
		return
	}
	*dst = n
	p.touch(name)
}

// optInt 可选整数：null 或空白表示清空
func (p *patch) optInt(dst **int, f dto.RawField, name, jsonName string) {
	if !f.Set {
		return
	}
	n, present, err := toInt(f.Value)
	if err != nil {
		p.verr.Add(jsonName, err.Error())
		return
	}
	if present {
		*dst = &n
	} else {
		*dst = nil
	}
	p.touch(name)
}

// date 必填日期：null 或空白置为零值后由校验器报告缺失
func (p *patch) date(dst *time.Time, f dto.StringField, name, jsonName string) {
	if !f.Set {
		return
	}
	t, _, err := parseDate(f.Value)
	if err != nil {
		p.verr.Add(jsonName, msgBadDate)
		return
	}
	*dst = t
	p.touch(name)
}
