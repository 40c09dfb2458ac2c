// Package validator 封装 go-playground/validator，输出葡萄牙语字段错误。
package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	ptBRTranslations "github.com/go-playground/validator/v10/translations/pt_BR"
)

// Validator 结构体校验器，字段名取自 json 标签
type Validator struct {
	v     *govalidator.Validate
	trans ut.Translator
}

// New 创建校验器并注册 pt_BR 翻译
func New() *Validator {
	v := govalidator.New(govalidator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	locale := pt_BR.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("pt_BR")
	_ = ptBRTranslations.RegisterDefaultTranslations(v, trans)

	return &Validator{v: v, trans: trans}
}

// Struct 校验整个结构体，返回 字段 → 提示；无错误时返回 nil
func (val *Validator) Struct(s interface{}) map[string]string {
	return val.translate(val.v.Struct(s))
}

// Partial 仅校验指定字段（Go 字段名），用于部分更新
func (val *Validator) Partial(s interface{}, fields ...string) map[string]string {
	if len(fields) == 0 {
		return nil
	}
	return val.translate(val.v.StructPartial(s, fields...))
}

func (val *Validator) translate(err error) map[string]string {
	if err == nil {
		return nil
	}

	var ve govalidator.ValidationErrors
	if !errors.As(err, &ve) {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		if _, ok := fields[fe.Field()]; ok {
			continue
		}
		fields[fe.Field()] = fe.Translate(val.trans)
	}
	return fields
}
