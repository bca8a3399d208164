// Package bind turns query strings into validated request structs
package bind

import (
	"errors"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"sync"

	perr "callerverify/internal/platform/errors"
	"callerverify/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// maxPhoneLen bounds the "phone" tag
const maxPhoneLen = 32

type checker struct {
	v     *validator.Validate
	trans ut.Translator
}

// shared is built once, validator caches struct metadata per type
var shared = sync.OnceValue(func() *checker {
	loc := en.New()
	trans, _ := ut.New(loc, loc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(wireName)
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	_ = v.RegisterValidation("phone", isPhone)
	translate(v, trans, "required", "{0} is required")
	translate(v, trans, "phone", "{0} must be a phone number")
	translate(v, trans, "max", "{0} must be at most {1}")
	return &checker{v: v, trans: trans}
})

// ParseQuery fills the string fields of T tagged `query` and validates the result
// a literal '+' stays a plus, so unescaped E.164 numbers survive form decoding
func ParseQuery[T any](r *http.Request) (T, error) {
	var dst T
	vals, err := url.ParseQuery(strings.ReplaceAll(r.URL.RawQuery, "+", "%2B"))
	if err != nil {
		return dst, perr.Newf(perr.ErrorCodeValidation, "invalid query: %v", err)
	}

	rv := reflect.ValueOf(&dst).Elem()
	if rv.Kind() != reflect.Struct {
		return dst, perr.Internalf("bind: %s is not a struct", rv.Type())
	}
	for _, f := range reflect.VisibleFields(rv.Type()) {
		name := f.Tag.Get("query")
		if name == "" || name == "-" || !f.IsExported() || f.Type.Kind() != reflect.String {
			continue
		}
		rv.FieldByIndex(f.Index).SetString(strings.TrimSpace(vals.Get(name)))
	}

	if err := Validate(dst); err != nil {
		var zero T
		return zero, err
	}
	return dst, nil
}

// Validate checks v against its validate tags
// the first failing field becomes a validation error carrying the field name
func Validate(v any) error {
	c := shared()
	err := c.v.Struct(v)
	if err == nil {
		return nil
	}
	var fes validator.ValidationErrors
	if !errors.As(err, &fes) || len(fes) == 0 {
		logger.Get().Error().Err(err).Msg("validator misuse")
		return perr.Validationf("validation error")
	}
	fe := fes[0]
	return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", fe.Translate(c.trans)), fe.Field())
}

// wireName reports a field by its query name, then its json name, then its Go name
func wireName(f reflect.StructField) string {
	for _, key := range []string{"query", "json"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

// isPhone accepts a printable, space free string of at most maxPhoneLen bytes
// format is left to the provider
func isPhone(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" || len(s) > maxPhoneLen {
		return false
	}
	for _, r := range s {
		if r <= ' ' || r > '~' {
			return false
		}
	}
	return true
}

func translate(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
