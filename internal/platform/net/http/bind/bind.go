// Package bind decodes request bodies and validates them with struct tags
// Validation messages are English and name fields by their json tag
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "stockcount/internal/platform/errors"
	"stockcount/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldLevel aliases validator.FieldLevel for custom tags
type FieldLevel = validator.FieldLevel

// ValidatorSvc pairs the validator with its English translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	svcOnce sync.Once
	svc     *ValidatorSvc

	jsonMore = func(dec *json.Decoder) bool { return dec.More() }
)

// Get returns the process wide validator
func Get() *ValidatorSvc {
	svcOnce.Do(func() {
		loc := en.New()
		trans, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		svc = &ValidatorSvc{Validator: v, Translator: trans}
		// the stock min/max texts talk about characters or items, quantities read better this way
		_ = svc.translate("min", "{0} must be at least {1}")
		_ = svc.translate("max", "{0} must be at most {1}")
	})
	return svc
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// translate installs msg for tag, {0} is the field and {1} the tag param
func (s *ValidatorSvc) translate(tag, msg string) error {
	return s.Validator.RegisterTranslation(tag, s.Translator,
		func(t ut.Translator) error { return t.Add(tag, msg, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			out, _ := t.T(tag, fe.Field(), fe.Param())
			return out
		},
	)
}

// RegisterTag installs a custom validation tag with its message
func RegisterTag(tag string, fn validator.Func, msg string) error {
	s := Get()
	if err := s.Validator.RegisterValidation(tag, fn); err != nil {
		return err
	}
	return s.translate(tag, msg)
}

// JSONOptions tunes ParseJSON, the zero value is not the default, use
// ParseJSON without options for that
type JSONOptions struct {
	MaxBytes        int64
	DisallowUnknown bool
	AllowEmptyBody  bool
}

var defaultJSON = JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}

// ParseJSON decodes one JSON value into T and validates it
// Decode failures are ErrorCodeJSON, tag failures ErrorCodeValidation with the
// offending field set. GET and DELETE tolerate an empty body
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var dst T
	o := defaultJSON
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() { _ = r.Body.Close() }()

	var body io.Reader = r.Body
	if !o.AllowEmptyBody {
		first := make([]byte, 1)
		n, _ := io.ReadFull(r.Body, first)
		if n == 0 {
			if r.Method == http.MethodGet || r.Method == http.MethodDelete {
				return dst, nil
			}
			return dst, perr.JSONErrf("empty body")
		}
		body = io.MultiReader(bytes.NewReader(first), r.Body)
	}
	if o.MaxBytes > 0 {
		body = io.LimitReader(body, o.MaxBytes)
	}

	dec := json.NewDecoder(body)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&dst); err != nil {
		if o.AllowEmptyBody && errors.Is(err, io.EOF) {
			return dst, nil
		}
		return dst, perr.JSONErrf("invalid JSON: %v", err)
	}
	if jsonMore(dec) {
		return dst, perr.JSONErrf("unexpected trailing data")
	}

	if err := Get().Validator.Struct(dst); err != nil {
		var inv *validator.InvalidValidationError
		if errors.As(err, &inv) {
			logger.Get().Error().Err(inv).Str("type", reflect.TypeOf(dst).String()).Msg("validator misuse")
			return dst, perr.JSONErrf("validation error")
		}
		field, msg := ValidationFieldAndMessage(err)
		return dst, perr.WithField(perr.Validationf("%s", msg), field)
	}
	return dst, nil
}

// ValidationFieldAndMessage returns the first failing field and its message
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(Get().Translator)
	}
	return "", err.Error()
}
