package webutil

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"go_verb_master/internal/model"
)

// Validator is shared by all handlers and by config loading.
var Validator *validator.Validate

// Trans renders validation errors in English.
var Trans ut.Translator

func init() {
	Validator = validator.New()

	// report json names instead of Go field names
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	Trans, _ = uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		panic("webutil: register validator translations: " + err.Error())
	}

	Validator.RegisterTranslation("oneof", Trans, func(ut ut.Translator) error {
		return ut.Add("oneof", "{0} must be one of: {1}", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("oneof", fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
		return t
	})
}

// ValidateStruct validates s and converts the first failure into a
// VALIDATION_ERROR AppError that wraps model.ErrInvalidInput.
func ValidateStruct(s interface{}) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		return model.NewAppError("VALIDATION_ERROR", first.Translate(Trans), first.Field(), model.ErrInvalidInput)
	}
	return model.NewAppError("VALIDATION_ERROR", err.Error(), "", model.ErrInvalidInput)
}
