package dto

import (
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"

	"userservice/internal/domain"
)

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	validate = validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(validate, trans)
}

// Validate runs struct tag validation and maps failures onto the domain
// error taxonomy. Only the first failing field is reported.
func Validate(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return domain.ErrInvalidField("body", err.Error())
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	if fe.Tag() == "required" {
		return domain.ErrMissingField(field)
	}
	return domain.ErrInvalidField(field, fe.Translate(trans))
}
