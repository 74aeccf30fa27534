package service

import (
	"errors"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/codestreak/internal/error_values"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// No leading digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		// Letters, digits and dashes, as printed on student cards
		validate.RegisterValidation("student_id", func(fl validator.FieldLevel) bool {
			for _, char := range fl.Field().String() {
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '-' {
					return false
				}
			}
			return true
		})
	})
}

// validateStruct joins every field error into one error.
func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	if validationError, ok := err.(validator.ValidationErrors); ok {
		err = errors.New("validation error: ")
		for _, fieldErr := range validationError {
			err = errors.Join(err, fieldErr)
		}
		return errors.Join(errorvalues.ErrValidation, err)
	}
	return errors.New("validation unexpected error: " + err.Error())
}
