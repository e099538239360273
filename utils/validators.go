package utils

import (
	"secondbrain/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// InitValidator registers custom rules on gin's binding engine.
func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("notetype", ValidateNoteTypeRule)
	}
}

func ValidateNoteTypeRule(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return model.ValidNoteType(model.NoteType(value))
}
