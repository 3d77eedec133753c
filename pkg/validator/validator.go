package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var whatsappPattern = regexp.MustCompile(`^\d{6,13}$`)

func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

// Register adds json field naming and the custom tags to v.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	err := v.RegisterValidation("whatsapp", whatsappValidator)
	if err != nil {
		log.Fatal("register whatsapp validator failed")
	}
}

// whatsappValidator accepts a phone number of 6 to 13 digits, so local
// numbers pass as well as full ones with country code. Spaces, dashes, dots, parentheses and a leading + are ignored.
var whatsappValidator validator.Func = func(fl validator.FieldLevel) bool {
	return IsWhatsapp(fl.Field().String())
}

func IsWhatsapp(v string) bool {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '+', '.':
			return -1
		}
		return r
	}, v)
	return whatsappPattern.MatchString(cleaned)
}
