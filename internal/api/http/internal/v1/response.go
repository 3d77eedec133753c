package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func errorResponse(c *gin.Context, status int, code ErrorCode) {
	c.AbortWithStatusJSON(status, getErrorStruct(code))
}

func internalErrorResponse(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, getErrorStruct(UnknownErrorCode))
}

// validationErrorResponse answers 400 for a failed binding. Malformed JSON has
// no field errors and gets an empty list.
func validationErrorResponse(c *gin.Context, err error) {
	response := ValidationErrorStruct{
		ErrorCode:    ValidationErrorCode,
		ErrorMessage: ValidationErrorMessage,
		Errors:       []ValidationError{},
	}

	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		out := make([]ValidationError, len(verr))
		for i, ferr := range verr {
			out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
		}
		response.Errors = out
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, response)
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "Este campo é obrigatório"
	case "email":
		return "Formato de e-mail inválido"
	case "len":
		return fmt.Sprintf("O campo deve ter %v caracteres", value)
	case "min":
		return fmt.Sprintf("Quantidade mínima - %v", value)
	case "max":
		return fmt.Sprintf("Quantidade máxima - %v", value)
	case "gt":
		return fmt.Sprintf("O valor deve ser maior que %v", value)
	case "latitude":
		return "Latitude inválida"
	case "longitude":
		return "Longitude inválida"
	case "whatsapp":
		return "O número deve ter de 6 a 13 dígitos"
	}
	return tag
}
