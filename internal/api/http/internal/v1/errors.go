package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	ItemAlreadyExistsCode    = 1001
	ItemAlreadyExistsMessage = "item already exists"

	PointUnknownItemCode    = 2001
	PointUnknownItemMessage = "point references unknown items"
	PointNotFoundCode       = 2002
	PointNotFoundMessage    = "point not found"

	RegionNotFoundCode    = 3001
	RegionNotFoundMessage = "region not found"

	ValidationErrorCode    = 6000
	ValidationErrorMessage = "Validation error"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
}

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	switch code {
	case ItemAlreadyExistsCode:
		errorStruct.ErrorCode = ItemAlreadyExistsCode
		errorStruct.ErrorMessage = ItemAlreadyExistsMessage
	case PointUnknownItemCode:
		errorStruct.ErrorCode = PointUnknownItemCode
		errorStruct.ErrorMessage = PointUnknownItemMessage
	case PointNotFoundCode:
		errorStruct.ErrorCode = PointNotFoundCode
		errorStruct.ErrorMessage = PointNotFoundMessage
	case RegionNotFoundCode:
		errorStruct.ErrorCode = RegionNotFoundCode
		errorStruct.ErrorMessage = RegionNotFoundMessage
	}

	return errorStruct
}
