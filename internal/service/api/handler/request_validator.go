// Package handler 핸들러 공용 요청 바인딩 및 검증 기능을 제공합니다.
package handler

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/darkkaiser/discount-bot/internal/service/api/constants"
	"github.com/darkkaiser/discount-bot/internal/service/api/httputil"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator 요청 DTO 검증용 validator 를 반환합니다.
// 에러 메시지의 필드명으로 korean 태그 값을 사용합니다.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("korean"); name != "" {
				return name
			}
			return fld.Name
		})
	})

	return validate
}

// BindAndValidate 요청 본문을 req 에 바인딩하고 validate 태그로 검증합니다.
// 실패하면 사용자에게 보여줄 메시지를 담은 400 에러를 반환합니다.
func BindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
	}
	return ValidateRequest(req)
}

// ValidateRequest 구조체를 검증하고 실패하면 400 에러를 반환합니다.
func ValidateRequest(req any) error {
	if err := getValidator().Struct(req); err != nil {
		return httputil.NewBadRequestError(FormatValidationError(err))
	}
	return nil
}

// FormatValidationError validator 에러를 한국어 메시지로 변환합니다. 첫 번째 에러만 사용합니다.
func FormatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err.Error()
	}

	fieldErr := validationErrors[0]
	fieldName := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s은(는) 필수입니다", fieldName)
	case "email":
		return fmt.Sprintf("%s은(는) 올바른 이메일 형식이어야 합니다", fieldName)
	case "min":
		return fmt.Sprintf("%s은(는) 최소 %s 이상이어야 합니다", fieldName, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s은(는) 최대 %s까지 입력 가능합니다", fieldName, fieldErr.Param())
	default:
		return fmt.Sprintf("%s 검증 실패: %s", fieldName, fieldErr.Tag())
	}
}
