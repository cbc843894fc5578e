package handler

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var postalCodeRe = regexp.MustCompile(`^[0-9A-Za-z]{3,10}(-[0-9A-Za-z]{2,4})?$`)

// RegisterValidators 注册自定义 binding 校验规则
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("postalcode", func(fl validator.FieldLevel) bool {
			return postalCodeRe.MatchString(fl.Field().String())
		})
	}
}
