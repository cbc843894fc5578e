package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// 核心错误分类，边界层负责翻译为 HTTP 状态码
var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidArgument = errors.New("invalid argument")
)

// notFound 包装出带上下文的 ErrNotFound
func notFound(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func forbidden(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrForbidden, fmt.Sprintf(format, args...))
}

func invalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// orNotFound 把 gorm 的未命中翻译为 ErrNotFound，其余错误原样返回
func orNotFound(err error, format string, args ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(format, args...)
	}
	return err
}
