package data

import (
	"strconv"

	"github.com/go-kratos/kratos/v2/errors"
)

// 快照加载失败的原因码
const (
	ReasonTransport  = "TRANSPORT_ERROR"
	ReasonHTTPStatus = "HTTP_STATUS_ERROR"
	ReasonParse      = "PARSE_ERROR"
	ReasonSchema     = "SCHEMA_ERROR"
)

// ErrTransport 请求无法完成（网络、DNS、协议不支持等）
func ErrTransport(location string, cause error) *errors.Error {
	return errors.ServiceUnavailable(ReasonTransport, "snapshot fetch failed").
		WithCause(cause).
		WithMetadata(map[string]string{"location": location})
}

// ErrHTTPStatus 响应状态码不是 2xx
func ErrHTTPStatus(location string, status int) *errors.Error {
	return errors.New(502, ReasonHTTPStatus, "snapshot responded with status "+strconv.Itoa(status)).
		WithMetadata(map[string]string{"location": location, "status": strconv.Itoa(status)})
}

// ErrParse 响应体不是合法的 JSON
func ErrParse(message string) *errors.Error {
	return errors.New(422, ReasonParse, message)
}

// ErrSchema 结构不符合快照格式
func ErrSchema(message string) *errors.Error {
	return errors.New(422, ReasonSchema, message)
}

func IsTransportError(err error) bool {
	return err != nil && errors.Reason(err) == ReasonTransport
}

func IsHTTPStatusError(err error) bool {
	return err != nil && errors.Reason(err) == ReasonHTTPStatus
}

func IsParseError(err error) bool {
	return err != nil && errors.Reason(err) == ReasonParse
}

func IsSchemaError(err error) bool {
	return err != nil && errors.Reason(err) == ReasonSchema
}

// IsLoadError 属于快照加载的任一错误
func IsLoadError(err error) bool {
	return IsTransportError(err) || IsHTTPStatusError(err) || IsParseError(err) || IsSchemaError(err)
}
