package response

import (
	"net/http"

	"ngo-admin-system/config"

	"github.com/gin-gonic/gin"
)

// ResponseBody 统一响应结构
type ResponseBody struct {
	Code int32       `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

// 业务错误码表
// 1xxx 请求与鉴权，2xxx 业务语义，5xxx 系统内部
var (
	ErrInvalidRequest  = newError(1001, "请求参数错误")
	ErrTokenInvalid    = newError(1002, "登录凭证无效")
	ErrUnauthorized    = newError(1003, "未登录或登录已过期")
	ErrInvalidPassword = newError(1004, "密码错误")

	ErrForbidden       = newError(2001, "无权执行该操作")
	ErrNotFound        = newError(2002, "目标不存在")
	ErrAlreadyExists   = newError(2003, "目标已存在")
	ErrInactiveAccount = newError(2004, "账号已停用")
	ErrValidation      = newError(2005, "数据校验失败")

	ErrDatabase   = newError(5001, "数据库操作失败")
	ErrGeneration = newError(5002, "报告生成失败")
	ErrInternal   = newError(5003, "服务内部错误")
)

// Success 返回成功响应，data 可省略
func Success(c *gin.Context, data ...interface{}) {
	body := ResponseBody{
		Code: 200,
		Msg:  "success",
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Fail 返回失败响应
// 非 *Error 的错误统一按内部错误处理；release 模式下不回传 Origin
func Fail(c *gin.Context, err error) {
	e, ok := err.(*Error)
	if !ok {
		e = ErrInternal.WithOrigin(err)
	}

	body := ResponseBody{
		Code: e.Code,
		Msg:  e.Message,
	}
	if config.Get().Mode == config.ModeDebug && e.Origin != "" {
		body.Data = map[string]interface{}{"origin": e.Origin}
	}

	// 供日志中间件读取
	c.Set(ErrorContextKey, e)

	c.JSON(http.StatusOK, body)
}

// Recovery 捕获 handler panic，转为内部错误响应
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok {
			Fail(c, ErrInternal.WithTips("panic"))
			c.Abort()
			return
		}
		Fail(c, ErrInternal.WithOrigin(err))
		c.Abort()
	}
}
