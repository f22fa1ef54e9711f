package user

import (
	"ngo-admin-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

// InitRouter 初始化用户模块的路由
// 将用户相关的 HTTP 端点挂载到指定的路由组
func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	// 定义用户模块的路由组，所有用户相关端点以 /user 为前缀
	userGroup := r.Group("/user")

	// 注册登录端点，处理用户登录请求
	userGroup.POST("/login", Login)

	// 注册开放注册端点，新账号固定为 Donor 角色
	userGroup.POST("/register", Register)

	authGroup := userGroup.Group("")
	authGroup.Use(middleware.Auth())
	{
		// 当前登录用户信息
		authGroup.GET("/me", Me)

		// 修改密码
		authGroup.POST("/password", ChangePassword)

		// 以某角色视角预览（不改变账号真实角色）
		authGroup.POST("/view-as", ViewAs)

		// 用户列表
		authGroup.GET("/list", ListUsers)

		// 用户管理，handler 内按真实角色做细粒度判定
		authGroup.POST("/create", CreateUser)
		authGroup.PUT("/update/:id", UpdateUser)
		authGroup.DELETE("/delete/:id", DeleteUser)
	}
}
