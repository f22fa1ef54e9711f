package task

import (
	"ngo-admin-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (t *ModuleTask) InitRouter(r *gin.RouterGroup) {
	// 定义任务模块的路由组，所有任务相关端点以 /task 为前缀
	taskGroup := r.Group("/task")

	taskGroup.Use(middleware.Auth())
	{
		// 注册获取任务列表端点
		taskGroup.GET("/list", ListTasks)

		// 切换任务完成状态
		taskGroup.PUT("/toggle/:id", ToggleTask)
	}
}
