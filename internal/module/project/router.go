package project

import (
	"ngo-admin-system/internal/global/middleware"
	"ngo-admin-system/internal/policy"

	"github.com/gin-gonic/gin"
)

func (p *ModuleProject) InitRouter(r *gin.RouterGroup) {
	// 定义项目模块的路由组，所有项目相关端点以 /project 为前缀
	projectGroup := r.Group("/project")

	projectGroup.Use(middleware.Auth())
	{
		// 注册获取项目列表端点
		projectGroup.GET("/list", ListProjects)

		// 注册获取单个项目端点
		projectGroup.GET("/get/:id", GetProject)

		// 项目筹款进度
		projectGroup.GET("/funding", FundingProgress)
	}

	adminGroup := r.Group("/project")
	adminGroup.Use(middleware.Auth(policy.CanManageEntityClass))
	{
		// 注册创建项目端点
		adminGroup.POST("/create", CreateProject)

		// 注册更新项目端点
		adminGroup.PUT("/update/:id", UpdateProject)

		// 注册删除项目端点
		adminGroup.DELETE("/delete/:id", DeleteProject)
	}
}
