package report

import (
	"ngo-admin-system/internal/global/middleware"
	"ngo-admin-system/internal/policy"

	"github.com/gin-gonic/gin"
)

func (m *ModuleReport) InitRouter(r *gin.RouterGroup) {
	// 定义报告模块的路由组
	reportGroup := r.Group("/report")

	// 报告生成面向管理角色的仪表盘
	reportGroup.Use(middleware.Auth(policy.CanManageEntityClass))
	{
		reportGroup.POST("/project", GenerateProjectReport)
	}
}
