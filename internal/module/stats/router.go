package stats

import (
	"ngo-admin-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (*ModuleStats) InitRouter(r *gin.RouterGroup) {
	statsGroup := r.Group("/stats")

	statsGroup.Use(middleware.Auth())
	{
		// 仪表盘总览：用户/项目/捐赠/素材计数与分布
		statsGroup.GET("/overview", Overview)
	}
}
