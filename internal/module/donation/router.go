package donation

import (
	"ngo-admin-system/internal/global/middleware"
	"ngo-admin-system/internal/policy"

	"github.com/gin-gonic/gin"
)

func (d *ModuleDonation) InitRouter(r *gin.RouterGroup) {
	// 定义捐赠模块的路由组，所有捐赠相关端点以 /donation 为前缀
	donationGroup := r.Group("/donation")

	donationGroup.Use(middleware.Auth())
	{
		// 注册获取捐赠列表端点
		donationGroup.GET("/list", ListDonations)

		// 分币种合计
		donationGroup.GET("/totals", TotalsByCurrency)

		// 月度趋势（折算 INR）
		donationGroup.GET("/trend", MonthlyTrend)
	}

	adminGroup := r.Group("/donation")
	adminGroup.Use(middleware.Auth(policy.CanManageEntityClass))
	{
		// 录入捐赠；捐赠一经录入不可修改或删除，故不提供 update/delete
		adminGroup.POST("/create", CreateDonation)

		// 导出捐赠明细 xlsx
		adminGroup.GET("/export", Export)
	}
}
