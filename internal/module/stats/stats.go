package stats

import (
	"ngo-admin-system/internal/global/database"
	"ngo-admin-system/internal/global/response"
	"ngo-admin-system/internal/model"

	"github.com/gin-gonic/gin"
)

type roleCount struct {
	Role  model.Role `json:"role"`
	Count int64      `json:"count"`
}

type statusCount struct {
	Status model.ProjectStatus `json:"status"`
	Count  int64               `json:"count"`
}

type currencySum struct {
	Currency model.Currency `json:"currency"`
	Total    float64        `json:"total"`
}

// Overview 返回仪表盘总览数据：用户角色分布、项目状态分布、捐赠汇总与素材数量
func Overview(c *gin.Context) {
	var roles []roleCount
	if err := database.DB.Model(&model.User{}).
		Select("role, count(*) as count").
		Group("role").
		Scan(&roles).Error; err != nil {
		log.Error("统计用户角色分布失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var statuses []statusCount
	if err := database.DB.Model(&model.Project{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&statuses).Error; err != nil {
		log.Error("统计项目状态分布失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var sums []currencySum
	if err := database.DB.Model(&model.Donation{}).
		Select("currency, sum(amount) as total").
		Group("currency").
		Scan(&sums).Error; err != nil {
		log.Error("统计捐赠汇总失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	// 统一折算为卢比，便于仪表盘直接展示
	var totalINR float64
	for _, s := range sums {
		if s.Currency == model.CurrencyUSD {
			totalINR += s.Total * model.USDToINRRate
		} else {
			totalINR += s.Total
		}
	}

	var uploadCount int64
	if err := database.DB.Model(&model.Upload{}).Count(&uploadCount).Error; err != nil {
		log.Error("统计素材数量失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var taskTotal, taskDone int64
	if err := database.DB.Model(&model.Task{}).Count(&taskTotal).Error; err != nil {
		log.Error("统计任务数量失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if err := database.DB.Model(&model.Task{}).Where("completed = ?", true).Count(&taskDone).Error; err != nil {
		log.Error("统计已完成任务失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, map[string]interface{}{
		"users_by_role":         roles,
		"projects_by_status":    statuses,
		"donations_by_currency": sums,
		"donation_total_inr":    totalINR,
		"upload_count":          uploadCount,
		"task_total":            taskTotal,
		"task_completed":        taskDone,
	})
}
