package project

import (
	"ngo-admin-system/internal/global/database"
	"ngo-admin-system/internal/global/response"
	"ngo-admin-system/internal/model"

	"github.com/gin-gonic/gin"
)

// FundingEntry 单个项目的筹款进度
type FundingEntry struct {
	ProjectID uint    `json:"project_id"`
	Name      string  `json:"name"`
	Budget    float64 `json:"budget"`
	RaisedINR float64 `json:"raised_inr"` // 折算为 INR 的累计捐赠额
	Progress  float64 `json:"progress"`   // 百分比，超募时会大于 100，不截断
}

// ComputeFunding 计算每个项目的筹款进度
// 捐赠按项目名称文本匹配归属；USD 按固定汇率折算后求和
// 预算为 0 时进度记 0；超募不封顶，按真实比例上报
func ComputeFunding(projects []model.Project, donations []model.Donation) []FundingEntry {
	raised := make(map[string]float64, len(projects))
	for i := range donations {
		raised[donations[i].ProjectName] += donations[i].AmountINR()
	}

	entries := make([]FundingEntry, 0, len(projects))
	for i := range projects {
		p := &projects[i]
		entry := FundingEntry{
			ProjectID: p.ID,
			Name:      p.Name,
			Budget:    p.Budget,
			RaisedINR: raised[p.Name],
		}
		if p.Budget > 0 {
			entry.Progress = entry.RaisedINR / p.Budget * 100
		}
		entries = append(entries, entry)
	}
	return entries
}

// FundingProgress 返回全部项目的筹款进度
func FundingProgress(c *gin.Context) {
	var projects []model.Project
	if err := database.DB.Order("id").Find(&projects).Error; err != nil {
		log.Error("数据库查询失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var donations []model.Donation
	if err := database.DB.Find(&donations).Error; err != nil {
		log.Error("数据库查询失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, ComputeFunding(projects, donations))
}
