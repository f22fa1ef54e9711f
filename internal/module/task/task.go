package task

import (
	"strconv"

	"ngo-admin-system/internal/global/database"
	"ngo-admin-system/internal/global/notify"
	"ngo-admin-system/internal/global/response"
	"ngo-admin-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ListTasksReq 定义获取任务列表的查询参数结构体
type ListTasksReq struct {
	ProjectID uint `form:"project_id"` // 按项目筛选，0 表示全部
}

// ListTasks 获取任务列表
func ListTasks(c *gin.Context) {
	var req ListTasksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		log.Error("绑定查询参数失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	query := database.DB.Model(&model.Task{})
	if req.ProjectID != 0 {
		query = query.Where("project_id = ?", req.ProjectID)
	}

	var tasks []model.Task
	if err := query.Order("id").Find(&tasks).Error; err != nil {
		log.Error("数据库查询失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, tasks)
}

// ToggleTask 切换任务完成状态
func ToggleTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var task model.Task
	err = database.DB.First(&task, uint(id)).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("任务不存在", "task_id", id)
		response.Fail(c, response.ErrNotFound.WithTips("任务不存在"))
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "task_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	task.Completed = !task.Completed
	if err := database.DB.Save(&task).Error; err != nil {
		log.Error("更新任务失败", "error", err, "task_id", task.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	notify.CollectionChanged(c.Request.Context(), database.CollectionTasks)

	response.Success(c, task)
}
