package project

import (
	"strconv"
	"strings"

	"ngo-admin-system/internal/global/database"
	"ngo-admin-system/internal/global/notify"
	"ngo-admin-system/internal/global/response"
	"ngo-admin-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ProjectCreateReq 定义创建项目请求的结构体
type ProjectCreateReq struct {
	Name        string              `json:"name" binding:"required"`       // 项目名称
	Description string              `json:"description"`                   // 项目描述
	ImageURL    string              `json:"image_url"`                     // 封面URL，缺省按名称生成
	Status      model.ProjectStatus `json:"status"`                        // 项目状态，缺省 Planning
	Initiative  model.Initiative    `json:"initiative" binding:"required"` // 公益方向（必选）
	Initiative2 model.Initiative    `json:"initiative2"`                   // 第二公益方向（可选）
	Progress    int                 `json:"progress"`                      // 进度，缺省 0
	Budget      float64             `json:"budget"`                        // 预算，缺省 0
}

// defaultImageURL 按项目名称生成确定性的封面URL，便于测试夹具复现
// 名称可能全是空白（required 只拦空串），此时回退到固定种子
func defaultImageURL(name string) string {
	seed := "project"
	if fields := strings.Fields(name); len(fields) > 0 {
		seed = strings.ToLower(fields[0])
	}
	return "https://picsum.photos/seed/" + seed + "/600/400"
}

// CreateProject 处理创建项目请求
func CreateProject(c *gin.Context) {
	// 定义请求结构体并绑定 JSON 数据
	var req ProjectCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建项目请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if !req.Initiative.Valid() || (req.Initiative2 != "" && !req.Initiative2.Valid()) {
		response.Fail(c, response.ErrValidation.WithTips("公益方向取值非法"))
		return
	}
	if req.Status == "" {
		req.Status = model.ProjectPlanning
	}
	if !req.Status.Valid() {
		response.Fail(c, response.ErrValidation.WithTips("项目状态取值非法"))
		return
	}
	if req.Progress < 0 || req.Progress > 100 {
		response.Fail(c, response.ErrValidation.WithTips("进度必须在 0-100 之间"))
		return
	}
	if req.Budget < 0 {
		response.Fail(c, response.ErrValidation.WithTips("预算不能为负"))
		return
	}

	// 查询项目是否已存在
	var existingProject model.Project
	err := database.DB.Where("name = ?", req.Name).First(&existingProject).Error
	if err == nil {
		log.Warn("项目已存在", "name", req.Name)
		response.Fail(c, response.ErrAlreadyExists.WithTips("项目已存在"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("数据库查询失败", "error", err, "name", req.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	project := model.Project{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Status:      req.Status,
		Initiative:  req.Initiative,
		Initiative2: req.Initiative2,
		Progress:    req.Progress,
		Budget:      req.Budget,
	}
	if project.ImageURL == "" {
		project.ImageURL = defaultImageURL(req.Name)
	}

	if err := database.DB.Create(&project).Error; err != nil {
		log.Error("创建项目失败", "error", err, "name", req.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	notify.CollectionChanged(c.Request.Context(), database.CollectionProjects)

	log.Info("项目创建成功", "project_id", project.ID, "name", project.Name)

	response.Success(c, project)
}

// ListProjectsReq 定义获取项目列表的查询参数结构体
type ListProjectsReq struct {
	Status     string `form:"status"`     // 项目状态筛选
	Initiative string `form:"initiative"` // 公益方向筛选
	Name       string `form:"name"`       // 项目名称模糊查询
	Page       int    `form:"page"`       // 页码，默认为1
	PageSize   int    `form:"page_size"`  // 每页大小，默认为10
}

// ListProjects 获取项目列表（支持查询参数）
func ListProjects(c *gin.Context) {
	// 绑定查询参数到结构体
	var req ListProjectsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		log.Error("绑定查询参数失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// 设置默认值
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}

	// 构建查询条件
	query := database.DB.Model(&model.Project{})

	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}
	if req.Initiative != "" {
		query = query.Where("initiative = ? OR initiative2 = ?", req.Initiative, req.Initiative)
	}
	if req.Name != "" {
		query = query.Where("name LIKE ?", "%"+req.Name+"%")
	}

	// 计算总数
	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Error("数据库查询失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var projects []model.Project
	if err := query.
		Order("id").
		Offset((req.Page - 1) * req.PageSize).
		Limit(req.PageSize).
		Find(&projects).Error; err != nil {
		log.Error("数据库查询失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, map[string]interface{}{
		"total":    total,
		"projects": projects,
	})
}

// GetProject 获取单个项目
func GetProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var project model.Project
	err = database.DB.First(&project, uint(id)).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("项目不存在"))
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "project_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, project)
}

// ProjectUpdateReq 定义更新项目请求的结构体，使用指针类型支持部分更新
type ProjectUpdateReq struct {
	Name        *string              `json:"name"`
	Description *string              `json:"description"`
	ImageURL    *string              `json:"image_url"`
	Status      *model.ProjectStatus `json:"status"`
	Initiative  *model.Initiative    `json:"initiative"`
	Initiative2 *model.Initiative    `json:"initiative2"`
	Progress    *int                 `json:"progress"`
	Budget      *float64             `json:"budget"`
}

// UpdateProject 处理更新项目请求
func UpdateProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var req ProjectUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定更新项目请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var project model.Project
	err = database.DB.First(&project, uint(id)).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("项目不存在", "project_id", id)
		response.Fail(c, response.ErrNotFound.WithTips("项目不存在"))
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "project_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ImageURL != nil {
		project.ImageURL = *req.ImageURL
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			response.Fail(c, response.ErrValidation.WithTips("项目状态取值非法"))
			return
		}
		project.Status = *req.Status
	}
	if req.Initiative != nil {
		if !req.Initiative.Valid() {
			response.Fail(c, response.ErrValidation.WithTips("公益方向取值非法"))
			return
		}
		project.Initiative = *req.Initiative
	}
	if req.Initiative2 != nil {
		if *req.Initiative2 != "" && !req.Initiative2.Valid() {
			response.Fail(c, response.ErrValidation.WithTips("公益方向取值非法"))
			return
		}
		project.Initiative2 = *req.Initiative2
	}
	if req.Progress != nil {
		if *req.Progress < 0 || *req.Progress > 100 {
			response.Fail(c, response.ErrValidation.WithTips("进度必须在 0-100 之间"))
			return
		}
		project.Progress = *req.Progress
	}
	if req.Budget != nil {
		if *req.Budget < 0 {
			response.Fail(c, response.ErrValidation.WithTips("预算不能为负"))
			return
		}
		project.Budget = *req.Budget
	}

	if err := database.DB.Save(&project).Error; err != nil {
		log.Error("更新项目失败", "error", err, "project_id", project.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	notify.CollectionChanged(c.Request.Context(), database.CollectionProjects)

	log.Info("项目更新成功", "project_id", project.ID)

	response.Success(c, project)
}

// DeleteProject 处理删除项目请求
// 项目名下的捐赠记录保留，仅在汇总里失去关联（按名称关联的已知约束）
func DeleteProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var project model.Project
	err = database.DB.First(&project, uint(id)).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("项目不存在", "project_id", id)
		response.Fail(c, response.ErrNotFound.WithTips("项目不存在"))
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "project_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := database.DB.Delete(&project).Error; err != nil {
		log.Error("删除项目失败", "error", err, "project_id", project.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	notify.CollectionChanged(c.Request.Context(), database.CollectionProjects)

	log.Info("项目删除成功", "project_id", project.ID)

	response.Success(c)
}
