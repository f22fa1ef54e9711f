package upload

import (
	"strconv"
	"time"

	"ngo-admin-system/internal/global/database"
	"ngo-admin-system/internal/global/mediastore"
	"ngo-admin-system/internal/global/notify"
	"ngo-admin-system/internal/global/response"
	"ngo-admin-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PresignReq 定义预签名上传请求的结构体
type PresignReq struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type"`
}

// Presign 生成预签名上传 URL，前端拿到后直传对象存储
func Presign(c *gin.Context) {
	var req PresignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定预签名请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	presigned, err := mediastore.Get().GeneratePresignedUploadURL(c.Request.Context(), mediastore.PresignedUploadRequest{
		Filename:    req.Filename,
		ContentType: req.ContentType,
	})
	if err != nil {
		log.Error("生成预签名 URL 失败", "error", err, "filename", req.Filename)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	response.Success(c, presigned)
}

// PresignDownloadReq 定义私有文件预签名下载请求的结构体
type PresignDownloadReq struct {
	Key       string `json:"key" binding:"required"` // 对象存储中的文件 key
	ExpiresIn int64  `json:"expires_in"`             // 过期时间（秒），缺省 1 小时
}

// PresignDownload 生成私有对象（如捐赠收据）的预签名下载 URL
func PresignDownload(c *gin.Context) {
	var req PresignDownloadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定预签名下载请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	url, err := mediastore.Get().GeneratePresignedDownloadURL(c.Request.Context(), req.Key, req.ExpiresIn)
	if err != nil {
		log.Error("生成预签名下载 URL 失败", "error", err, "key", req.Key)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	response.Success(c, map[string]interface{}{
		"url": url,
	})
}

// UploadFile 接收小文件并落本地目录，返回访问 URL
// 对象存储不可用时的兜底路径
func UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.Error("读取上传文件失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	url, err := mediastore.Get().SaveFile(fileHeader)
	if err != nil {
		log.Error("保存上传文件失败", "error", err, "filename", fileHeader.Filename)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	log.Info("文件保存成功", "filename", fileHeader.Filename)

	response.Success(c, map[string]interface{}{
		"url": url,
	})
}

// UploadCreateReq 定义登记素材元数据请求的结构体
type UploadCreateReq struct {
	Name        string           `json:"name" binding:"required"`
	URL         string           `json:"url" binding:"required"` // 直传完成后的访问 URL
	Description string           `json:"description"`
	Initiative  model.Initiative `json:"initiative" binding:"required"`
	Initiative2 model.Initiative `json:"initiative2"`
}

// CreateUpload 登记一条素材元数据
func CreateUpload(c *gin.Context) {
	var req UploadCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定登记素材请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if !req.Initiative.Valid() || (req.Initiative2 != "" && !req.Initiative2.Valid()) {
		response.Fail(c, response.ErrValidation.WithTips("公益方向取值非法"))
		return
	}

	upload := model.Upload{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		Initiative:  req.Initiative,
		Initiative2: req.Initiative2,
		UploadedAt:  time.Now().Format("2006-01-02"),
	}

	if err := database.DB.Create(&upload).Error; err != nil {
		log.Error("登记素材失败", "error", err, "name", req.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	notify.CollectionChanged(c.Request.Context(), database.CollectionUploads)

	log.Info("素材登记成功", "upload_id", upload.ID, "name", upload.Name)

	response.Success(c, upload)
}

// ListUploadsReq 定义获取素材列表的查询参数结构体
type ListUploadsReq struct {
	Initiative string `form:"initiative"` // 公益方向筛选
	Name       string `form:"name"`       // 名称模糊查询
	Page       int    `form:"page"`       // 页码，默认为1
	PageSize   int    `form:"page_size"`  // 每页大小，默认为10
}

// ListUploads 获取素材列表（支持查询参数）
func ListUploads(c *gin.Context) {
	var req ListUploadsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		log.Error("绑定查询参数失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}

	query := database.DB.Model(&model.Upload{})

	if req.Initiative != "" {
		query = query.Where("initiative = ? OR initiative2 = ?", req.Initiative, req.Initiative)
	}
	if req.Name != "" {
		query = query.Where("name LIKE ?", "%"+req.Name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Error("数据库查询失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var uploads []model.Upload
	if err := query.
		Order("uploaded_at DESC, id DESC").
		Offset((req.Page - 1) * req.PageSize).
		Limit(req.PageSize).
		Find(&uploads).Error; err != nil {
		log.Error("数据库查询失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, map[string]interface{}{
		"total":   total,
		"uploads": uploads,
	})
}

// UploadUpdateReq 定义更新素材请求的结构体，使用指针类型支持部分更新
type UploadUpdateReq struct {
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	Initiative  *model.Initiative `json:"initiative"`
	Initiative2 *model.Initiative `json:"initiative2"`
}

// UpdateUpload 更新素材元数据
func UpdateUpload(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var req UploadUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定更新素材请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var upload model.Upload
	err = database.DB.First(&upload, uint(id)).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("素材不存在", "upload_id", id)
		response.Fail(c, response.ErrNotFound.WithTips("素材不存在"))
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "upload_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if req.Name != nil {
		upload.Name = *req.Name
	}
	if req.Description != nil {
		upload.Description = *req.Description
	}
	if req.Initiative != nil {
		if !req.Initiative.Valid() {
			response.Fail(c, response.ErrValidation.WithTips("公益方向取值非法"))
			return
		}
		upload.Initiative = *req.Initiative
	}
	if req.Initiative2 != nil {
		if *req.Initiative2 != "" && !req.Initiative2.Valid() {
			response.Fail(c, response.ErrValidation.WithTips("公益方向取值非法"))
			return
		}
		upload.Initiative2 = *req.Initiative2
	}

	if err := database.DB.Save(&upload).Error; err != nil {
		log.Error("更新素材失败", "error", err, "upload_id", upload.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	notify.CollectionChanged(c.Request.Context(), database.CollectionUploads)

	log.Info("素材更新成功", "upload_id", upload.ID)

	response.Success(c, upload)
}

// DeleteUpload 删除素材元数据（对象存储中的文件保留）
func DeleteUpload(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var upload model.Upload
	err = database.DB.First(&upload, uint(id)).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("素材不存在", "upload_id", id)
		response.Fail(c, response.ErrNotFound.WithTips("素材不存在"))
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "upload_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := database.DB.Delete(&upload).Error; err != nil {
		log.Error("删除素材失败", "error", err, "upload_id", upload.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	notify.CollectionChanged(c.Request.Context(), database.CollectionUploads)

	log.Info("素材删除成功", "upload_id", upload.ID)

	response.Success(c)
}
