package upload

import (
	"ngo-admin-system/internal/global/middleware"
	"ngo-admin-system/internal/policy"

	"github.com/gin-gonic/gin"
)

func (u *ModuleUpload) InitRouter(r *gin.RouterGroup) {
	// 定义素材模块的路由组，所有素材相关端点以 /upload 为前缀
	uploadGroup := r.Group("/upload")

	uploadGroup.Use(middleware.Auth())
	{
		// 注册获取素材列表端点
		uploadGroup.GET("/list", ListUploads)

		// 私有文件的预签名下载 URL
		uploadGroup.POST("/presign-download", PresignDownload)
	}

	// 上传入口与创建用户共用同一个角色集合（Donor 之外都可以）
	createGroup := r.Group("/upload")
	createGroup.Use(middleware.Auth(policy.CanCreateUser))
	{
		// 获取预签名直传 URL
		createGroup.POST("/presign", Presign)

		// 登记素材元数据（文件已直传对象存储）
		createGroup.POST("/create", CreateUpload)

		// 小文件兜底：直接落服务器本地目录
		createGroup.POST("/file", UploadFile)
	}

	// 编辑删除仅限实体管理角色
	adminGroup := r.Group("/upload")
	adminGroup.Use(middleware.Auth(policy.CanManageEntityClass))
	{
		adminGroup.PUT("/update/:id", UpdateUpload)
		adminGroup.DELETE("/delete/:id", DeleteUpload)
	}
}
