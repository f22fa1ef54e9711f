package donation

import (
	"net/http"
	"net/url"

	"ngo-admin-system/internal/global/database"
	"ngo-admin-system/internal/global/response"
	"ngo-admin-system/internal/model"
	"ngo-admin-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// Export 导出全部捐赠明细为 xlsx
// 列集合由 Donation 模型的 excel 标签决定
func Export(c *gin.Context) {
	var donations []model.Donation
	if err := database.DB.Order("date, id").Find(&donations).Error; err != nil {
		log.Error("数据库查询失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := tools.ExportToExcel(f, "Donations", donations); err != nil {
		log.Error("生成导出文件失败", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	// 删除默认工作表，只保留数据表
	_ = f.DeleteSheet("Sheet1")

	filename := url.QueryEscape("donations.xlsx")
	c.Header("Content-Type", tools.ExcelContentType)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		log.Error("写出导出文件失败", "error", err)
	}
}
