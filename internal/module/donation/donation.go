package donation

import (
	"sort"
	"strings"

	"ngo-admin-system/internal/global/database"
	"ngo-admin-system/internal/global/notify"
	"ngo-admin-system/internal/global/response"
	"ngo-admin-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// DonationCreateReq 定义录入捐赠请求的结构体
// 捐赠按项目名称文本关联到项目，项目改名会使捐赠在汇总中失联（已知约束）
type DonationCreateReq struct {
	DonorName   string         `json:"donor_name" binding:"required"`
	DonorEmail  string         `json:"donor_email" binding:"required,email"`
	Mobile      string         `json:"mobile"`
	PAN         string         `json:"pan"`
	Aadhaar     string         `json:"aadhaar"`
	DOB         string         `json:"dob"`
	Country     string         `json:"country"`
	State       string         `json:"state"`
	City        string         `json:"city"`
	PIN         string         `json:"pin"`
	Address     string         `json:"address"`
	Amount      float64        `json:"amount" binding:"required"`
	Currency    model.Currency `json:"currency" binding:"required"`
	Date        string         `json:"date" binding:"required"` // YYYY-MM-DD
	ProjectName string         `json:"project" binding:"required"`
	ReceiptURL  string         `json:"receipt_url"`
}

// CreateDonation 录入一笔捐赠
func CreateDonation(c *gin.Context) {
	// 定义请求结构体并绑定 JSON 数据
	var req DonationCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定录入捐赠请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// 金额必须为正
	if req.Amount <= 0 {
		response.Fail(c, response.ErrValidation.WithTips("金额必须为正"))
		return
	}
	if !req.Currency.Valid() {
		response.Fail(c, response.ErrValidation.WithTips("币种取值非法"))
		return
	}

	// 项目必须存在，按名称匹配
	var project model.Project
	err := database.DB.Where("name = ?", req.ProjectName).First(&project).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("项目不存在", "project", req.ProjectName)
		response.Fail(c, response.ErrNotFound.WithTips("项目不存在"))
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "project", req.ProjectName)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	donation := model.Donation{
		DonorName:   req.DonorName,
		DonorEmail:  req.DonorEmail,
		Mobile:      req.Mobile,
		PAN:         req.PAN,
		Aadhaar:     req.Aadhaar,
		DOB:         req.DOB,
		Country:     req.Country,
		State:       req.State,
		City:        req.City,
		PIN:         req.PIN,
		Address:     req.Address,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Date:        req.Date,
		ProjectName: req.ProjectName,
		ReceiptURL:  req.ReceiptURL,
	}

	if err := database.DB.Create(&donation).Error; err != nil {
		log.Error("录入捐赠失败", "error", err, "donor", req.DonorName)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	notify.CollectionChanged(c.Request.Context(), database.CollectionDonations)

	log.Info("捐赠录入成功",
		"donation_id", donation.ID,
		"donor", donation.DonorName,
		"amount", donation.Amount,
		"currency", donation.Currency)

	response.Success(c, donation)
}

// ListDonationsReq 定义获取捐赠列表的查询参数结构体
type ListDonationsReq struct {
	Project  string `form:"project"`   // 项目名称筛选
	Currency string `form:"currency"`  // 币种筛选
	Donor    string `form:"donor"`     // 捐赠人姓名模糊查询
	Page     int    `form:"page"`      // 页码，默认为1
	PageSize int    `form:"page_size"` // 每页大小，默认为10
}

// ListDonations 获取捐赠列表（支持查询参数）
func ListDonations(c *gin.Context) {
	var req ListDonationsReq
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

	query := database.DB.Model(&model.Donation{})

	if req.Project != "" {
		query = query.Where("project_name = ?", req.Project)
	}
	if req.Currency != "" {
		query = query.Where("currency = ?", req.Currency)
	}
	if req.Donor != "" {
		query = query.Where("donor_name LIKE ?", "%"+req.Donor+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Error("数据库查询失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var donations []model.Donation
	if err := query.
		Order("date DESC, id DESC").
		Offset((req.Page - 1) * req.PageSize).
		Limit(req.PageSize).
		Find(&donations).Error; err != nil {
		log.Error("数据库查询失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, map[string]interface{}{
		"total":     total,
		"donations": donations,
	})
}

// CurrencyTotal 单币种合计
type CurrencyTotal struct {
	Currency model.Currency `json:"currency"`
	Count    int64          `json:"count"`
	Amount   float64        `json:"amount"`
}

// TotalsByCurrency 分币种合计，另附折算 INR 的总额
func TotalsByCurrency(c *gin.Context) {
	var donations []model.Donation
	if err := database.DB.Find(&donations).Error; err != nil {
		log.Error("数据库查询失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	byCurrency := map[model.Currency]*CurrencyTotal{}
	var totalINR float64
	for i := range donations {
		d := &donations[i]
		t, ok := byCurrency[d.Currency]
		if !ok {
			t = &CurrencyTotal{Currency: d.Currency}
			byCurrency[d.Currency] = t
		}
		t.Count++
		t.Amount += d.Amount
		totalINR += d.AmountINR()
	}

	totals := make([]CurrencyTotal, 0, len(byCurrency))
	for _, t := range byCurrency {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Currency < totals[j].Currency })

	response.Success(c, map[string]interface{}{
		"totals":    totals,
		"total_inr": totalINR,
	})
}

// MonthPoint 月度趋势中的一个点
type MonthPoint struct {
	Month    string  `json:"month"` // YYYY-MM
	INR      float64 `json:"inr"`
	USD      float64 `json:"usd"`
	TotalINR float64 `json:"total_inr"` // INR + USD×固定汇率
}

// MonthlyTrend 按月汇总捐赠，跨币种按固定汇率折算
func MonthlyTrend(c *gin.Context) {
	var donations []model.Donation
	if err := database.DB.Find(&donations).Error; err != nil {
		log.Error("数据库查询失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	byMonth := map[string]*MonthPoint{}
	for i := range donations {
		d := &donations[i]
		if len(d.Date) < 7 {
			continue
		}
		month := d.Date[:7]
		if !strings.Contains(month, "-") {
			continue
		}
		p, ok := byMonth[month]
		if !ok {
			p = &MonthPoint{Month: month}
			byMonth[month] = p
		}
		switch d.Currency {
		case model.CurrencyUSD:
			p.USD += d.Amount
		default:
			p.INR += d.Amount
		}
		p.TotalINR += d.AmountINR()
	}

	points := make([]MonthPoint, 0, len(byMonth))
	for _, p := range byMonth {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })

	response.Success(c, points)
}
