package model

// Currency 捐赠币种
type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
)

func (c Currency) Valid() bool {
	return c == CurrencyINR || c == CurrencyUSD
}

// USDToINRRate 跨币种汇总使用的固定汇率
const USDToINRRate = 80

// Donation 捐赠记录，一经录入不可修改或删除
// ProjectName 与项目表按名称文本关联（项目改名会使捐赠失联，属已知约束）
type Donation struct {
	Model
	DonorName   string   `gorm:"type:varchar(100);not null" json:"donor_name" excel:"捐赠人"`
	DonorEmail  string   `gorm:"type:varchar(255);not null" json:"donor_email" excel:"邮箱"`
	Mobile      string   `gorm:"type:varchar(20);" json:"mobile" excel:"手机号"`
	PAN         string   `gorm:"type:varchar(20);" json:"pan" excel:"PAN"`
	Aadhaar     string   `gorm:"type:varchar(20);" json:"aadhaar" excel:"Aadhaar"`
	DOB         string   `gorm:"type:varchar(20);" json:"dob" excel:"-"`
	Country     string   `gorm:"type:varchar(50);" json:"country" excel:"国家"`
	State       string   `gorm:"type:varchar(50);" json:"state" excel:"-"`
	City        string   `gorm:"type:varchar(50);" json:"city" excel:"-"`
	PIN         string   `gorm:"type:varchar(10);" json:"pin" excel:"-"`
	Address     string   `gorm:"type:varchar(255);" json:"address" excel:"-"`
	Amount      float64  `gorm:"type:decimal(14,2);not null" json:"amount" excel:"金额"` // 必须为正
	Currency    Currency `gorm:"type:varchar(5);not null" json:"currency" excel:"币种"`
	Date        string   `gorm:"type:varchar(20);not null" json:"date" excel:"日期"` // YYYY-MM-DD
	ProjectName string   `gorm:"type:varchar(100);not null" json:"project" excel:"项目"`
	ReceiptURL  string   `gorm:"type:varchar(255);" json:"receipt_url,omitempty" excel:"-"`
}

// AmountINR 折算为 INR 的金额，USD 按固定汇率换算
func (d *Donation) AmountINR() float64 {
	if d.Currency == CurrencyUSD {
		return d.Amount * USDToINRRate
	}
	return d.Amount
}
