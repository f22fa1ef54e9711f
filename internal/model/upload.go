package model

// Upload 媒体素材记录，文件本体存对象存储，这里只存元数据
type Upload struct {
	Model
	Name        string     `gorm:"type:varchar(100);not null" json:"name"`         // 展示名称
	URL         string     `gorm:"type:varchar(255);not null" json:"url"`          // 文件访问URL
	Description string     `gorm:"type:varchar(500);" json:"description"`          // 素材描述
	Initiative  Initiative `gorm:"type:varchar(50);not null" json:"initiative"`    // 公益方向（必选）
	Initiative2 Initiative `gorm:"type:varchar(50);" json:"initiative2,omitempty"` // 第二公益方向（可选）
	UploadedAt  string     `gorm:"type:varchar(20);not null" json:"uploaded_at"`   // 上传日期 YYYY-MM-DD
}
