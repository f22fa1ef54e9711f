package model

// ProjectStatus 项目状态
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "Planning"
	ProjectOngoing   ProjectStatus = "Ongoing"
	ProjectCompleted ProjectStatus = "Completed"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPlanning, ProjectOngoing, ProjectCompleted:
		return true
	}
	return false
}

type Project struct {
	Model
	Name        string        `gorm:"type:varchar(100);not null" json:"name"`              // 项目名称
	Description string        `gorm:"type:varchar(500);" json:"description"`               // 项目描述
	ImageURL    string        `gorm:"type:varchar(255);" json:"image_url"`                 // 项目封面URL，缺省时按名称生成
	Status      ProjectStatus `gorm:"type:varchar(20);default:'Planning'" json:"status"`   // 项目状态
	Initiative  Initiative    `gorm:"type:varchar(50);not null" json:"initiative"`         // 公益方向（必选）
	Initiative2 Initiative    `gorm:"type:varchar(50);" json:"initiative2,omitempty"`      // 第二公益方向（可选）
	Progress    int           `gorm:"default:0;not null" json:"progress"`                  // 进度 0-100
	Budget      float64       `gorm:"type:decimal(14,2);default:0;not null" json:"budget"` // 预算（INR），非负
}
