package model

// Task 项目任务，当前只读为主
type Task struct {
	Model
	Title     string `gorm:"type:varchar(200);not null" json:"title"`
	ProjectID uint   `gorm:"not null;index" json:"project_id"`
	Completed bool   `gorm:"default:false;not null" json:"completed"`
}
