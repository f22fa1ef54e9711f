package model

type User struct {
	Model
	Name     string     `gorm:"type:varchar(100);not null" json:"name"`
	Email    string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"` // 登录标识，唯一
	Password string     `gorm:"type:varchar(255);" json:"-"`
	Avatar   string     `gorm:"type:varchar(255);" json:"avatar"`
	Role     Role       `gorm:"type:varchar(20);default:'Volunteer';not null" json:"role"`
	Status   UserStatus `gorm:"type:varchar(20);default:'Active';not null" json:"status"`
}
