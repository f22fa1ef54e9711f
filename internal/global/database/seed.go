package database

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"ngo-admin-system/internal/model"
	"ngo-admin-system/tools"
)

// 集合名，同时用于变更通知的频道标识
const (
	CollectionUsers     = "users"
	CollectionProjects  = "projects"
	CollectionDonations = "donations"
	CollectionUploads   = "uploads"
	CollectionTasks     = "tasks"
)

// Seed 首次启动时填充演示数据
// 以 seed_marker 表记录已填充过的集合：被清空的集合不会再次填充
func Seed(db *gorm.DB) error {
	if err := seedCollection(db, CollectionUsers, func(tx *gorm.DB) error {
		return tx.Create(seedUsers()).Error
	}); err != nil {
		return err
	}

	var projects []model.Project
	if err := seedCollection(db, CollectionProjects, func(tx *gorm.DB) error {
		projects = seedProjects()
		return tx.Create(&projects).Error
	}); err != nil {
		return err
	}

	if err := seedCollection(db, CollectionDonations, func(tx *gorm.DB) error {
		return tx.Create(seedDonations()).Error
	}); err != nil {
		return err
	}

	if err := seedCollection(db, CollectionUploads, func(tx *gorm.DB) error {
		return tx.Create(seedUploads()).Error
	}); err != nil {
		return err
	}

	return seedCollection(db, CollectionTasks, func(tx *gorm.DB) error {
		// 项目未填充时（标记早已存在）跳过任务填充，避免悬空引用
		if len(projects) < 2 {
			return nil
		}
		return tx.Create(seedTasks(projects[0].ID, projects[1].ID)).Error
	})
}

// seedCollection 在单个事务里完成一个集合的填充与标记
func seedCollection(db *gorm.DB, name string, fill func(tx *gorm.DB) error) error {
	var marker model.SeedMarker
	err := db.Where("collection = ?", name).First(&marker).Error
	if err == nil {
		// 已填充过，清空也不再恢复
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(autoMigrateModelFor(name)).Count(&count).Error; err != nil {
			return err
		}
		// 表里已有数据（旧库升级），只补标记
		if count == 0 {
			if err := fill(tx); err != nil {
				return err
			}
		}
		return tx.Create(&model.SeedMarker{Collection: name}).Error
	})
}

func autoMigrateModelFor(name string) any {
	switch name {
	case CollectionUsers:
		return &model.User{}
	case CollectionProjects:
		return &model.Project{}
	case CollectionDonations:
		return &model.Donation{}
	case CollectionUploads:
		return &model.Upload{}
	case CollectionTasks:
		return &model.Task{}
	}
	return nil
}

func seedUsers() []*model.User {
	// 默认密码仅用于演示环境首次登录
	pwd := tools.PasswordEncrypt("ChangeMe@123")
	return []*model.User{
		{Name: "Alex Ray", Email: "alex.ray@example.com", Avatar: "https://picsum.photos/seed/alex/100/100", Role: model.RoleAdmin, Status: model.StatusActive, Password: pwd},
		{Name: "Jordan Lee", Email: "jordan.lee@example.com", Avatar: "https://picsum.photos/seed/jordan/100/100", Role: model.RoleManager, Status: model.StatusActive, Password: pwd},
		{Name: "Casey Smith", Email: "casey.smith@example.com", Avatar: "https://picsum.photos/seed/casey/100/100", Role: model.RoleVolunteer, Status: model.StatusActive, Password: pwd},
		{Name: "Taylor Green", Email: "taylor.green@example.com", Avatar: "https://picsum.photos/seed/taylor/100/100", Role: model.RoleIntern, Status: model.StatusActive, Password: pwd},
		{Name: "Morgan Brown", Email: "morgan.brown@example.com", Avatar: "https://picsum.photos/seed/morgan/100/100", Role: model.RoleDonor, Status: model.StatusActive, Password: pwd},
		{Name: "Jamie Doe", Email: "jamie.doe@example.com", Avatar: "https://picsum.photos/seed/jamie/100/100", Role: model.RoleAdmin, Status: model.StatusActive, Password: pwd},
		{Name: "Chris Wilson", Email: "chris.w@example.com", Avatar: "https://picsum.photos/seed/chris/100/100", Role: model.RoleManager, Status: model.StatusActive, Password: pwd},
	}
}

func seedProjects() []model.Project {
	return []model.Project{
		{Name: "Clean Water Initiative", Description: "Providing clean and safe drinking water to rural communities.", ImageURL: "https://picsum.photos/seed/water/600/400", Status: model.ProjectOngoing, Initiative: model.InitiativeSustainability, Progress: 75, Budget: 10000},
		{Name: "Education for All", Description: "Building schools and providing educational materials for underprivileged children.", ImageURL: "https://picsum.photos/seed/education/600/400", Status: model.ProjectOngoing, Initiative: model.InitiativeEducational, Progress: 50, Budget: 20000},
		{Name: "Healthcare Access", Description: "Setting up mobile clinics to offer free healthcare services.", ImageURL: "https://picsum.photos/seed/health/600/400", Status: model.ProjectCompleted, Initiative: model.InitiativeHealthcare, Progress: 100, Budget: 15000},
		{Name: "Women Empowerment Program", Description: "Skill development workshops for women.", ImageURL: "https://picsum.photos/seed/women/600/400", Status: model.ProjectPlanning, Initiative: model.InitiativeGenderEquality, Initiative2: model.InitiativeIgniteChange, Progress: 10, Budget: 8000},
	}
}

func seedDonations() []*model.Donation {
	return []*model.Donation{
		{DonorName: "Morgan Brown", DonorEmail: "morgan.brown@example.com", Amount: 5000, Currency: model.CurrencyINR, Date: "2023-10-15", ProjectName: "Clean Water Initiative", ReceiptURL: "#"},
		{DonorName: "John Doe", DonorEmail: "j.doe@example.com", Amount: 100, Currency: model.CurrencyUSD, Date: "2023-10-20", ProjectName: "Education for All"},
		{DonorName: "Jane Smith", DonorEmail: "jane.s@example.com", Amount: 15000, Currency: model.CurrencyINR, Date: "2023-11-05", ProjectName: "Clean Water Initiative"},
		{DonorName: "Morgan Brown", DonorEmail: "morgan.brown@example.com", Amount: 200, Currency: model.CurrencyUSD, Date: "2023-11-12", ProjectName: "Healthcare Access", ReceiptURL: "#"},
		{DonorName: "Peter Jones", DonorEmail: "p.jones@example.com", Amount: 50, Currency: model.CurrencyUSD, Date: "2023-12-01", ProjectName: "Education for All"},
	}
}

func seedUploads() []*model.Upload {
	return []*model.Upload{
		{Name: "Community Meeting", URL: "https://picsum.photos/seed/media1/400/300", UploadedAt: "2023-10-05", Initiative: model.InitiativeRelief},
		{Name: "School Opening", URL: "https://picsum.photos/seed/media2/400/300", UploadedAt: "2023-09-20", Initiative: model.InitiativeEducational},
		{Name: "Clinic Inauguration", URL: "https://picsum.photos/seed/media3/400/300", UploadedAt: "2023-08-15", Initiative: model.InitiativeHealthcare},
		{Name: "Workshop Session", URL: "https://picsum.photos/seed/media4/400/300", UploadedAt: "2023-11-10", Initiative: model.InitiativeGenderEquality},
	}
}

func seedTasks(waterID, eduID uint) []*model.Task {
	return []*model.Task{
		{Title: "Distribute water filters in Village A", ProjectID: waterID, Completed: true},
		{Title: "Conduct survey for new well location", ProjectID: waterID, Completed: false},
		{Title: "Organize book donation drive", ProjectID: eduID, Completed: false},
		{Title: "Prepare weekly progress report", ProjectID: eduID, Completed: true},
	}
}
