package mediastore

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"ngo-admin-system/config"
)

// MediaStore 媒体文件存储
// 小文件可走 SaveFile 落本地目录，常规路径是前端拿预签名 URL 直传 S3

type MediaStore struct {
	SaveDir string // 本地保存目录
	BaseURL string // 文件访问基础URL

	Endpoint        string
	Bucket          string
	Region          string
	AccessKey       string
	SecretAccessKey string
	Prefix          string
	UsePathStyle    bool
}

var instance *MediaStore

// Init 根据配置构建全局实例
func Init() {
	cfg := config.Get().S3
	instance = &MediaStore{
		SaveDir:         "uploads",
		BaseURL:         cfg.BaseURL,
		Endpoint:        cfg.Endpoint,
		Bucket:          cfg.Bucket,
		Region:          cfg.Region,
		AccessKey:       cfg.AccessKey,
		SecretAccessKey: cfg.SecretAccessKey,
		Prefix:          cfg.Prefix,
		UsePathStyle:    cfg.UsePathStyle,
	}
}

// Get 获取全局实例
func Get() *MediaStore {
	if instance == nil {
		Init()
	}
	return instance
}

// SaveFile 保存文件到本地并返回访问URL
func (ms *MediaStore) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	// 打开上传的文件
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	// 确保保存目录存在
	if err := os.MkdirAll(ms.SaveDir, os.ModePerm); err != nil {
		return "", err
	}

	// 生成唯一文件名
	ext := filepath.Ext(fileHeader.Filename)
	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	filePath := filepath.Join(ms.SaveDir, filename)

	// 创建目标文件
	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// 拷贝内容
	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	// 返回文件访问URL
	return ms.BaseURL + "/" + filename, nil
}
