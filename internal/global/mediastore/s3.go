package mediastore

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var s3Client *s3.Client

// InitS3 初始化 S3 客户端，兼容 MinIO 等自建对象存储（自定义 endpoint + path style）
func (ms *MediaStore) InitS3(ctx context.Context) error {
	if ms.AccessKey == "" || ms.SecretAccessKey == "" {
		return fmt.Errorf("S3 凭证未配置")
	}

	region := ms.Region
	if region == "" {
		region = "us-east-1"
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(ms.AccessKey, ms.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return fmt.Errorf("加载 S3 配置失败: %w", err)
	}

	s3Client = s3.NewFromConfig(cfg, func(o *s3.Options) {
		if ms.Endpoint != "" {
			o.BaseEndpoint = &ms.Endpoint
		}
		o.UsePathStyle = ms.UsePathStyle
	})
	return nil
}
