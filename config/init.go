package config

import (
	"ngo-admin-system/tools"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var instance *Config

// Get 获取全局配置，未初始化时先加载
func Get() *Config {
	if instance == nil {
		Init()
	}
	return instance
}

// Init 加载配置：config.yaml 为基础，环境变量覆盖
// config.yaml 不存在时仅使用默认值 + 环境变量（测试场景）
func Init() {
	_ = godotenv.Load()

	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err == nil {
		tools.PanicOnErr(v.Unmarshal(cfg))
	}

	tools.PanicOnErr(envconfig.Process("ngo", cfg))

	instance = cfg
}

func defaultConfig() *Config {
	return &Config{
		Host:   "0.0.0.0",
		Port:   "8080",
		Prefix: "api",
		Mode:   ModeDebug,
		JWT: JWT{
			AccessSecret: "ngo-admin-dev-secret",
			AccessExpire: 7 * 24 * 3600,
		},
		Log: Log{
			Level:      "info",
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     30,
		},
		Redis: Redis{
			Host: "127.0.0.1",
			Port: "6379",
		},
	}
}
