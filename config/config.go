package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Log      LogConfig      `mapstructure:"log"`
	Sentry   SentryConfig   `mapstructure:"sentry"`
	Trace    TraceConfig    `mapstructure:"trace"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug / release / test
}

// DatabaseConfig 数据库配置，driver 支持 postgres / sqlite
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
	// sqlite 时的文件路径，":memory:" 表示内存库
	Path string `mapstructure:"path"`
}

// RedisConfig 缓存配置
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// 商品缓存过期秒数
	ProductTTL int `mapstructure:"product_ttl"`
}

// JWTConfig 令牌配置
type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	ExpireHour int    `mapstructure:"expire_hour"`
}

// StorageConfig 商品图片存储配置
type StorageConfig struct {
	ImageDir         string `mapstructure:"image_dir"`
	MaxImagesPerItem int    `mapstructure:"max_images_per_item"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// SentryConfig 异常上报，DSN 为空则不启用
type SentryConfig struct {
	DSN string `mapstructure:"dsn"`
}

// TraceConfig OTLP 上报，Endpoint 为空则不启用
type TraceConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

// Load 读取 config.yaml，环境变量以 MALL_ 前缀覆盖
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("MALL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "go-mall.db")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.product_ttl", 300)
	v.SetDefault("jwt.secret", "dev-secret")
	v.SetDefault("jwt.expire_hour", 72)
	v.SetDefault("storage.image_dir", "uploads/images")
	v.SetDefault("storage.max_images_per_item", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("trace.service_name", "go-mall")

	if err := v.ReadInConfig(); err != nil {
		// 配置文件可缺省，全部走默认值 + 环境变量
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
