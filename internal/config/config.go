package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config 静态导出工具的配置
type Config struct {
	Snapshot  SnapshotConfig  `yaml:"snapshot"`
	Output    OutputConfig    `yaml:"output"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Log       LogConfig       `yaml:"log"`
}

// SnapshotConfig 快照来源，Location 可以是本地路径或 http(s) 地址
type SnapshotConfig struct {
	Location  string  `yaml:"location"`
	Timeout   string  `yaml:"timeout"`
	QPS       float64 `yaml:"qps"`
	UserAgent string  `yaml:"user_agent"`
}

// OutputConfig 输出目录
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// DashboardConfig 渲染相关配置
type DashboardConfig struct {
	Strict        bool              `yaml:"strict"`
	TopN          int               `yaml:"top_n"`
	Categories    map[string]string `yaml:"categories"`
	FallbackStyle string            `yaml:"fallback_style"`
	Palette       []string          `yaml:"palette"`
	SortByScore   bool              `yaml:"sort_by_score"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// 未配置时的默认值
const (
	DefaultLocation  = "data.json"
	DefaultOutputDir = "public"
	DefaultLogLevel  = "info"
)

// LoadConfig 从指定路径加载配置，缺省字段填默认值
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Default 没有配置文件时使用
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Snapshot.Location == "" {
		c.Snapshot.Location = DefaultLocation
	}
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
