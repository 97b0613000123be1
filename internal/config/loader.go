// Package config 负责加载配置文件
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix 环境变量前缀，例如 GOCMD_SHELL_PROMPT 覆盖 shell.prompt
const EnvPrefix = "GOCMD"

// Load 加载配置
// configPath 为空时在 $HOME/.config/gocmd 和当前目录搜索 gocmd.yaml，找不到就使用默认值。
// 显式指定的文件不存在时返回错误。
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// 1. 默认值
	setDefaults(v)

	// 2. 配置文件搜索规则
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("gocmd")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "gocmd"))
		}
		v.AddConfigPath(".")
	}

	// 3. 环境变量覆盖
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	// 5. 反序列化到结构体
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	cfg.Shell.HistoryFile = expandHome(cfg.Shell.HistoryFile)

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// 默认值都是基本类型，不会解析失败
	_ = v.Unmarshal(&cfg)
	cfg.Shell.HistoryFile = expandHome(cfg.Shell.HistoryFile)
	return &cfg
}

// setDefaults 定义配置的默认值
func setDefaults(v *viper.Viper) {
	v.SetDefault("shell.prompt", "")
	v.SetDefault("shell.exit_keyword", "exit")
	v.SetDefault("shell.history_file", "~/.gocmd_history")
	v.SetDefault("shell.history_limit", 1000)
	v.SetDefault("shell.color", true)

	v.SetDefault("executor.remove_command", "rm")

	v.SetDefault("log.level", "warn")
}

// expandHome 展开开头的 ~
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// SlogLevel 把配置中的日志级别转换为 slog.Level，无法识别时使用 warn
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelWarn
	}
	return level
}

// YAML 以 YAML 格式输出当前配置
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
