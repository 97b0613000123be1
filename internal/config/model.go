package config

// Config 程序配置
type Config struct {
	Shell    ShellConfig    `mapstructure:"shell" yaml:"shell"`
	Executor ExecutorConfig `mapstructure:"executor" yaml:"executor"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// ShellConfig 交互式前端配置
type ShellConfig struct {
	Prompt       string `mapstructure:"prompt" yaml:"prompt"`             // 为空时使用 user@host:dir$
	ExitKeyword  string `mapstructure:"exit_keyword" yaml:"exit_keyword"` // 输入这一行时退出
	HistoryFile  string `mapstructure:"history_file" yaml:"history_file"` // 为空时不保存历史
	HistoryLimit int    `mapstructure:"history_limit" yaml:"history_limit"`
	Color        bool   `mapstructure:"color" yaml:"color"` // 错误信息是否着色
}

// ExecutorConfig 执行器配置
type ExecutorConfig struct {
	RemoveCommand string `mapstructure:"remove_command" yaml:"remove_command"` // rm -rf 调用的外部命令
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // debug, info, warn, error
}
