package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gocmd/internal/config"
	"gocmd/internal/shell"
)

var (
	cfgFile    string
	logLevel   string
	commandStr string
	scriptFile string
)

var rootCmd = &cobra.Command{
	Use:   "gocmd [脚本文件]",
	Short: "gocmd - 极简命令解释器",
	Long: `gocmd 是一个极简的交互式命令解释器。

支持的命令：
  mkdir <目录>    创建目录
  cd <目录>       切换工作目录
  touch <文件>    创建或清空文件
  rm -rf <路径>   调用外部 rm 递归删除

同一行中的多条命令用 ; 分隔。`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute 执行根命令
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件 (默认: ~/.config/gocmd/gocmd.yaml 或 ./gocmd.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "日志级别 (debug, info, warn, error)")
	rootCmd.Flags().StringVarP(&commandStr, "command", "c", "", "执行命令字符串")
	rootCmd.Flags().StringVarP(&scriptFile, "file", "f", "", "执行脚本文件")
	rootCmd.MarkFlagsMutuallyExclusive("command", "file")
}

// runRoot 根据参数选择执行方式：命令字符串、脚本文件或交互模式
func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sh, err := shell.New(cfg)
	if err != nil {
		return fmt.Errorf("初始化失败: %w", err)
	}

	// 执行命令字符串
	if cmd.Flags().Changed("command") {
		sh.ExecuteLine(commandStr)
		return nil
	}

	// 执行脚本文件，-f 优先于位置参数
	if scriptFile == "" && len(args) > 0 {
		scriptFile = args[0]
	}
	if scriptFile != "" {
		return sh.ExecuteScript(scriptFile)
	}

	// 交互式模式
	sh.Run()
	return nil
}

// loadConfig 加载配置并应用命令行覆盖
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "gocmd: 错误: %v\n", err)
}
