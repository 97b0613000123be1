package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"gocmd/internal/config"
	"gocmd/internal/executor"
	"gocmd/pkg/platform"
)

// farewell 退出时打印的消息
const farewell = "正在退出... 感谢使用 gocmd！"

// Shell Shell主结构
type Shell struct {
	executor *executor.Executor
	cfg      *config.Config
	reporter *ErrorReporter
	logger   *slog.Logger
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	running  bool
}

// Option Shell选项
type Option func(*Shell)

// WithInput 设置非交互模式下的输入
func WithInput(in io.Reader) Option {
	return func(s *Shell) {
		s.in = in
	}
}

// WithOutput 设置标准输出和错误输出
func WithOutput(out, errOut io.Writer) Option {
	return func(s *Shell) {
		s.out = out
		s.errOut = errOut
	}
}

// New 创建新的Shell实例
func New(cfg *config.Config, opts ...Option) (*Shell, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	s := &Shell{
		cfg:     cfg,
		in:      os.Stdin,
		out:     os.Stdout,
		errOut:  os.Stderr,
		running: true,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logger = slog.New(slog.NewTextHandler(s.errOut, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	s.reporter = NewErrorReporter(s.errOut, "", true)
	s.reporter.SetColor(cfg.Shell.Color)

	ex, err := executor.New(
		executor.WithRemoveCommand(cfg.Executor.RemoveCommand),
		executor.WithLogger(s.logger),
		executor.WithIO(executor.IOBindings{Stdin: s.in, Stdout: s.out, Stderr: s.errOut}),
	)
	if err != nil {
		return nil, err
	}
	s.executor = ex

	return s, nil
}

// Run 运行交互式Shell
func (s *Shell) Run() {
	rlConfig := &readline.Config{
		Prompt:          s.prompt(),
		HistoryFile:     s.cfg.Shell.HistoryFile,
		HistoryLimit:    s.cfg.Shell.HistoryLimit,
		AutoComplete:    NewCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       s.cfg.Shell.ExitKeyword,
	}

	rl, err := readline.NewEx(rlConfig)
	if err != nil {
		// 如果readline初始化失败，回退到简单的bufio.Scanner
		s.logger.Warn("readline unavailable, falling back to plain input", "error", err)
		s.runSimple()
		return
	}
	defer rl.Close()

	for s.running {
		// 工作目录可能已改变
		rl.SetPrompt(s.prompt())

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				// Ctrl+C，继续
				continue
			}
			// EOF或其他错误，退出
			break
		}

		s.ExecuteLine(line)
	}
}

// runSimple 简单的运行模式（当readline不可用时回退）
func (s *Shell) runSimple() {
	scanner := newLineScanner(s.in)

	for s.running {
		fmt.Fprint(s.out, s.prompt())

		if !scanner.Scan() {
			break
		}
		s.ExecuteLine(scanner.Text())
	}
}

// ExecuteScript 执行脚本文件
func (s *Shell) ExecuteScript(scriptPath string) error {
	file, err := os.Open(scriptPath)
	if err != nil {
		return fmt.Errorf("无法打开脚本文件: %w", err)
	}
	defer file.Close()

	s.reporter.SetScript(scriptPath)
	defer s.reporter.SetScript("")

	return s.ExecuteReader(file)
}

// ExecuteReader 从Reader逐行执行命令
// 单条命令失败只报告错误，不会中断后续命令
func (s *Shell) ExecuteReader(reader io.Reader) error {
	scanner := newLineScanner(reader)
	interactive := s.reporter.isInteractive
	s.reporter.isInteractive = false
	defer func() {
		s.reporter.isInteractive = interactive
		s.reporter.SetLineNum(0)
	}()

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// 跳过空行
		if line == "" {
			continue
		}

		// 跳过shebang行（#!/bin/sh 等）
		if lineNum == 1 && strings.HasPrefix(line, "#!") {
			continue
		}

		// 跳过注释行
		if strings.HasPrefix(line, "#") {
			continue
		}

		s.reporter.SetLineNum(lineNum)
		if !s.ExecuteLine(scanner.Text()) {
			return nil
		}
	}

	return scanner.Err()
}

// ExecuteLine 执行一行输入
// 行内用分号分隔的每条命令依次执行，失败的命令报告错误后继续执行下一条。
// 输入为退出关键字时返回 false。
func (s *Shell) ExecuteLine(line string) bool {
	if s.isExit(line) {
		fmt.Fprintln(s.out, farewell)
		s.running = false
		return false
	}

	for _, cmd := range splitCommands(line) {
		if err := s.executor.Execute(cmd); err != nil {
			s.reporter.ReportError(err)
		}
	}
	return true
}

// isExit 判断输入是否为退出关键字，关键字为空时只能通过 EOF 退出
func (s *Shell) isExit(line string) bool {
	keyword := s.cfg.Shell.ExitKeyword
	return keyword != "" && strings.TrimSpace(line) == keyword
}

// newLineScanner 创建按行读取的 Scanner，单行长度不受默认 64KB 缓冲区的限制
func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	return scanner
}

// splitCommands 按分号分割命令
// 只做简单的分隔符扫描，引号内的分号同样会分割
func splitCommands(line string) []string {
	return strings.Split(line, ";")
}

// prompt 获取提示符
func (s *Shell) prompt() string {
	if s.cfg.Shell.Prompt != "" {
		return s.cfg.Shell.Prompt
	}

	// 尝试获取用户名和主机名
	username := os.Getenv("USER")
	if username == "" {
		username = os.Getenv("USERNAME")
	}
	if username == "" {
		username = "user"
	}

	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "host"
	}

	wd, _ := s.executor.Getwd()
	if wd == "" {
		wd = "?"
	}
	home, _ := os.UserHomeDir()

	return fmt.Sprintf("%s@%s:%s$ ", username, hostname, platform.DisplayPath(wd, home))
}
