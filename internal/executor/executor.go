// Package executor 根据命令名把参数序列分派到具体的动作
package executor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"

	"gocmd/internal/builtin"
	"gocmd/internal/lexer"
	"gocmd/pkg/platform"
)

// DefaultRemoveCommand 递归删除使用的外部命令
const DefaultRemoveCommand = "rm"

// CommandKind 命令分类
type CommandKind int

const (
	CommandUnknown   CommandKind = iota // 未知命令，直接忽略
	CommandMkdir                        // mkdir <path>
	CommandCd                           // cd <path>
	CommandTouch                        // touch <path>
	CommandRemoveAll                    // rm -rf <path>
)

// String 返回命令分类的名字
func (k CommandKind) String() string {
	switch k {
	case CommandMkdir:
		return "mkdir"
	case CommandCd:
		return "cd"
	case CommandTouch:
		return "touch"
	case CommandRemoveAll:
		return "rm -rf"
	default:
		return "unknown"
	}
}

// Executor 执行器
// 除了进程的工作目录之外不保存任何跨命令的状态
type Executor struct {
	removeCommand string
	io            IOBindings
	logger        *slog.Logger
	startDir      string
	restore       func() error // 恢复到进入起始目录之前的目录
}

// Option 执行器选项
type Option func(*Executor)

// WithRemoveCommand 设置递归删除使用的外部命令
func WithRemoveCommand(name string) Option {
	return func(e *Executor) {
		if name != "" {
			e.removeCommand = name
		}
	}
}

// WithIO 设置子进程的标准输入输出
func WithIO(bindings IOBindings) Option {
	return func(e *Executor) {
		e.io = bindings
	}
}

// WithLogger 设置日志记录器
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithStartDir 创建执行器时先进入指定目录
func WithStartDir(dir string) Option {
	return func(e *Executor) {
		e.startDir = dir
	}
}

// New 创建新的执行器
func New(opts ...Option) (*Executor, error) {
	e := &Executor{
		removeCommand: DefaultRemoveCommand,
		io:            DefaultIOBindings(),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.startDir != "" {
		restore, err := platform.Enter(e.startDir)
		if err != nil {
			return nil, fmt.Errorf("进入起始目录 %s 失败: %w", e.startDir, err)
		}
		e.restore = restore
	}

	return e, nil
}

// Getwd 返回当前工作目录
func (e *Executor) Getwd() (string, error) {
	return platform.Getwd()
}

// Reset 回到使用 WithStartDir 之前的工作目录，没有设置起始目录时什么都不做
func (e *Executor) Reset() error {
	if e.restore == nil {
		return nil
	}
	restore := e.restore
	e.restore = nil
	return restore()
}

// Execute 切分并执行一条命令
func (e *Executor) Execute(command string) error {
	args, open := lexer.TokenizeWithState(command)
	if open {
		e.logger.Debug("unterminated quote", "command", command)
	}
	return e.Dispatch(args)
}

// classify 根据命令名判断命令类型，按顺序第一个匹配的生效
func classify(args lexer.ArgumentVector) CommandKind {
	switch args.Name() {
	case "mkdir":
		return CommandMkdir
	case "cd":
		return CommandCd
	case "touch":
		return CommandTouch
	case "rm":
		if args.Arg(1) == "-rf" {
			return CommandRemoveAll
		}
	}
	return CommandUnknown
}

// Dispatch 执行一条已经切分好的命令
// 返回 nil 表示成功或命令未知，否则返回 *ExecutionError
func (e *Executor) Dispatch(args lexer.ArgumentVector) error {
	kind := classify(args)
	e.logger.Debug("dispatch", "kind", kind, "args", args.Args())

	switch kind {
	case CommandMkdir:
		return e.runBuiltin(args, builtin.Mkdir)
	case CommandCd:
		return e.runBuiltin(args, builtin.Cd)
	case CommandTouch:
		return e.runBuiltin(args, builtin.Touch)
	case CommandRemoveAll:
		return e.removeAll(args)
	default:
		return nil
	}
}

// runBuiltin 执行需要一个路径参数的内置命令
func (e *Executor) runBuiltin(args lexer.ArgumentVector, fn func(path string) error) error {
	name := args.Name()
	if args.Len() < 2 {
		return newExecutionError(ExecutionErrorTypeSyntax, "缺少操作数", name, nil, nil)
	}

	if err := fn(args.Arg(1)); err != nil {
		return newExecutionError(ExecutionErrorTypeResource, "", name, args.Args()[1:], err)
	}
	return nil
}

// removeAll 启动外部命令递归删除，并等待它结束
// 子进程的退出码只记录日志，不作为错误返回
func (e *Executor) removeAll(args lexer.ArgumentVector) error {
	if args.Len() < 3 {
		return newExecutionError(ExecutionErrorTypeSyntax, "缺少目标路径", "rm", []string{"-rf"}, nil)
	}

	target := args.Arg(2)
	child, err := spawn(e.removeCommand, []string{"-rf", target}, e.io)
	if err != nil {
		return newExecutionError(ExecutionErrorTypeSpawn, "", e.removeCommand, []string{"-rf", target}, err)
	}
	e.logger.Debug("spawned", "command", e.removeCommand, "pid", child.PID(), "target", target)

	var exitErr *exec.ExitError
	if err := child.Wait(); err != nil && !errors.As(err, &exitErr) {
		e.logger.Warn("wait failed", "command", e.removeCommand, "pid", child.PID(), "error", err)
	}
	e.logger.Debug("child exited", "pid", child.PID(), "code", child.ExitCode())

	return nil
}
