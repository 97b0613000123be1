package executor

import (
	"io"
	"os"
	"os/exec"
)

// IOBindings 子进程的标准输入输出
type IOBindings struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultIOBindings 继承当前进程的标准输入输出
func DefaultIOBindings() IOBindings {
	return IOBindings{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// ChildProcess 一个已启动的外部进程
// 只在启动成功后存在，必须调用 Wait 回收，否则会留下僵尸进程
type ChildProcess struct {
	cmd   *exec.Cmd
	state *os.ProcessState
}

// spawn 启动外部命令
// 启动失败时不返回任何进程引用，调用方也不需要 Wait
func spawn(name string, args []string, bindings IOBindings) (*ChildProcess, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = bindings.Stdin
	cmd.Stdout = bindings.Stdout
	cmd.Stderr = bindings.Stderr

	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &ChildProcess{cmd: cmd}, nil
}

// PID 返回子进程号
func (c *ChildProcess) PID() int {
	return c.cmd.Process.Pid
}

// Wait 阻塞直到子进程退出
// 非零退出码以 *exec.ExitError 的形式返回，进程状态总是会被记录
func (c *ChildProcess) Wait() error {
	err := c.cmd.Wait()
	c.state = c.cmd.ProcessState
	return err
}

// State 返回子进程退出后的状态，Wait 之前为 nil
func (c *ChildProcess) State() *os.ProcessState {
	return c.state
}

// ExitCode 返回退出码，进程尚未回收时返回 -1
func (c *ChildProcess) ExitCode() int {
	if c.state == nil {
		return -1
	}
	return c.state.ExitCode()
}
