// Package builtin 实现在进程内直接完成的命令
package builtin

import (
	"os"

	"gocmd/pkg/platform"
)

// 目录和文件的创建权限，实际权限还要受 umask 影响
const (
	DirPerm  os.FileMode = 0777
	FilePerm os.FileMode = 0666
)

// Names 返回所有已知的命令名，rm 只在后面跟 -rf 时才会被执行
func Names() []string {
	return []string{"mkdir", "cd", "touch", "rm"}
}

// Mkdir 创建目录
// 目录已存在、父目录不存在或没有权限时返回错误
func Mkdir(path string) error {
	return os.Mkdir(path, DirPerm)
}

// Cd 改变进程的当前工作目录
func Cd(path string) error {
	return platform.Chdir(path)
}

// Touch 创建文件，文件已存在时清空内容
func Touch(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePerm)
	if err != nil {
		return err
	}
	return file.Close()
}
