// Package platform 管理进程级的当前工作目录
//
// 工作目录是整个进程共享的状态：cd 修改它，之后所有相对路径的操作都基于它。
// 这里把读写集中起来，方便调用方查询，测试时也可以进入指定目录再恢复。
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Getwd 获取当前工作目录
func Getwd() (string, error) {
	return os.Getwd()
}

// Chdir 改变当前工作目录
func Chdir(dir string) error {
	return os.Chdir(dir)
}

// Enter 进入指定目录，返回恢复到原目录的函数
func Enter(dir string) (restore func() error, err error) {
	prev, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("获取当前目录失败: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return nil, err
	}
	return func() error {
		return os.Chdir(prev)
	}, nil
}

// DisplayPath 返回用于提示符显示的路径，home 目录下的路径用 ~ 缩写
func DisplayPath(wd, home string) string {
	if home == "" || wd == "" {
		return filepath.ToSlash(wd)
	}
	if wd == home {
		return "~"
	}
	rel, err := filepath.Rel(home, wd)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(wd)
	}
	return "~/" + filepath.ToSlash(rel)
}
