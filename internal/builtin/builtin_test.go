package builtin

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestMkdir(t *testing.T) {
	chdirTest(t, t.TempDir())

	err := Mkdir("gocmd_test_mkdir")
	if err != nil {
		t.Errorf("mkdir命令执行失败: %v", err)
	}

	info, err := os.Stat("gocmd_test_mkdir")
	if err != nil || !info.IsDir() {
		t.Error("目录未创建")
	}
}

func TestMkdirExisting(t *testing.T) {
	chdirTest(t, t.TempDir())

	if err := Mkdir("d"); err != nil {
		t.Fatalf("第一次mkdir失败: %v", err)
	}
	err := Mkdir("d")
	if !errors.Is(err, fs.ErrExist) {
		t.Errorf("第二次mkdir期望 ErrExist，得到 %v", err)
	}
}

func TestMkdirMissingParent(t *testing.T) {
	chdirTest(t, t.TempDir())

	if err := Mkdir(filepath.Join("no", "such", "parent")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("期望 ErrNotExist，得到 %v", err)
	}
}

func TestCd(t *testing.T) {
	dir := t.TempDir()
	chdirTest(t, dir)

	if err := os.Mkdir("sub", 0755); err != nil {
		t.Fatal(err)
	}
	if err := Cd("sub"); err != nil {
		t.Fatalf("cd命令执行失败: %v", err)
	}

	// 相对路径基于新的工作目录
	if err := os.WriteFile("marker", nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "sub", "marker")); err != nil {
		t.Errorf("cd 之后相对路径没有指向新目录: %v", err)
	}
}

func TestCdErrors(t *testing.T) {
	chdirTest(t, t.TempDir())

	if err := Cd("missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("cd 到不存在的目录期望 ErrNotExist，得到 %v", err)
	}

	if err := os.WriteFile("file", nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := Cd("file"); err == nil {
		t.Error("cd 到普通文件应该返回错误")
	}
}

func TestTouch(t *testing.T) {
	chdirTest(t, t.TempDir())

	err := Touch("gocmd_test_touch.txt")
	if err != nil {
		t.Errorf("touch命令执行失败: %v", err)
	}

	if _, err := os.Stat("gocmd_test_touch.txt"); os.IsNotExist(err) {
		t.Error("文件未创建")
	}
}

func TestTouchTruncates(t *testing.T) {
	chdirTest(t, t.TempDir())

	if err := os.WriteFile("f.txt", []byte("old content"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Touch("f.txt"); err != nil {
		t.Fatalf("touch命令执行失败: %v", err)
	}

	info, err := os.Stat("f.txt")
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("touch 应该清空已有文件，大小为 %d", info.Size())
	}
}

func TestTouchMissingDir(t *testing.T) {
	chdirTest(t, t.TempDir())

	if err := Touch(filepath.Join("missing", "f.txt")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("期望 ErrNotExist，得到 %v", err)
	}
}

func TestNames(t *testing.T) {
	want := map[string]bool{"mkdir": true, "cd": true, "touch": true, "rm": true}
	names := Names()
	if len(names) != len(want) {
		t.Fatalf("期望 %d 个命令，得到 %v", len(want), names)
	}
	for _, n := range names {
		if !want[n] {
			t.Errorf("未知的命令名 %q", n)
		}
	}
}
