package actions

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"taskrun/internal/logger"
)

// FileExists reports whether path exists. Tasks use this in When
// predicates to keep apply idempotent.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CommandExists reports whether an executable with the given name can be
// found on PATH.
func CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// EnsureDir creates the directory at path, including parents, if it does
// not already exist.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// WriteFileAtomic writes data to path by writing a temporary file in the
// same directory and renaming it into place, so readers never observe a
// half-written file.
func WriteFileAtomic(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to rename %s to %s: %w", tmpName, path, err)
	}
	return nil
}

// InstallBinary copies the file at src into destDir with mode 0755 and
// returns the installed path. The destination directory is created if
// needed.
func InstallBinary(src, destDir string) (string, error) {
	if err := EnsureDir(destDir); err != nil {
		return "", err
	}
	dst := filepath.Join(destDir, filepath.Base(src))

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return "", fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", dst, err)
	}

	logger.Debug("[DEBUG] Installed binary %s\n", dst)
	return dst, nil
}

// FindExecutable locates an executable file named with the given prefix
// under root. When root is itself a regular file it is returned directly,
// which covers archives that contain a single top-level binary.
func FindExecutable(root, name string) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return root, nil
	}

	var found string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || found != "" || d.IsDir() {
			return err
		}
		fi, err := d.Info()
		if err != nil {
			return nil
		}
		base := filepath.Base(path)
		if base != name && !hasPrefix(base, name) {
			return nil
		}
		if fi.Mode().IsRegular() && fi.Mode().Perm()&0111 != 0 {
			logger.Debug("[DEBUG] Found executable: %s\n", path)
			found = path
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if found == "" {
		return "", fmt.Errorf("no executable named %q found under %s", name, root)
	}
	return found, nil
}

func hasPrefix(base, name string) bool {
	return len(base) > len(name) && base[:len(name)] == name
}
