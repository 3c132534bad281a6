// Package tasks holds the task declarations taskrun executes. This file is
// meant to be edited: add, remove or reorder tasks here and rebuild.
//
// Declaration order is execution order, for apply and rollback alike, so
// tasks that depend on earlier effects (fzf needs the bin directory) must
// be declared after them.
package tasks

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"taskrun/internal/actions"
	"taskrun/internal/task"
)

// RegisterAll declares the built-in task set on the default registry.
// Called once from main before the CLI dispatches.
func RegisterAll() {
	bin := binDir()
	marker := markerPath()

	// bin-dir ensures the user-level bin directory exists. It has no undo:
	// other tools may live in the directory, so rollback leaves it alone.
	task.Register(task.Task{
		Name: "bin-dir",
		When: func() (bool, error) { return !actions.FileExists(bin), nil },
		Do:   func() error { return actions.EnsureDir(bin) },
	})

	// fzf installs the fzf binary from its latest GitHub release.
	task.Register(task.Task{
		Name: "fzf",
		When: func() (bool, error) { return !actions.FileExists(filepath.Join(bin, "fzf")), nil },
		Do:   installFromGitHub("junegunn/fzf", "", "fzf", bin),
		Undo: func() error { return removeIfPresent(filepath.Join(bin, "fzf")) },
	})

	// marker drops a file recording that this machine has been provisioned.
	// No when predicate: rewriting the marker is harmless and keeps its
	// contents current.
	task.Register(task.Task{
		Name: "marker",
		Do: func() error {
			if err := actions.EnsureDir(filepath.Dir(marker)); err != nil {
				return err
			}
			return actions.WriteFileAtomic(marker, []byte("provisioned by taskrun\n"), 0644)
		},
		Undo: func() error { return removeIfPresent(marker) },
	})
}

// installFromGitHub returns a do action that resolves the release asset
// matching the current platform, downloads it, extracts it when it is an
// archive, and installs the named binary into destDir.
func installFromGitHub(repo, tag, binName, destDir string) func() error {
	return func() error {
		pattern := fmt.Sprintf("%s_%s", runtime.GOOS, runtime.GOARCH)
		url, err := actions.ResolveGitHubAsset(repo, tag, pattern)
		if err != nil {
			return err
		}

		tmp, err := os.MkdirTemp("", "taskrun-*")
		if err != nil {
			return err
		}
		defer os.RemoveAll(tmp)

		asset := filepath.Join(tmp, path.Base(url))
		if err := actions.Download(url, asset); err != nil {
			return err
		}

		binary := asset
		if actions.IsArchive(asset) {
			extracted, err := actions.Extract(asset, tmp)
			if err != nil {
				return err
			}
			if binary, err = actions.FindExecutable(extracted, binName); err != nil {
				return err
			}
		}

		_, err = actions.InstallBinary(binary, destDir)
		return err
	}
}

// removeIfPresent deletes path, treating an already-absent file as rolled
// back rather than as an error so rollback stays idempotent too.
func removeIfPresent(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func binDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".local", "bin")
}

func markerPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "taskrun", "provisioned")
}
