package actions

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"taskrun/internal/logger"
)

// Download fetches the content at url and writes it to destPath.
// A non-2xx response is an error; a partially written file is removed so a
// failed download never leaves a truncated artifact behind.
func Download(url, destPath string) error {
	logger.Debug("[DEBUG] Downloading %s to %s\n", url, destPath)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("download of %s failed: HTTP status %d", url, resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(destPath)
		return fmt.Errorf("failed to write %s: %w", destPath, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(destPath)
		return fmt.Errorf("failed to close %s: %w", destPath, err)
	}

	logger.Debug("[DEBUG] Downloaded %s\n", destPath)
	return nil
}
