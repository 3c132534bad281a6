package actions

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"taskrun/internal/logger"
)

// apiBaseURL is the GitHub API endpoint. Tests point it at a local server.
var apiBaseURL = "https://api.github.com"

// Release represents the subset of a GitHub release JSON response the
// resolver needs.
type Release struct {
	TagName string `json:"tag_name"` // The release tag (e.g., v1.0.0)
	Assets  []struct {
		Name               string `json:"name"`                 // Asset filename
		BrowserDownloadURL string `json:"browser_download_url"` // Direct download URL for the asset
	} `json:"assets"`
}

// ResolveGitHubAsset looks up a release of repo (owner/name form) and
// returns the download URL of the first asset whose filename contains
// pattern, case-insensitively. An empty tag resolves the latest release.
func ResolveGitHubAsset(repo, tag, pattern string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", apiBaseURL, repo)
	if tag != "" {
		url = fmt.Sprintf("%s/repos/%s/releases/tags/%s", apiBaseURL, repo, tag)
	}
	logger.Debug("[DEBUG] Fetching GitHub release from URL: %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("HTTP GET error fetching release for %s: %w", repo, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GitHub release fetch failed for %s@%s: HTTP status %d", repo, tag, resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("failed to decode GitHub release JSON for %s: %w", repo, err)
	}
	logger.Debug("[DEBUG] Release tag %s with %d assets\n", release.TagName, len(release.Assets))

	want := strings.ToLower(pattern)
	for _, asset := range release.Assets {
		if strings.Contains(strings.ToLower(asset.Name), want) {
			logger.Debug("[DEBUG] Matched asset: %s\n", asset.Name)
			return asset.BrowserDownloadURL, nil
		}
	}
	return "", fmt.Errorf("no asset matching %q in release %s of %s", pattern, release.TagName, repo)
}
