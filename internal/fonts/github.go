package fonts

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"keycapgen/internal/logger"
)

// githubRelease is the slice of the GitHub release JSON response we need.
type githubRelease struct {
	TagName string `json:"tag_name"`
	Assets  []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// archiveExts are the asset formats the extractor can open, in preference
// order. Font releases almost always ship a plain zip.
var archiveExts = []string{".zip", ".tar.gz", ".tgz", ".tar.xz", ".tar.bz2", ".tar", ".7z", ".ttf", ".otf"}

// resolveAsset fetches the release metadata for repo@tag and returns the name
// and download URL of the first asset in a format we can handle.
func resolveAsset(repo, tag string) (name, url string, err error) {
	apiURL := fmt.Sprintf("https://api.github.com/repos/%s/releases/tags/%s", repo, tag)
	logger.Debug("[DEBUG] Fetching GitHub release from URL: %s\n", apiURL)

	resp, err := http.Get(apiURL)
	if err != nil {
		return "", "", fmt.Errorf("HTTP GET error fetching release %s@%s: %w", repo, tag, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close response body: %s\n", cerr)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("GitHub release %s@%s: unexpected status %s", repo, tag, resp.Status)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", "", fmt.Errorf("decoding release %s@%s: %w", repo, tag, err)
	}

	for _, ext := range archiveExts {
		for _, asset := range release.Assets {
			if strings.HasSuffix(asset.Name, ext) {
				return asset.Name, asset.BrowserDownloadURL, nil
			}
		}
	}
	return "", "", fmt.Errorf("no usable asset in release %s@%s", repo, tag)
}

// downloadFile downloads the content at url into destPath.
func downloadFile(url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close response body: %s\n", cerr)
		}
	}()

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close destination file: %s\n", cerr)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write response to file: %w", err)
	}

	logger.Debug("[DEBUG] Downloaded font asset to: %s\n", destPath)
	return nil
}
