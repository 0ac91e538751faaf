// Package selfupdate checks GitHub releases for a newer version.
package selfupdate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

var (
	// ErrDevBuild is returned when checking from a non-release build.
	ErrDevBuild = errors.New("cannot check updates for a development build")
)

const defaultAPIBaseURL = "https://api.github.com/repos"

// Checker queries the GitHub releases API for the latest tag.
type Checker struct {
	owner      string
	repo       string
	apiBaseURL string
	client     *http.Client
}

// NewChecker creates a Checker for owner/repo.
func NewChecker(owner, repo string) *Checker {
	return &Checker{
		owner:      owner,
		repo:       repo,
		apiBaseURL: defaultAPIBaseURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// CheckResult describes the outcome of an update check.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
}

// Check fetches the latest release tag and compares it against version.
// Both sides are normalized to a leading "v" before the semver compare.
func (c *Checker) Check(ctx context.Context, version string) (*CheckResult, error) {
	if version == "(devel)" {
		return nil, ErrDevBuild
	}

	latest, err := c.latestTag(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}

	cur := normalizeTag(version)
	lat := normalizeTag(latest)
	if !semver.IsValid(cur) {
		return nil, fmt.Errorf("current version %q is not valid semver", version)
	}
	if !semver.IsValid(lat) {
		return nil, fmt.Errorf("release tag %q is not valid semver", latest)
	}

	return &CheckResult{
		CurrentVersion:  version,
		LatestVersion:   latest,
		UpdateAvailable: semver.Compare(lat, cur) > 0,
	}, nil
}

func (c *Checker) latestTag(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/%s/%s/releases/latest",
		strings.TrimRight(c.apiBaseURL, "/"), c.owner, c.repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(body, &release); err != nil {
		return "", fmt.Errorf("decode release: %w", err)
	}
	if release.TagName == "" {
		return "", errors.New("release has no tag name")
	}
	return release.TagName, nil
}

func normalizeTag(tag string) string {
	if strings.HasPrefix(tag, "v") {
		return tag
	}
	return "v" + tag
}
