// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ghsync

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/matt-FFFFFF/alias/internal/ctxlog"
	"github.com/matt-FFFFFF/alias/internal/settings"
)

// DefaultMessage is the commit message used when push is given none.
const DefaultMessage = "chore(config): update alias config"

const encodingBase64 = "base64"

var (
	// ErrMissingToken is returned by Push when no token could be found.
	ErrMissingToken = errors.New("Missing GitHub token. Set A_GITHUB_TOKEN/GITHUB_TOKEN/GH_TOKEN or login via gh/git.") //nolint:staticcheck
	// ErrQuery is returned by Push when the existing file cannot be looked up.
	ErrQuery = errors.New("failed to query existing file")
	// ErrStatus is returned when the API answers with an unexpected status.
	ErrStatus = errors.New("GitHub API returned an unexpected status")
	// ErrResponse is returned when the API response cannot be understood.
	ErrResponse = errors.New("failed to parse GitHub response")
	// ErrEncoding is returned when the remote content is not base64 encoded.
	ErrEncoding = errors.New("unsupported encoding from GitHub")
)

// Client talks to the GitHub contents API for a single file.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	Repo      string
	Branch    string
	Path      string
	UserAgent string
	Token     string
}

// New creates a client for the file described by s. token may be empty for pulls of public repositories.
func New(s settings.Sync, token string) *Client {
	hc := cleanhttp.DefaultClient()
	hc.Timeout = s.Timeout.Duration

	return &Client{
		HTTP:      hc,
		BaseURL:   strings.TrimRight(s.APIURL, "/"),
		Repo:      s.Repo,
		Branch:    s.Branch,
		Path:      s.Path,
		UserAgent: s.UserAgent,
		Token:     token,
	}
}

// BlobURL is the web address of the synced file.
func (c *Client) BlobURL() string {
	return fmt.Sprintf("https://github.com/%s/blob/%s/%s", c.Repo, c.Branch, c.Path)
}

type contentsResponse struct {
	SHA      string `json:"sha"`
	Encoding string `json:"encoding"`
	Content  string `json:"content"`
}

type putRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
	SHA     string `json:"sha,omitempty"`
}

// Push uploads content to the repository, creating or updating the file.
func (c *Client) Push(ctx context.Context, content []byte, message string) error {
	if c.Token == "" {
		return ErrMissingToken
	}

	if message == "" {
		message = DefaultMessage
	}

	sha, err := c.currentSHA(ctx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(putRequest{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(content),
		Branch:  c.Branch,
		SHA:     sha,
	})
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodPut, c.contentsURL(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	ctxlog.Debug(ctx, "github put", "status", resp.StatusCode, "sha", sha)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("%w: status %d", ErrStatus, resp.StatusCode)
	}

	return nil
}

// Pull downloads the file content.
func (c *Client) Pull(ctx context.Context) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, c.contentsURL()+"?ref="+url.QueryEscape(c.Branch), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	ctxlog.Debug(ctx, "github get", "status", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrStatus, resp.StatusCode)
	}

	var cr contentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, errors.Join(ErrResponse, err)
	}

	if cr.Encoding != encodingBase64 {
		return nil, fmt.Errorf("%w: %q", ErrEncoding, cr.Encoding)
	}

	data, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(cr.Content, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}

	return data, nil
}

// currentSHA returns the blob sha of the remote file, or "" when it does not exist yet.
func (c *Client) currentSHA(ctx context.Context) (string, error) {
	resp, err := c.do(ctx, http.MethodGet, c.contentsURL()+"?ref="+url.QueryEscape(c.Branch), nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close() //nolint:errcheck

	switch resp.StatusCode {
	case http.StatusOK:
		var cr contentsResponse
		if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
			return "", errors.Join(ErrResponse, err)
		}

		return cr.SHA, nil
	case http.StatusNotFound:
		return "", nil
	}

	return "", fmt.Errorf("%w: status %d", ErrQuery, resp.StatusCode)
}

func (c *Client) contentsURL() string {
	return fmt.Sprintf("%s/repos/%s/contents/%s", c.BaseURL, c.Repo, c.Path)
}

func (c *Client) do(ctx context.Context, method, u string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	ctxlog.Debug(ctx, "github request", "method", method, "url", u)

	return c.HTTP.Do(req)
}
