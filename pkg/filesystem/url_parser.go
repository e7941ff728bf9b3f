package filesystem

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// defaultSFTPPort is used when an sftp:// URL carries no explicit port.
const defaultSFTPPort = 22

// ParsedPath represents either a local path or an SFTP URL.
type ParsedPath struct {
	IsRemote bool

	// For local paths
	LocalPath string

	// For SFTP paths
	Host string
	Port int
	User string
	Path string // Remote path
}

// ParsePath parses a root argument, detecting whether it's a local path
// or an SFTP URL of the form sftp://user@host[:port]/path.
// Path conventions for remote roots:
//   - sftp://joe@host/data   → "data", relative to the login home
//   - sftp://joe@host//var   → "/var", absolute
//   - sftp://joe@host        → ".", the login home itself
func ParsePath(root string) (*ParsedPath, error) {
	if strings.HasPrefix(root, "sftp://") {
		return parseSFTPURL(root)
	}

	return &ParsedPath{
		IsRemote:  false,
		LocalPath: root,
	}, nil
}

func parseSFTPURL(sftpURL string) (*ParsedPath, error) {
	parsed, err := url.Parse(sftpURL)
	if err != nil {
		return nil, fmt.Errorf("invalid SFTP URL: %w", err)
	}

	if parsed.Scheme != "sftp" {
		return nil, fmt.Errorf("expected sftp:// scheme, got %s://", parsed.Scheme)
	}

	if parsed.User == nil || parsed.User.Username() == "" {
		return nil, fmt.Errorf("SFTP URL must include a username (sftp://user@host/path)")
	}

	host := parsed.Hostname()
	if host == "" {
		return nil, fmt.Errorf("SFTP URL must include a host")
	}

	port := defaultSFTPPort
	if portStr := parsed.Port(); portStr != "" {
		port, err = strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid port number: %w", err)
		}
	}

	remotePath := parsed.Path
	switch {
	case remotePath == "" || remotePath == "/":
		remotePath = "."
	case strings.HasPrefix(remotePath, "//"):
		// Absolute path: strip one slash
		remotePath = remotePath[1:]
	default:
		// Relative to home: strip the leading slash
		remotePath = strings.TrimPrefix(remotePath, "/")
	}

	return &ParsedPath{
		IsRemote: true,
		Host:     host,
		Port:     port,
		User:     parsed.User.Username(),
		Path:     remotePath,
	}, nil
}
