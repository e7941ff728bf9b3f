package filesystem

import (
	"fmt"
)

// Create builds a FileSystem for the given root argument.
// Returns (filesystem, basePath, closer, error).
//   - filesystem: the FileSystem to walk
//   - basePath: the path to start from, stripped of any URL prefix
//   - closer: releases the SFTP connection, or nil for local roots
func Create(root string) (FileSystem, string, func(), error) {
	parsed, err := ParsePath(root)
	if err != nil {
		return nil, "", nil, err
	}

	if !parsed.IsRemote {
		return NewLocalFileSystem(), parsed.LocalPath, nil, nil
	}

	conn, err := Connect(parsed.Host, parsed.Port, parsed.User)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to connect to %s@%s:%d: %w",
			parsed.User, parsed.Host, parsed.Port, err)
	}

	closer := func() {
		_ = conn.Close()
	}

	return NewSFTPFileSystem(conn), parsed.Path, closer, nil
}
