package errors

import "fmt"

// suggestionsFor returns the user-facing suggestions for a category.
// The affected path is folded into the wording when known.
func suggestionsFor(category Category, affectedPath string) []string {
	target := "the affected path"
	if affectedPath != "" {
		target = fmt.Sprintf("'%s'", affectedPath)
	}

	switch category {
	case CategoryPermission:
		return []string{
			fmt.Sprintf("Check that you have read access to %s", target),
			"Re-run with a user that can read the directory, or skip it with -I",
		}
	case CategoryPath:
		return []string{
			fmt.Sprintf("Check that %s exists and is spelled correctly", target),
			"Paths with spaces need quoting in most shells",
		}
	case CategoryConnection:
		return []string{
			"Check that the host is reachable and the SSH service is running",
			"Make sure your SSH agent is running or a default key exists in ~/.ssh",
			"Verify the username and port in the sftp:// URL",
		}
	case CategoryExport:
		return []string{
			fmt.Sprintf("Check that %s is writable and has free space", target),
			"Pick an output location outside the tree being walked",
		}
	case CategoryUnknown:
		return nil
	default:
		return nil
	}
}
