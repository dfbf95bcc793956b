package core

import (
	"fmt"
	"path"
	"strings"
)

func NormalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p != "/" && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

func ValidateRoutePath(p string) error {
	if p == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("path must start with /")
	}

	if strings.Contains(p, "?") {
		return fmt.Errorf("path cannot contain query string")
	}

	if strings.Contains(p, "#") {
		return fmt.Errorf("path cannot contain fragment")
	}

	if strings.Contains(p, "..") {
		return fmt.Errorf("path cannot contain parent directory references")
	}

	if strings.Contains(p, "*") {
		return fmt.Errorf("path cannot contain wildcards")
	}

	return nil
}

// ResolvePublicPath maps a request path onto a slash-separated file path
// under dir. The second result is false when the request names the
// directory root, tries to climb out of it, or names a dotfile.
func ResolvePublicPath(dir, requestPath string) (string, bool) {
	for _, seg := range strings.Split(requestPath, "/") {
		if seg == ".." {
			return "", false
		}
	}

	rel := strings.TrimPrefix(path.Clean("/"+requestPath), "/")
	if rel == "" || rel == "." {
		return "", false
	}
	if strings.Contains(rel, "\\") {
		return "", false
	}
	for _, seg := range strings.Split(rel, "/") {
		if strings.HasPrefix(seg, ".") {
			return "", false
		}
	}

	return path.Join(dir, rel), true
}
