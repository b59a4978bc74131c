package misc

import (
	"bytes"
	"fmt"
	"os/exec"
)

// sizeUnits orders the binary prefixes applied by HumanSize.
// Each step divides by 1024.
var sizeUnits = [...]string{"", "K", "M", "G", "T", "P", "E", "Z"}

// HumanSize converts a byte count into a short human readable string
// using binary prefixes:
//
//	HumanSize(0)        == "0 B"
//	HumanSize(1_000_000) == "977 KB"
//	HumanSize(100_000_000_000_000) == "91 TB"
//
// The count is rounded to the nearest whole unit. HumanSize panics if
// num is negative; sizes cannot be negative, so that is a caller bug
// rather than a runtime condition.
func HumanSize(num int64) string {
	if num < 0 {
		panic("misc: negative size")
	}
	n := float64(num)
	for _, unit := range sizeUnits {
		if n < 1024 {
			return fmt.Sprintf("%.0f %sB", n, unit)
		}
		n /= 1024
	}
	return fmt.Sprintf("%.1f YB", n)
}

// GitRevision returns the commit hash of HEAD for the repository
// containing dir. An empty dir means the current working directory.
//
// The hash lets long-running experiments stamp their outputs with the
// exact code revision that produced them.
//
// Errors: any failure to run git (binary missing, dir not a
// repository) comes back wrapped, with git's stderr folded into the
// message when available.
func GitRevision(dir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "HEAD")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
			return "", fmt.Errorf("misc: git rev-parse: %w: %s",
				err, bytes.TrimSpace(ee.Stderr))
		}
		return "", fmt.Errorf("misc: git rev-parse: %w", err)
	}
	return string(bytes.TrimSpace(out)), nil
}
