package blob

import (
	"fmt"
	"mime"
	"path"
	"strings"
)

// MatchContentType reports whether ct is allowed. Entries may be exact
// ("text/plain"), wildcards ("image/*") or extensions (".fasta"), the last
// matched against filename.
func MatchContentType(allowed []string, ct, filename string) bool {
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(ct))
	}
	ext := strings.ToLower(path.Ext(filename))

	for _, a := range allowed {
		a = strings.ToLower(a)
		switch {
		case strings.HasPrefix(a, "."):
			if ext == a {
				return true
			}
		case strings.HasSuffix(a, "/*"):
			if strings.HasPrefix(mediaType, strings.TrimSuffix(a, "*")) {
				return true
			}
		case mediaType == a:
			return true
		}
	}
	return false
}

// FormatSize renders a byte count as B, KB, MB or GB.
func FormatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 2; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMG"[exp])
}
