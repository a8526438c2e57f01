package textutil

import "strings"

// folderNameReplacer replaces filesystem-unsafe characters with safe
// alternatives. Separators and wildcards become dashes; characters that are
// invalid on common filesystems are removed.
var folderNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFolderName makes a playlist name safe to use as a directory name.
// The result is trimmed of leading and trailing whitespace; an empty or
// all-unsafe name yields an empty string.
func SanitizeFolderName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.TrimSpace(folderNameReplacer.Replace(name))
}
