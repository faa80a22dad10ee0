package update

import (
	"regexp"
	"strings"
)

var versionPattern = regexp.MustCompile(`# version: [0-9]+\.[0-9]+\.[0-9]+`)

// ReplaceVersion replaces the first "# version: X.Y.Z" comment with "# version: <version>".
// It reports whether the comment was found.
func ReplaceVersion(content, version string) (string, bool) {
	return replaceFirst(versionPattern, content, "# version: "+version)
}

// ImageRef joins an image name, tag, and digest into "<name>:<tag>@<digest>".
func ImageRef(name, tag, digest string) string {
	return name + ":" + tag + "@" + digest
}

func imagePattern(registry, actionName string) *regexp.Regexp {
	return regexp.MustCompile(`default:\s*"` + regexp.QuoteMeta(registry+"/"+actionName) + `:[^"]+"`)
}

// ReplaceImage replaces the first `default: "<registry>/<actionName>:..."` value with imageRef.
// registry and actionName are matched literally.
// It reports whether the default value was found.
func ReplaceImage(content, registry, actionName, imageRef string) (string, bool) {
	return replaceFirst(imagePattern(registry, actionName), content, `default: "`+imageRef+`"`)
}

// replaceFirst inserts repl literally, so "$" in parameters isn't expanded.
func replaceFirst(pattern *regexp.Regexp, content, repl string) (string, bool) {
	loc := pattern.FindStringIndex(content)
	if loc == nil {
		return content, false
	}
	return content[:loc[0]] + repl + content[loc[1]:], true
}

// LineDiff is a changed span of an action file.
// Number is 1-based. Old and New may contain several lines
// when a replacement changed the number of lines.
type LineDiff struct {
	Number int
	Old    string
	New    string
}

// ChangedLines returns the lines which differ between before and after.
func ChangedLines(before, after string) []*LineDiff {
	if before == after {
		return nil
	}
	oldLines := strings.Split(before, "\n")
	newLines := strings.Split(after, "\n")
	if len(oldLines) == len(newLines) {
		diffs := []*LineDiff{}
		for i, line := range oldLines {
			if line == newLines[i] {
				continue
			}
			diffs = append(diffs, &LineDiff{
				Number: i + 1,
				Old:    line,
				New:    newLines[i],
			})
		}
		return diffs
	}
	prefix := 0
	for prefix < len(oldLines) && prefix < len(newLines) && oldLines[prefix] == newLines[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(oldLines)-prefix && suffix < len(newLines)-prefix &&
		oldLines[len(oldLines)-1-suffix] == newLines[len(newLines)-1-suffix] {
		suffix++
	}
	return []*LineDiff{
		{
			Number: prefix + 1,
			Old:    strings.Join(oldLines[prefix:len(oldLines)-suffix], "\n"),
			New:    strings.Join(newLines[prefix:len(newLines)-suffix], "\n"),
		},
	}
}
