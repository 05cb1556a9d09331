package utils

// SourceName returns path, or fallback when path is empty. It names the
// stream a run read from or wrote to.
func SourceName(path, fallback string) string {
	if path == "" {
		return fallback
	}
	return path
}
