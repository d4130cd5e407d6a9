package util

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// xdgDir resolves an XDG base directory: the environment variable when set,
// otherwise home joined with fallback.
func xdgDir(envVar string, fallback ...string) string {
	if base := strings.TrimSpace(os.Getenv(envVar)); base != "" {
		return expandHome(base)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// DataDir holds the log file.
func DataDir(app string) string {
	return filepath.Join(xdgDir("XDG_DATA_HOME", ".local", "share"), app)
}

// ConfigDir holds config.yaml.
func ConfigDir(app string) string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), app)
}

// ReportsDir is where roadmap exports are written.
func ReportsDir(app string) string {
	return filepath.Join(DocumentsDir(), strings.ToUpper(app))
}

// DocumentsDir honours XDG_DOCUMENTS_DIR from the environment or from
// user-dirs.dirs, falling back to ~/Documents.
func DocumentsDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); base != "" {
		return expandHome(base)
	}
	f, err := os.Open(filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), "user-dirs.dirs"))
	if err == nil {
		defer f.Close()
		if dir := parseUserDirs(f, "XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir)
		}
	}
	return xdgDir("", "Documents")
}

func parseUserDirs(f *os.File, key string) string {
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if v := parseUserDir(sc.Text(), key); v != "" {
			return v
		}
	}
	return ""
}

// parseUserDir returns the quoted value of key in user-dirs.dirs content.
func parseUserDir(data, key string) string {
	for _, line := range strings.Split(data, "\n") {
		name, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok || name != key {
			continue
		}
		return strings.Trim(value, "\"")
	}
	return ""
}

func expandHome(path string) string {
	if !strings.Contains(path, "$HOME") {
		return path
	}
	home, _ := os.UserHomeDir()
	return strings.ReplaceAll(path, "$HOME", home)
}
