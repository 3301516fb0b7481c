package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// EnvFileName is the file searched for when no explicit path is given.
const EnvFileName = ".env"

// ErrEnvFileNotFound is returned by FindEnvFile when the search finds nothing.
var ErrEnvFileNotFound = errors.New(".env file not found")

// FindEnvFile returns explicitPath if set, otherwise searches for .env from
// startDir upward. The search stops at the home directory, at a directory
// containing .git, or at the filesystem root.
func FindEnvFile(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("env file not found: %w", err)
		}
		return explicitPath, nil
	}

	homeDir, _ := os.UserHomeDir()

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		envPath := filepath.Join(currentDir, EnvFileName)
		if info, err := os.Stat(envPath); err == nil && !info.IsDir() {
			return envPath, nil
		}

		if currentDir == homeDir {
			break
		}

		if _, err := os.Stat(filepath.Join(currentDir, ".git")); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", ErrEnvFileNotFound
}

// LoadEnvFile locates a .env file (see FindEnvFile) and loads it into the
// process environment. Variables that are already set are left untouched.
// A missing or malformed file is only an error when explicitPath was given;
// a discovered file that fails to parse is logged and ignored. The loaded
// path is returned, or "" if nothing was loaded.
func LoadEnvFile(startDir, explicitPath string, log *zap.Logger) (string, error) {
	if log == nil {
		log = zap.NewNop()
	}

	path, err := FindEnvFile(startDir, explicitPath)
	if errors.Is(err, ErrEnvFileNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	if err := godotenv.Load(path); err != nil {
		if explicitPath != "" {
			return "", fmt.Errorf("failed to load %s: %w", path, err)
		}
		log.Debug("ignoring malformed env file", zap.String("path", path), zap.Error(err))
		return "", nil
	}
	return path, nil
}
