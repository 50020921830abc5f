package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// AccessTokenEnv is the variable holding the TMDB v4 read access token.
const AccessTokenEnv = "TMDB_ACCESS_TOKEN"

// ErrMissingToken is returned when no token source yields a value
var ErrMissingToken = errors.New("TMDB access token not configured: set " + AccessTokenEnv + " as an environment variable or in a .env file")

// ResolveAccessToken returns the first non-blank token from, in order, the
// process environment, the env file and the configured fallback.
func ResolveAccessToken(envFile, fallback string) (string, error) {
	if token := strings.TrimSpace(os.Getenv(AccessTokenEnv)); token != "" {
		return token, nil
	}

	token, err := readEnvFileToken(envFile)
	if err != nil {
		return "", err
	}
	if token != "" {
		return token, nil
	}

	if token := strings.TrimSpace(fallback); token != "" {
		return token, nil
	}

	return "", ErrMissingToken
}

// readEnvFileToken looks the token up in a KEY=value file. A missing file is
// not an error. Lines without '=' are skipped, the key is matched
// case-insensitively and the first matching line wins.
func readEnvFileToken(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || !strings.Contains(line, "=") {
			continue
		}

		// godotenv handles quoting, export prefixes and inline comments
		pair, err := godotenv.Unmarshal(line)
		if err != nil {
			continue
		}
		for key, value := range pair {
			if strings.EqualFold(strings.TrimSpace(key), AccessTokenEnv) {
				return strings.TrimSpace(value), nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return "", nil
}
