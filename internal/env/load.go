// Package env loads API credentials from a .env file. Key persistence is
// deliberately outside the scene pipeline: the pipeline never sees
// credentials, only the llm package does.
package env

import (
	"bufio"
	"os"
	"strings"
)

// Load reads the given file (e.g. ".env") and sets environment variables for
// each line of the form KEY=VALUE. Empty lines and lines starting with # are
// skipped. The file may be missing; that is not an error.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		i := strings.Index(line, "=")
		if i <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:i])
		value := strings.TrimSpace(line[i+1:])
		if key == "" {
			continue
		}
		value = unquote(value)
		_ = os.Setenv(key, value)
	}
	return scanner.Err()
}

func unquote(value string) string {
	if len(value) >= 2 &&
		(value[0] == '"' && value[len(value)-1] == '"' ||
			value[0] == '\'' && value[len(value)-1] == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}

// APIKeys returns the OpenAI and Groq keys from the environment. Either may
// be empty; the llm fallback chain copes.
func APIKeys() (openAI, groq string) {
	return os.Getenv("OPENAI_API_KEY"), os.Getenv("GROQ_API_KEY")
}
