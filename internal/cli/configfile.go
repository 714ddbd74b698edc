package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// LoadConfigArgs reads the minigrep config file and returns parsed arguments.
// Config file location: MINIGREP_CONFIG_PATH env var, or ~/.minigrep.
// Format: one flag per line, # comments, empty lines ignored. A path ending in
// .toml is read as a table of long flag names instead.
// Returns nil if no config file found.
func LoadConfigArgs() ([]string, error) {
	path := os.Getenv("MINIGREP_CONFIG_PATH")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil
		}
		path = filepath.Join(home, ".minigrep")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil
	}

	if strings.HasSuffix(path, ".toml") {
		args, err := tomlArgs(data)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		return args, nil
	}
	return lineArgs(data), nil
}

func lineArgs(data []byte) []string {
	var args []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args = append(args, line)
	}
	return args
}

// tomlArgs turns a table such as
//
//	ignore-case = true
//	context = 2
//	glob = ["*.go", "!vendor/**"]
//
// into long flags, in key order.
func tomlArgs(data []byte) ([]string, error) {
	var table map[string]any
	if err := toml.Unmarshal(data, &table); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var args []string
	for _, k := range keys {
		switch v := table[k].(type) {
		case bool:
			if v {
				args = append(args, "--"+k)
			}
		case string, int64, float64:
			args = append(args, fmt.Sprintf("--%s=%v", k, v))
		case []any:
			for _, item := range v {
				args = append(args, fmt.Sprintf("--%s=%v", k, item))
			}
		default:
			return nil, fmt.Errorf("unsupported value for %q: %T", k, v)
		}
	}
	return args, nil
}
