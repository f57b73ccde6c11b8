package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Activator prepares the process environment for a virtualenv root and
// returns it as KEY=VALUE entries.
type Activator interface {
	Activate(root string) ([]string, error)
}

// ActivateScript returns the path of the virtualenv's activation script.
func ActivateScript(root string) string {
	return filepath.Join(root, "bin", "activate")
}

// BinDir returns the virtualenv's executable directory.
func BinDir(root string) string {
	return filepath.Join(root, "bin")
}

// Virtualenv applies the environment changes that sourcing bin/activate makes:
// VIRTUAL_ENV is set, bin/ is prepended to PATH, and PYTHONHOME is unset.
type Virtualenv struct {
	// Base is the environment to start from. Nil means os.Environ().
	Base []string
}

// Activate implements Activator.
func (v Virtualenv) Activate(root string) ([]string, error) {
	script := ActivateScript(root)
	info, err := os.Stat(script)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrEnvironmentMissing, script)
	}

	base := v.Base
	if base == nil {
		base = os.Environ()
	}

	env := make([]string, 0, len(base)+2)
	path := ""
	for _, kv := range base {
		key, val, _ := strings.Cut(kv, "=")
		switch key {
		case "PYTHONHOME", "VIRTUAL_ENV":
			continue
		case "PATH":
			path = val
			continue
		}
		env = append(env, kv)
	}

	bin := BinDir(root)
	if path != "" {
		path = bin + string(os.PathListSeparator) + path
	} else {
		path = bin
	}
	env = append(env, "VIRTUAL_ENV="+root, "PATH="+path)
	return env, nil
}

// lookupEnv returns the last value of key in env.
func lookupEnv(env []string, key string) string {
	val := ""
	for _, kv := range env {
		if k, v, ok := strings.Cut(kv, "="); ok && k == key {
			val = v
		}
	}
	return val
}
