package sensors

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/rileyhilliard/sysgraph/internal/errors"
	"github.com/tidwall/gjson"
)

// DefaultCommandTimeout bounds a single command run.
const DefaultCommandTimeout = 5 * time.Second

// Command samples a value printed by an external command. The output is
// either a bare number (the first field is used) or a JSON document from
// which JSONPath selects the value, in gjson path syntax.
type Command struct {
	Name     string
	Path     string
	Args     []string
	JSONPath string
	Timeout  time.Duration

	run func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewCommand creates a command source that runs path with args.
func NewCommand(name, path string, args []string, jsonPath string, timeout time.Duration) *Command {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	return &Command{
		Name:     name,
		Path:     path,
		Args:     args,
		JSONPath: jsonPath,
		Timeout:  timeout,
		run:      runCommand,
	}
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return out, nil
}

// Sample runs the command once and parses its output.
func (c *Command) Sample(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	out, err := c.run(ctx, c.Path, c.Args...)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrExec,
			fmt.Sprintf("Command for %s failed", c.Name),
			"Run the command by hand to check it prints a number")
	}
	return parseOutput(out, c.JSONPath)
}

// parseOutput extracts a finite number from command output.
func parseOutput(out []byte, jsonPath string) (float64, error) {
	v, err := parseValue(out, jsonPath)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("command output %v is not a finite number", v)
	}
	return v, nil
}

func parseValue(out []byte, jsonPath string) (float64, error) {
	if jsonPath == "" {
		fields := strings.Fields(string(out))
		if len(fields) == 0 {
			return 0, fmt.Errorf("command printed nothing")
		}
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, fmt.Errorf("command output %q is not a number", fields[0])
		}
		return v, nil
	}

	if !gjson.ValidBytes(out) {
		return 0, fmt.Errorf("command output is not valid JSON")
	}
	res := gjson.GetBytes(out, jsonPath)
	if !res.Exists() {
		return 0, fmt.Errorf("path %q not found in command output", jsonPath)
	}
	switch res.Type {
	case gjson.Number:
		return res.Num, nil
	case gjson.String:
		v, err := strconv.ParseFloat(strings.TrimSpace(res.Str), 64)
		if err != nil {
			return 0, fmt.Errorf("value at %q is not a number: %q", jsonPath, res.Str)
		}
		return v, nil
	case gjson.True:
		return 1, nil
	case gjson.False:
		return 0, nil
	default:
		return 0, fmt.Errorf("value at %q is not a number", jsonPath)
	}
}
