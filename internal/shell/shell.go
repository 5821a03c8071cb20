//go:generate go run github.com/dmarkham/enumer -type=ShellType -trimprefix=ShellType -transform=kebab
package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/process"
)

// ShellType selects the syntax of generated assignments.
type ShellType int

const (
	ShellTypeAuto ShellType = iota
	ShellTypeSh
	ShellTypePowershell
	ShellTypeCmd
)

// Var is one environment variable to assign.
type Var struct {
	Name   string
	Value  string
	Export bool
}

// ErrNotDetected is returned when neither the process tree nor the
// environment names a shell.
var ErrNotDetected = errors.New("user shell not detected")

// detectShellName is replaced in tests.
var detectShellName = detectParentShell

// EnvName turns name into an UPPER_SNAKE variable name with prefix in front.
func EnvName(name, prefix string) string {
	varName := strings.ToUpper(strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(name))
	return prefix + varName
}

// Resolve returns shellType unchanged unless it is ShellTypeAuto, in which
// case the calling shell is detected. Unknown shells are treated as sh.
func Resolve(shellType ShellType) (ShellType, error) {
	switch shellType {
	case ShellTypeSh, ShellTypePowershell, ShellTypeCmd:
		return shellType, nil
	case ShellTypeAuto:
	default:
		return ShellTypeAuto, fmt.Errorf("unsupported shell type: %v", shellType)
	}

	name, err := detectShellName()
	if err != nil {
		return ShellTypeAuto, fmt.Errorf("cannot detect user shell: %w", err)
	}
	resolved := Classify(name)
	log.Debug().Str("shell", name).Stringer("type", resolved).Msg("detected user shell")
	return resolved, nil
}

// Classify maps a shell executable name such as "bash" or "pwsh.exe" to
// its ShellType.
func Classify(name string) ShellType {
	n := strings.TrimSuffix(strings.ToLower(filepath.Base(name)), ".exe")
	switch n {
	case "powershell", "pwsh":
		return ShellTypePowershell
	case "cmd":
		return ShellTypeCmd
	}
	return ShellTypeSh
}

// Assignment returns a statement that sets name to value in shellType. With
// export the variable is made visible to child processes (sh) or persisted
// for the user (powershell, cmd).
func Assignment(shellType ShellType, name, value string, export bool) (string, error) {
	return Script(shellType, []Var{{Name: name, Value: value, Export: export}})
}

// Script returns one assignment per var, in order, separated by newlines.
// The shell is resolved once for the whole script.
func Script(shellType ShellType, vars []Var) (string, error) {
	resolved, err := Resolve(shellType)
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(vars))
	for _, v := range vars {
		if v.Name == "" {
			return "", errors.New("empty variable name")
		}
		lines = append(lines, assign(resolved, v.Name, v.Value, v.Export))
	}
	return strings.Join(lines, "\n"), nil
}

func assign(shellType ShellType, name, value string, export bool) string {
	switch shellType {
	case ShellTypePowershell:
		lit := powershellLiteral(value)
		if export {
			return fmt.Sprintf("[System.Environment]::SetEnvironmentVariable(%s,%s,'User')", powershellQuote(name), lit)
		}
		return fmt.Sprintf("$Env:%s = %s", name, lit)
	case ShellTypeCmd:
		lit := cmdLiteral(value)
		if export {
			return fmt.Sprintf("setx %s %s", name, lit)
		}
		return fmt.Sprintf("set \"%s=%s\"", name, strings.Trim(lit, `"`))
	}
	if export {
		return fmt.Sprintf("export %s=%s", name, shLiteral(value))
	}
	return fmt.Sprintf("%s=%s", name, shLiteral(value))
}

// splitLines splits s into text and line-break pieces, keeping "\r\n",
// "\r" and "\n" as pieces of their own.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '\r' && s[i] != '\n' {
			continue
		}
		if start < i {
			parts = append(parts, s[start:i])
		}
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			parts = append(parts, "\r\n")
			i++
		} else {
			parts = append(parts, s[i:i+1])
		}
		start = i + 1
	}
	if start < len(s) {
		parts = append(parts, s[start:])
	}
	return parts
}

// shLiteral single-quotes s for POSIX shells.
func shLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func powershellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// powershellLiteral joins single-quoted pieces and backtick escapes for line
// breaks with " + ".
func powershellLiteral(s string) string {
	parts := splitLines(s)
	out := make([]string, len(parts))
	for i, p := range parts {
		switch p {
		case "\n":
			out[i] = "\"`n\""
		case "\r":
			out[i] = "\"`r\""
		case "\r\n":
			out[i] = "\"`r`n\""
		default:
			out[i] = powershellQuote(p)
		}
	}
	return strings.Join(out, " + ")
}

func cmdLiteral(s string) string {
	parts := splitLines(s)
	var b strings.Builder
	for _, p := range parts {
		switch p {
		case "\n":
			b.WriteString(`"\\n"`)
		case "\r":
			b.WriteString(`"\\r"`)
		case "\r\n":
			b.WriteString(`"\\r\\n"`)
		default:
			b.WriteString(`"` + strings.ReplaceAll(p, `"`, `\"`) + `"`)
		}
	}
	return b.String()
}

var knownShells = []string{
	"bash", "zsh", "fish", "ksh", "dash", "tcsh", "csh", "sh",
	"powershell", "pwsh", "cmd",
}

// detectParentShell walks up the parent process chain looking for a known
// shell, then falls back to $SHELL and %COMSPEC%. Those name the login
// shell, which is not necessarily the one running us.
func detectParentShell() (string, error) {
	p, err := process.NewProcess(int32(os.Getppid()))
	if err != nil {
		log.Debug().Err(err).Msg("cannot inspect parent process")
		p = nil
	}

	seen := map[int32]struct{}{}
	for p != nil {
		if _, ok := seen[p.Pid]; ok {
			break
		}
		seen[p.Pid] = struct{}{}

		name, _ := p.Name()
		if name == "" {
			if exe, _ := p.Exe(); exe != "" {
				name = filepath.Base(exe)
			}
		}
		if isKnownShell(name) {
			return name, nil
		}

		parent, err := p.Parent()
		if err != nil || parent == nil {
			break
		}
		p = parent
	}

	if sh := os.Getenv("SHELL"); sh != "" {
		return filepath.Base(sh), nil
	}
	if com := os.Getenv("COMSPEC"); com != "" {
		return filepath.Base(com), nil
	}
	return "", ErrNotDetected
}

func isKnownShell(name string) bool {
	n := strings.TrimSuffix(strings.ToLower(name), ".exe")
	for _, k := range knownShells {
		if n == k {
			return true
		}
	}
	return false
}
