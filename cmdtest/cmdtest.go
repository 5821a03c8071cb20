// Package cmdtest runs golden tests for in-process command line programs.
// Cases live in YAML files; each one names a registered command, its
// arguments, environment and stdin, and the expected stdout, stderr and exit
// code. With update enabled, mismatches are written back into the YAML
// files instead of failing.
package cmdtest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"gopkg.in/yaml.v3"
)

// Expect is what a case must produce.
type Expect struct {
	Stdout   string `yaml:"stdout"`
	Stderr   string `yaml:"stderr"`
	ExitCode int    `yaml:"exitCode"`
}

// TestData is one case in a YAML file.
type TestData struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Cmd         string            `yaml:"cmd"`
	Args        []string          `yaml:"args"`
	Env         map[string]string `yaml:"env"`
	Stdin       string            `yaml:"stdin"`
	Expect      Expect            `yaml:"expect"`
}

// TestGroup is the content of one YAML file.
type TestGroup struct {
	Name  string
	Tests []TestData `yaml:"tests"`
}

// TestSuite holds every group read from a directory and the commands they
// may run.
type TestSuite struct {
	groups   []*TestGroup
	commands map[string]func() int
	backings map[*TestGroup]*groupBacking
	mu       sync.Mutex
}

// groupBacking keeps the parsed node tree so that updates preserve the
// layout and comments of the file.
type groupBacking struct {
	path      string
	root      *yaml.Node
	testNodes []*yaml.Node
}

// Read loads every .yaml and .yml file under dir.
func Read(dir string) (*TestSuite, error) {
	suite := &TestSuite{
		commands: make(map[string]func() int),
		backings: make(map[*TestGroup]*groupBacking),
	}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
		default:
			return nil
		}

		group, backing, err := readGroup(path)
		if err != nil {
			return err
		}
		suite.groups = append(suite.groups, group)
		suite.backings[group] = backing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return suite, nil
}

func readGroup(path string) (*TestGroup, *groupBacking, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(root.Content) == 0 {
		return nil, nil, fmt.Errorf("%s: empty yaml", path)
	}

	testsNode, err := locateTestsNode(root.Content[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	group := &TestGroup{Name: filepath.Base(path)}
	if err := testsNode.Decode(&group.Tests); err != nil {
		return nil, nil, fmt.Errorf("%s: decode tests: %w", path, err)
	}
	if len(testsNode.Content) != len(group.Tests) {
		return nil, nil, fmt.Errorf("%s: tests count mismatch between yaml node and struct", path)
	}
	return group, &groupBacking{path: path, root: &root, testNodes: testsNode.Content}, nil
}

// Register makes run available to cases whose cmd is name. run returns the
// exit code.
func (s *TestSuite) Register(name string, run func() int) {
	s.commands[name] = run
}

// Run runs every case and reports mismatches as test errors.
func (s *TestSuite) Run(t *testing.T) {
	s.RunWithUpdate(t, false)
}

// RunWithUpdate runs every case. With update, mismatching expectations are
// rewritten in the YAML files.
func (s *TestSuite) RunWithUpdate(t *testing.T, update bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, group := range s.groups {
		t.Run(group.Name, func(t *testing.T) {
			for i := range group.Tests {
				t.Run(caseName(&group.Tests[i], i), func(t *testing.T) {
					s.runSingleTest(t, group, i, update)
				})
			}
		})
	}
}

func caseName(test *TestData, idx int) string {
	if test.Name != "" {
		return test.Name
	}
	return fmt.Sprintf("Case-%d", idx)
}

// result is what one run of a program produced.
type result struct {
	stdout   string
	stderr   string
	exitCode int
}

func (s *TestSuite) runSingleTest(t *testing.T, group *TestGroup, idx int, update bool) {
	test := &group.Tests[idx]
	run, ok := s.commands[test.Cmd]
	if !ok {
		t.Fatalf("command %q not registered", test.Cmd)
	}

	for k, v := range test.Env {
		t.Setenv(k, v)
	}
	got, err := capture(t, append([]string{test.Cmd}, test.Args...), test.Stdin, run)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}

	changes := s.applyExpect(t, group, idx, got, update)
	if update && len(changes) > 0 {
		backing := s.backings[group]
		if err := s.persistGroup(group); err != nil {
			t.Fatalf("persist %s: %v", backing.path, err)
		}
		t.Logf("cmdtest: updated %s (%s): %s", backing.path, caseName(test, idx), strings.Join(changes, "; "))
	}
}

// capture runs run with os.Args set to args, stdin fed from stdin and
// stdout and stderr collected. The process globals are restored afterwards.
func capture(t *testing.T, args []string, stdin string, run func() int) (result, error) {
	oldArgs, oldStdin, oldStdout, oldStderr := os.Args, os.Stdin, os.Stdout, os.Stderr
	defer func() {
		os.Args, os.Stdin, os.Stdout, os.Stderr = oldArgs, oldStdin, oldStdout, oldStderr
	}()

	rIn, wIn, err := os.Pipe()
	if err != nil {
		return result{}, err
	}
	rOut, wOut, err := os.Pipe()
	if err != nil {
		return result{}, err
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		return result{}, err
	}

	go func() {
		_, _ = io.WriteString(wIn, stdin)
		_ = wIn.Close()
	}()
	var stdout, stderr bytes.Buffer
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = io.Copy(&stdout, rOut)
	}()
	go func() {
		defer wg.Done()
		_, _ = io.Copy(&stderr, rErr)
	}()

	os.Args = args
	os.Stdin, os.Stdout, os.Stderr = rIn, wOut, wErr

	var res result
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panic: %v", r)
				res.exitCode = -1
			}
		}()
		res.exitCode = run()
	}()

	_ = wOut.Close()
	_ = wErr.Close()
	wg.Wait()
	_ = rIn.Close()
	_ = rOut.Close()
	_ = rErr.Close()

	res.stdout, res.stderr = stdout.String(), stderr.String()
	return res, nil
}

func (s *TestSuite) applyExpect(t *testing.T, group *TestGroup, idx int, got result, update bool) []string {
	test := &group.Tests[idx]
	backing := s.backings[group]
	if backing == nil {
		t.Fatalf("no yaml backing for group %s", group.Name)
	}
	expectNode := ensureMapValue(backing.testNodes[idx], "expect")

	var changes []string
	if got.exitCode != test.Expect.ExitCode {
		if update {
			test.Expect.ExitCode = got.exitCode
			setIntScalar(ensureMapValue(expectNode, "exitCode"), got.exitCode)
			changes = append(changes, fmt.Sprintf("exitCode=%d", got.exitCode))
		} else {
			t.Errorf("ExitCode mismatch:\nExpected: %d\nActual:   %d", test.Expect.ExitCode, got.exitCode)
		}
	}
	if got.stdout != test.Expect.Stdout {
		if update {
			test.Expect.Stdout = got.stdout
			setStringScalar(ensureMapValue(expectNode, "stdout"), got.stdout)
			changes = append(changes, fmt.Sprintf("stdout=%q", summarizeValue(got.stdout)))
		} else {
			t.Errorf("Stdout mismatch:\nExpected:\n%s\nActual:\n%s", test.Expect.Stdout, got.stdout)
		}
	}
	if got.stderr != test.Expect.Stderr {
		if update {
			test.Expect.Stderr = got.stderr
			setStringScalar(ensureMapValue(expectNode, "stderr"), got.stderr)
			changes = append(changes, fmt.Sprintf("stderr=%q", summarizeValue(got.stderr)))
		} else {
			t.Errorf("Stderr mismatch:\nExpected:\n%s\nActual:\n%s", test.Expect.Stderr, got.stderr)
		}
	}
	return changes
}

func (s *TestSuite) persistGroup(group *TestGroup) error {
	backing := s.backings[group]
	if backing == nil {
		return fmt.Errorf("no yaml backing for group %s", group.Name)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(backing.root.Content[0]); err != nil {
		_ = enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return os.WriteFile(backing.path, buf.Bytes(), 0o644)
}

// locateTestsNode accepts either a top-level sequence of cases or a mapping
// with a "tests" sequence.
func locateTestsNode(doc *yaml.Node) (*yaml.Node, error) {
	switch doc.Kind {
	case yaml.MappingNode:
		val := findMapValue(doc, "tests")
		if val == nil {
			return nil, fmt.Errorf("missing 'tests' key")
		}
		if val.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("tests must be a sequence")
		}
		return val, nil
	case yaml.SequenceNode:
		return doc, nil
	}
	return nil, fmt.Errorf("unsupported top-level yaml kind: %v", doc.Kind)
}

func findMapValue(mapNode *yaml.Node, key string) *yaml.Node {
	if mapNode.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value == key {
			return mapNode.Content[i+1]
		}
	}
	return nil
}

func ensureMapValue(mapNode *yaml.Node, key string) *yaml.Node {
	if mapNode.Kind != yaml.MappingNode {
		mapNode.Kind = yaml.MappingNode
		mapNode.Content = nil
	}
	if val := findMapValue(mapNode, key); val != nil {
		return val
	}
	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	valNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str"}
	mapNode.Content = append(mapNode.Content, keyNode, valNode)
	return valNode
}

func setStringScalar(node *yaml.Node, val string) {
	node.Kind = yaml.ScalarNode
	node.Tag = "!!str"
	// a lone line break would otherwise be written as an empty literal block
	if val == "\n" || val == "\r\n" {
		node.Style = yaml.DoubleQuotedStyle
	} else {
		node.Style = 0
	}
	node.Value = val
}

func setIntScalar(node *yaml.Node, val int) {
	node.Kind = yaml.ScalarNode
	node.Tag = "!!int"
	node.Style = 0
	node.Value = strconv.Itoa(val)
}

func summarizeValue(s string) string {
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	if len(s) > 80 {
		return s[:77] + "..."
	}
	return s
}
