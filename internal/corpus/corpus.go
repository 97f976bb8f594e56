// Package corpus provides reference paragraphs for typing tests.
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Builtin is the default set of paragraphs.
var Builtin = []string{
	"The quick brown fox jumps over the lazy dog. This pangram contains every letter of the alphabet at least once.",
	"Programming is not about what you know; it is about what you can figure out. Every expert was once a beginner.",
	"React is a JavaScript library for building user interfaces. It lets you compose complex UIs from small and isolated pieces of code.",
	"TypeScript is a programming language developed by Microsoft. It is a strict syntactical superset of JavaScript.",
	"The best way to learn programming is by writing programs. Practice makes perfect in the world of software development.",
	"In terminal-based environments, command-line interfaces provide powerful tools for system administration and development workflows.",
	"Modern web development involves understanding frameworks, libraries, databases, and deployment strategies for scalable applications.",
	"Version control systems like Git enable collaborative development and help track changes in source code over time.",
}

// LoadFile reads one paragraph per non-empty line from path. Runs of
// whitespace inside a paragraph are collapsed to single spaces.
func LoadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only corpus.
			_ = cerr
		}
	}()

	var paragraphs []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.Join(strings.Fields(scanner.Text()), " ")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paragraphs = append(paragraphs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(paragraphs) == 0 {
		return nil, fmt.Errorf("corpus is empty")
	}
	return paragraphs, nil
}
