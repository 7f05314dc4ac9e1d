package luasm

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/QuickWrite/luasm/asm"
)

// countdown is a tiny language: registers live in the heap, dec drives a
// loop through a conditional jump.
func countdownDefs() []Definition {
	return []Definition{
		Define("mov", []string{"imm", "reg"}, func(in *Instruction, m Machine) bool {
			value, _ := strconv.Atoi(in.Args[0])
			m.Heap().Set(in.Args[1], value)
			return true
		}),
		Define("dec", []string{"reg"}, func(in *Instruction, m Machine) bool {
			value, _ := m.Heap().Get(in.Args[0])
			count, _ := value.(int)
			m.Heap().Set(in.Args[0], count-1)
			return true
		}),
		Define("jnz", []string{"reg", "label"}, func(in *Instruction, m Machine) bool {
			value, _ := m.Heap().Get(in.Args[0])
			if count, _ := value.(int); count != 0 {
				return m.Jump(in.Args[1]) == nil
			}
			return true
		}),
		Define("push", []string{"reg"}, func(in *Instruction, m Machine) bool {
			value, _ := m.Heap().Get(in.Args[0])
			m.Stack().Push(value)
			return true
		}),
	}
}

func TestRunner_EndToEnd(t *testing.T) {
	assert := assert.New(t)

	text := `
        mov 3 r0        ; loop counter
loop:   push r0
        dec r0
        jnz r0 loop
`

	runner := New(countdownDefs(), nil)
	prog, err := runner.Parse(runner.SourceFromString(text))
	assert.NoError(err)
	assert.Equal(5, prog.Lines)
	assert.Equal(3, prog.Labels["loop"])

	ip := runner.Interpreter(prog, nil)
	ip.Run()

	assert.Equal(3, ip.Stack().Size())
	assert.Equal([]any{3, 2, 1}, ip.Stack().Data)

	value, _ := ip.Heap().Get("r0")
	assert.Equal(0, value)
}

func TestRunner_FileSource(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "count.asm")
	err := os.WriteFile(path, []byte("mov 3 r0\npush r0\n"), 0o644)
	assert.NoError(err)

	runner := New(countdownDefs(), nil)
	src, err := runner.SourceFromFile(path)
	assert.NoError(err)

	prog, err := runner.Parse(src)
	assert.NoError(err)
	assert.Equal(2, prog.Lines)

	_, err = runner.SourceFromFile(filepath.Join(t.TempDir(), "missing.asm"))
	var su *asm.ErrSourceUnavailable
	assert.True(errors.As(err, &su))
}

func TestRunner_CustomSyntax(t *testing.T) {
	assert := assert.New(t)

	var printed []string
	defs := []Definition{
		Define("print", []string{"string"}, func(in *Instruction, m Machine) bool {
			printed = append(printed, in.Args[0])
			return true
		}),
	}
	set := &Settings{
		Syntax: map[string]*regexp.Regexp{
			"string": regexp.MustCompile(`^"(\w*)"$`),
		},
	}

	runner := New(defs, set)
	prog, err := runner.Parse(runner.SourceFromString(`print "Hello"`))
	assert.NoError(err)

	runner.Interpreter(prog, nil).Run()
	assert.Equal([]string{"Hello"}, printed)
}

func TestRunner_ParseError(t *testing.T) {
	assert := assert.New(t)

	runner := New(countdownDefs(), nil)
	prog, err := runner.Parse(runner.SourceFromString("mov 1 r0\nfoo bar\n"))
	assert.Error(err)

	var pe *asm.ErrParse
	assert.True(errors.As(err, &pe))
	assert.Equal(2, pe.LineNo)
	assert.Equal([]string{"no instruction named foo"}, pe.Messages())

	// Partial program is diagnostics-only but present.
	assert.NotNil(prog)
	assert.Equal(1, len(prog.Instructions))
}

func TestRunner_Predefine(t *testing.T) {
	assert := assert.New(t)

	runner := New(countdownDefs(), &Settings{Expand: true})
	runner.Predefine("LIMIT", "5")

	prog, err := runner.Parse(runner.SourceFromString("mov $(LIMIT - 2) r0\n"))
	assert.NoError(err)
	assert.Equal([]string{"3", "r0"}, prog.At(1).Args)
}
