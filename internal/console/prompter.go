package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/term"
)

// departments a user can pick at registration. Choosing HR puts the account
// into the pending queue.
var departments = []string{
	"HR", "Разработка", "QA", "Дизайн", "Маркетинг", "Продажи", "Поддержка",
}

// prompter owns all console input. Reads happen through a bufio.Reader so
// tests can drive the flows with a strings.Reader.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
	st  styles
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		in:  bufio.NewReader(in),
		out: out,
		st:  defaultStyles(),
	}
}

func (p *prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *prompter) println(s string) {
	fmt.Fprintln(p.out, s)
}

func (p *prompter) errorln(s string) {
	fmt.Fprintln(p.out, p.st.Error.Render(s))
}

func (p *prompter) successln(s string) {
	fmt.Fprintln(p.out, p.st.Success.Render(s))
}

func (p *prompter) warnln(s string) {
	fmt.Fprintln(p.out, p.st.Warning.Render(s))
}

func (p *prompter) rawLine() string {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// ReadLine prompts until a non-empty value containing at least one letter is
// entered. With allowEmpty the first empty answer is returned as-is, which
// the edit flows use as "keep current value".
func (p *prompter) ReadLine(prompt string, allowEmpty bool) string {
	for {
		p.printf("%s", prompt)
		s := p.rawLine()
		if s == "" {
			if allowEmpty {
				return s
			}
			p.errorln("Ошибка: пустая строка!")
			continue
		}
		if !containsLetter(s) {
			p.errorln("Ошибка: строка должна содержать хотя бы одну букву!")
			continue
		}
		return s
	}
}

func (p *prompter) ReadInt(prompt string) int {
	for {
		p.printf("%s", prompt)
		s := p.rawLine()
		v, err := strconv.Atoi(s)
		if err != nil {
			p.println("Пожалуйста, введите число...")
			continue
		}
		return v
	}
}

// ReadScore prompts until a float within [min, max] is entered.
func (p *prompter) ReadScore(prompt string, min, max float64) float64 {
	for {
		p.printf("%s", prompt)
		s := p.rawLine()
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			p.println("Ошибка: введите корректное число")
			continue
		}
		if v < min || v > max {
			p.printf("Ошибка: оценка должна быть от %g до %g\n", min, max)
			continue
		}
		return v
	}
}

// ReadPassword masks input when stdin is a terminal and falls back to a
// plain line read otherwise (tests, piped input).
func (p *prompter) ReadPassword(prompt string) string {
	p.printf("%s", prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		p.println("")
		if err == nil {
			return strings.TrimSpace(string(raw))
		}
	}
	return p.rawLine()
}

func (p *prompter) Confirm(prompt string) bool {
	p.printf("%s", prompt)
	s := p.rawLine()
	return s == "y" || s == "Y"
}

func (p *prompter) Pause() {
	p.printf("Нажмите Enter для продолжения...")
	p.rawLine()
}

// ChooseDepartment loops until a valid menu position is picked.
func (p *prompter) ChooseDepartment() string {
	p.println("Выберите отдел:")
	for i, d := range departments {
		p.printf("%d) %s\n", i+1, d)
	}
	sel := p.ReadInt("Ваш выбор: ")
	for sel < 1 || sel > len(departments) {
		p.println("Неверный выбор. Введите корректное число.")
		sel = p.ReadInt("Ваш выбор: ")
	}
	return departments[sel-1]
}

// ChooseDepartmentOrKeep is the edit variant: Enter keeps the current value.
func (p *prompter) ChooseDepartmentOrKeep(current string) string {
	p.println("Выберите новый отдел (нажмите Enter, чтобы оставить текущий):")
	for i, d := range departments {
		p.printf("%d) %s\n", i+1, d)
	}
	for {
		p.printf("Ваш выбор (1-%d) или Enter для текущего отдела: ", len(departments))
		s := p.rawLine()
		if s == "" {
			return current
		}
		sel, err := strconv.Atoi(s)
		if err != nil || sel < 1 || sel > len(departments) {
			p.printf("Неверный выбор. Пожалуйста, введите число от 1 до %d.\n", len(departments))
			continue
		}
		return departments[sel-1]
	}
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
