package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/buger/goterm"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/pkg/errors"
)

var (
	userColor      = color.New(color.FgWhite)
	replyColor     = color.New(color.FgCyan)
	expenseColor   = color.New(color.FgGreen)
	amountColor    = color.New(color.FgYellow)
	warningColor   = color.New(color.FgHiYellow)
	titleColor     = color.New(color.FgMagenta, color.Bold)
	separatorColor = color.New(color.FgHiBlack)
	promptColor    = color.New(color.FgHiBlue)
)

// ErrInterrupted is returned by Prompt when the user hits Ctrl+C or Ctrl+D.
var ErrInterrupted = errors.New("interrupted")

func width() int {
	if w := goterm.Width(); w > 0 {
		return w
	}
	return 80
}

// Separator printed to cli.
func Separator() {
	separatorColor.Println(strings.Repeat("-", width()))
}

// Title printed to cli, centered between dashes.
func Title(text string, args ...any) {
	w := width()
	title := "   " + fmt.Sprintf(text, args...) + "   "
	left := (w - len(title)) / 2
	if left < 0 {
		left = 0
	}
	right := w - len(title) - left
	if right < 0 {
		right = 0
	}
	titleColor.Println(strings.Repeat("-", left) + title + strings.Repeat("-", right))
}

// UserMessage echoes what the user sent.
func UserMessage(text string) {
	userColor.Println("you: " + text)
}

// Reply prints an assistant reply.
func Reply(text string) {
	replyColor.Println(text)
}

// Expense prints one recorded expense line.
func Expense(merchant, category, date, amount string) {
	expenseColor.Printf("  + %-24s %-16s %s ", merchant, category, date)
	amountColor.Println(amount)
}

// Warning printed to cli.
func Warning(text string, args ...any) {
	warningColor.Printf(text+"\n", args...)
}

// Prompt reads one message. A line ending in a backslash continues on the next line.
// History is kept in historyFile when set.
func Prompt(historyFile string) (string, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            promptColor.Sprint("> "),
		InterruptPrompt:   "^C",
		HistoryFile:       historyFile,
		HistorySearchFold: true,
	})
	if err != nil {
		return "", errors.Wrap(err, "creating readline")
	}
	defer rl.Close()

	var lines []string
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return "", ErrInterrupted
		}
		if err != nil {
			return "", errors.Wrap(err, "reading line")
		}
		if !strings.HasSuffix(line, `\`) {
			lines = append(lines, line)
			break
		}
		lines = append(lines, strings.TrimSuffix(line, `\`))
		rl.SetPrompt(promptColor.Sprint(". "))
	}
	return strings.Join(lines, "\n"), nil
}

// QueryUser a yes/no question.
func QueryUser(question string) bool {
	confirm := false
	survey.AskOne(&survey.Confirm{Message: question}, &confirm)
	return confirm
}

// Ask for a free text value, prefilled with a default.
func Ask(question, defaultValue string, validate func(string) error) (string, error) {
	var answer string
	var opts []survey.AskOpt
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans any) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	if err := survey.AskOne(&survey.Input{Message: question, Default: defaultValue}, &answer, opts...); err != nil {
		return "", errors.Wrap(err, "asking "+question)
	}
	return answer, nil
}
