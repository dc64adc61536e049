// Package output writes non-interactive command output.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/fadelist/internal/source"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

// Error prints a formatted error to stderr.
func Error(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("ERROR:")+" "+fmt.Sprintf(format, args...))
}

// WriteRows writes rows in the same id<TAB>label[<TAB>detail] form the watch
// source reads, so plain output can be fed back into it.
func WriteRows(w io.Writer, rows []source.Row) error {
	bw := bufio.NewWriter(w)
	for _, r := range rows {
		fields := []string{r.ID, r.Label}
		if r.Detail != "" {
			fields = append(fields, r.Detail)
		}
		if _, err := bw.WriteString(strings.Join(fields, "\t") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
