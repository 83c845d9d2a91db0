package console

import (
	"fmt"
	"io"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"flashfind/internal/domain"
)

// Console prints headless search output
type Console struct {
	out     io.Writer
	errOut  io.Writer
	confirm func(message string) (bool, error)
}

// New creates a console writing results to out and messages to errOut
func New(out, errOut io.Writer) *Console {
	return &Console{out: out, errOut: errOut, confirm: askConfirm}
}

// PrintResults writes the results, one path per line or as a numbered table
func (c *Console) PrintResults(rs domain.ResultSet, asTable bool) {
	if asTable {
		fmt.Fprintln(c.out, RenderTable(rs))
		return
	}
	for _, path := range rs {
		fmt.Fprintln(c.out, path)
	}
}

// PrintCount reports how many results were found
func (c *Console) PrintCount(n int) {
	if n == 0 {
		fmt.Fprintln(c.errOut, domain.NoticeNoResults.Message)
		return
	}
	fmt.Fprintf(c.errOut, "Results Found: %d\n", n)
}

// PrintNotice writes a notice as a single line
func (c *Console) PrintNotice(n domain.Notice) {
	fmt.Fprintf(c.errOut, "%s: %s\n", n.Title, n.Message)
}

// ConfirmOverwrite asks before replacing an existing file
func (c *Console) ConfirmOverwrite(path string) (bool, error) {
	return c.confirm(fmt.Sprintf("%s already exists. Overwrite?", path))
}

// RenderTable renders results as a numbered table
func RenderTable(rs domain.ResultSet) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", "Path"})
	for i, path := range rs {
		tw.AppendRow(table.Row{i + 1, path})
	}
	tw.AppendFooter(table.Row{"", fmt.Sprintf("Results Found: %d", len(rs))})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})
	return tw.Render()
}

func askConfirm(message string) (bool, error) {
	ok := false
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: false}, &ok); err != nil {
		return false, err
	}
	return ok, nil
}
