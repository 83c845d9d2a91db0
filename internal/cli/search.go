package cli

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"flashfind/internal/actions"
	"flashfind/internal/console"
	"flashfind/internal/domain"
	"flashfind/internal/logging"
	"flashfind/internal/results"
)

type searchOptions struct {
	table  bool
	output string
	yes    bool
}

func newSearchCmd(root *options) *cobra.Command {
	so := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run one search and print the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, root)
			if err != nil {
				return err
			}
			defer a.Close()

			con := console.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
			return runSearch(cmd.Context(), a, con, args[0], so)
		},
	}

	cmd.Flags().BoolVar(&so.table, "table", false, "print a numbered table instead of plain paths")
	cmd.Flags().StringVarP(&so.output, "output", "o", "", "also save the results to this file")
	cmd.Flags().BoolVarP(&so.yes, "yes", "y", false, "overwrite the output file without asking")
	return cmd
}

func runSearch(ctx context.Context, a *app, con *console.Console, query string, so *searchOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	rs, err := a.searcher.Search(ctx, domain.NewQuery(query, a.cfg.Regex))
	if err != nil {
		return newNoticeError(err)
	}

	if rs.Len() > 0 {
		con.PrintResults(rs, so.table)
	}
	con.PrintCount(rs.Len())

	if so.output == "" {
		return nil
	}

	store := results.NewStore()
	store.Replace(rs)
	svc := actions.New(store, nil, nil, logging.Component(a.log, "actions"))
	if err := svc.CheckSave(); err != nil {
		return newNoticeError(err)
	}

	if !so.yes && a.cfg.Save.ConfirmOverwrite {
		_, err := os.Stat(so.output)
		switch {
		case err == nil:
			ok, err := con.ConfirmOverwrite(so.output)
			if err != nil {
				return err
			}
			if !ok {
				con.PrintNotice(domain.Notice{Kind: domain.NoticeInfo, Title: "Cancelled", Message: "Results were not saved."})
				return nil
			}
		case !errors.Is(err, fs.ErrNotExist):
			return newNoticeError(err)
		}
	}

	if err := svc.Save(so.output); err != nil {
		return newNoticeError(err)
	}
	con.PrintNotice(domain.NoticeSaved(so.output))
	return nil
}
