package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vcrobe/jokepage/internal/pagecheck"
	"github.com/vcrobe/jokepage/web"
)

// errCheckFailed is returned when at least one shell is incomplete.
var errCheckFailed = errors.New("page check failed")

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: "Verify page shells (embedded ones when no file is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := false

			if len(args) == 0 {
				for _, name := range web.Shells {
					ok, err := checkOne(out, name, func() (io.ReadCloser, error) { return web.Static.Open(name) })
					if err != nil {
						return err
					}
					failed = failed || !ok
				}
			} else {
				for _, path := range args {
					ok, err := checkOne(out, path, func() (io.ReadCloser, error) { return os.Open(path) })
					if err != nil {
						return err
					}
					failed = failed || !ok
				}
			}

			if failed {
				return errCheckFailed
			}
			return nil
		},
	}
}

func checkOne(out io.Writer, name string, open func() (io.ReadCloser, error)) (bool, error) {
	f, err := open()
	if err != nil {
		return false, err
	}
	defer f.Close()

	rep, err := pagecheck.CheckShell(f)
	if err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}

	if rep.OK() {
		fmt.Fprintf(out, "%s: %s ok\n", name, rep.Mode)
		return true, nil
	}
	missing := make([]string, len(rep.Missing))
	for i, id := range rep.Missing {
		missing[i] = "#" + id
	}
	fmt.Fprintf(out, "%s: %s missing %s\n", name, rep.Mode, strings.Join(missing, ", "))
	return false, nil
}
