package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/raphaelgruber/tidy/internal/models"
	"github.com/raphaelgruber/tidy/internal/service"
)

// session ties the rename service to a console.
type session struct {
	svc     *service.RenameService
	content models.ContentType
	in      *bufio.Reader
	out     io.Writer
	theme   Theme
	verbose bool
}

func newLineReader(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// runMenu loops over menu selections until exit, end of input or
// cancellation. Stage errors are printed and the menu continues; exiting
// leaves the work files as they are.
func (s *session) runMenu(ctx context.Context, choose chooser) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		choice, err := choose()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch choice {
		case choiceGenerate:
			err = s.generate()
		case choiceReconcile:
			err = s.reconcile()
		case choiceApply:
			err = s.apply(ctx, false)
		case choiceExit:
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please choose a valid option.")
		}
		if err != nil {
			s.printError(err)
		}
	}
}

func (s *session) generate() error {
	ws := s.svc.Workspace()
	fmt.Fprintf(s.out, "Generating %s prompt for the LLM...\n", s.content)

	res, err := s.svc.Generate(s.content)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, s.theme.completedStyle().Render(fmt.Sprintf("✓ %s written (%d entries)", ws.Files.Prompt, res.Entries)))
	if res.Copied {
		fmt.Fprintln(s.out, "Prompt copied to clipboard.")
	}
	fmt.Fprintln(s.out, s.theme.hintStyle().Render(fmt.Sprintf(
		"Copy the content of %s into your LLM and paste its reply into %s, then continue with step 2.",
		res.PromptPath, ws.OutputPath())))
	return nil
}

func (s *session) reconcile() error {
	ws := s.svc.Workspace()
	fmt.Fprintln(s.out, "Reading output of LLM...")

	res, err := s.svc.Reconcile()
	if err != nil {
		var mismatch *service.MismatchError
		if errors.As(err, &mismatch) {
			fmt.Fprintf(s.out, "Lines old names: %d\n", mismatch.Entries)
			fmt.Fprintf(s.out, "Lines renamed data: %d\n", mismatch.Replies)
			fmt.Fprintln(s.out, "Content of the folder changed or the output of the LLM is wrong. Please redo the first step.")
		}
		return err
	}

	if res.FromClipboard {
		fmt.Fprintf(s.out, "Reply taken from clipboard into %s.\n", ws.Files.Output)
	}
	for _, p := range res.Pairs {
		fmt.Fprintf(s.out, "  %s\n", p)
	}
	fmt.Fprintln(s.out, s.theme.completedStyle().Render(fmt.Sprintf("✓ %s written (%d pairs)", ws.Files.DryRun, len(res.Pairs))))
	fmt.Fprintln(s.out, s.theme.hintStyle().Render(fmt.Sprintf(
		"Review (and edit if needed) %s, then continue with step 3.", res.DryRunPath)))
	return nil
}

func (s *session) apply(ctx context.Context, assumeYes bool) error {
	if !assumeYes {
		ok, err := s.confirm("Are you sure? Did you check the dry-run file? Confirm y/n: ")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(s.out, "Cancelled.")
			return nil
		}
	}

	report, err := s.svc.Apply(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, renderReport(s.theme, report, s.verbose))

	if report.Failed() > 0 {
		return fmt.Errorf("%d of %d renames failed", report.Failed(), len(report.Outcomes))
	}
	return nil
}

// confirm reads one answer; only "y" confirms.
func (s *session) confirm(question string) (bool, error) {
	fmt.Fprint(s.out, question)
	response, err := s.in.ReadString('\n')
	if err != nil && (response == "" || !errors.Is(err, io.EOF)) {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(strings.ToLower(response)) == "y", nil
}

func (s *session) printError(err error) {
	fmt.Fprintln(s.out, s.theme.errorStyle().Render("✗ "+err.Error()))
}

func (s *session) suggest() error {
	res, err := s.svc.Suggest()
	if err != nil {
		return err
	}
	for _, p := range res.Pairs {
		fmt.Fprintf(s.out, "  %s\n", p)
	}
	fmt.Fprintln(s.out, s.theme.completedStyle().Render(fmt.Sprintf("✓ %s written (%d pairs)", s.svc.Workspace().Files.DryRun, len(res.Pairs))))
	return nil
}
