package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/greenloop/greenloop-go/pkg/localstore"
	"github.com/greenloop/greenloop-go/pkg/pagination"
)

func newEducationCommand(a *app, p *printer) *cobra.Command {
	cmd := &cobra.Command{Use: "education", Short: "Track recycling lessons on this machine"}

	complete := &cobra.Command{
		Use:   "complete <module-id>",
		Short: "Mark a lesson module as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.localStore(cmd.Context())
			if err != nil {
				return err
			}
			if err := store.MarkModuleCompleted(cmd.Context(), args[0]); err != nil {
				return err
			}
			return p.result(map[string]string{"completed": args[0]}, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "módulo %s completado\n", args[0])
				return err
			})
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List completed modules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.localStore(cmd.Context())
			if err != nil {
				return err
			}
			ids, err := store.CompletedModules(cmd.Context())
			if err != nil {
				return err
			}
			return p.result(map[string][]string{"completed": ids}, func(w io.Writer) error {
				for _, id := range ids {
					fmt.Fprintln(w, id)
				}
				return nil
			})
		},
	}

	cmd.AddCommand(complete, list, newQuizCommand(a, p))
	return cmd
}

func newQuizCommand(a *app, p *printer) *cobra.Command {
	cmd := &cobra.Command{Use: "quiz", Short: "Quiz answers per module"}

	answer := &cobra.Command{
		Use:   "answer <module-id> <question=choice>...",
		Short: "Record answers, e.g. q1=2 q2=0",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := parseAnswers(args[1:])
			if err != nil {
				return err
			}
			store, err := a.localStore(cmd.Context())
			if err != nil {
				return err
			}
			if err := store.SaveQuizProgress(cmd.Context(), args[0], answers); err != nil {
				return err
			}
			return p.result(answers, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%d respuestas guardadas\n", len(answers))
				return err
			})
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show saved answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.localStore(cmd.Context())
			if err != nil {
				return err
			}
			progress, err := store.QuizProgress(cmd.Context())
			if err != nil {
				return err
			}
			return p.result(progress, func(w io.Writer) error {
				modules := make([]string, 0, len(progress))
				for m := range progress {
					modules = append(modules, m)
				}
				sort.Strings(modules)
				for _, m := range modules {
					questions := make([]string, 0, len(progress[m]))
					for q, choice := range progress[m] {
						questions = append(questions, fmt.Sprintf("%s=%d", q, choice))
					}
					sort.Strings(questions)
					fmt.Fprintf(w, "%s: %s\n", m, strings.Join(questions, " "))
				}
				return nil
			})
		},
	}

	reset := &cobra.Command{
		Use:   "reset <module-id>",
		Short: "Forget a module's answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.localStore(cmd.Context())
			if err != nil {
				return err
			}
			return store.ResetQuiz(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(answer, show, reset)
	return cmd
}

func parseAnswers(args []string) (map[string]int, error) {
	answers := make(map[string]int, len(args))
	for _, arg := range args {
		question, raw, ok := strings.Cut(arg, "=")
		if !ok || question == "" {
			return nil, fmt.Errorf("answer %q must look like question=choice", arg)
		}
		choice, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("answer %q: %w", arg, err)
		}
		answers[question] = choice
	}
	return answers, nil
}

const eventTimeLayout = "2006-01-02 15:04"

func newEventsCommand(a *app, p *printer) *cobra.Command {
	cmd := &cobra.Command{Use: "events", Short: "Community events kept on this machine"}

	var (
		in     localstore.EventInput
		starts string
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Create an event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if starts != "" {
				t, err := time.ParseInLocation(eventTimeLayout, starts, time.Local)
				if err != nil {
					return fmt.Errorf("--starts must look like %q: %w", eventTimeLayout, err)
				}
				in.StartsAt = t
			}
			store, err := a.localStore(cmd.Context())
			if err != nil {
				return err
			}
			ev, err := store.CreateEvent(cmd.Context(), in)
			if err != nil {
				return err
			}
			return p.result(ev, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "evento %s creado\n", ev.ID)
				return err
			})
		},
	}
	add.Flags().StringVar(&in.Title, "title", "", "Event title")
	add.Flags().StringVar(&in.Description, "description", "", "Event description")
	add.Flags().StringVar(&in.Location, "location", "", "Where it happens")
	add.Flags().StringVar(&starts, "starts", "", "Start time, "+eventTimeLayout)

	var params pagination.Params
	list := &cobra.Command{
		Use:   "list",
		Short: "List events, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.localStore(cmd.Context())
			if err != nil {
				return err
			}
			page, err := store.Events(cmd.Context(), params)
			if err != nil {
				return err
			}
			return p.result(page, func(w io.Writer) error {
				rows := make([][]string, 0, len(page.Events))
				for _, ev := range page.Events {
					rows = append(rows, []string{ev.ID, ev.Title, ev.StartsAt.Local().Format(eventTimeLayout), ev.Location})
				}
				if err := table(w, []string{"ID", "TÍTULO", "INICIO", "LUGAR"}, rows); err != nil {
					return err
				}
				if page.NextCursor != "" {
					fmt.Fprintf(w, "más: --cursor %s\n", page.NextCursor)
				}
				return nil
			})
		},
	}
	list.Flags().IntVar(&params.Limit, "limit", 0, "Rows per page")
	list.Flags().StringVar(&params.Cursor, "cursor", "", "Cursor from a previous page")

	remove := &cobra.Command{
		Use:   "delete <event-id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.localStore(cmd.Context())
			if err != nil {
				return err
			}
			return store.DeleteEvent(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(add, list, remove)
	return cmd
}

func newFlashCommand(a *app, p *printer) *cobra.Command {
	return &cobra.Command{
		Use:   "flash",
		Short: "Print and clear the pending notice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.localStore(cmd.Context())
			if err != nil {
				return err
			}
			msg, ok, err := store.PopFlash(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			return p.result(map[string]string{"message": msg}, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, msg)
				return err
			})
		},
	}
}
