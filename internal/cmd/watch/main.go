package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ashpursglove/traycalc/internal/project"
	"github.com/ashpursglove/traycalc/internal/report"
	"github.com/ashpursglove/traycalc/internal/watch"
	"github.com/ashpursglove/traycalc/pkg/log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func Run(cmd *cobra.Command, args []string) {
	path := viper.GetString("project")
	if path == "" {
		log.Fatal("watch needs a project file: pass --project")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := watch.Run(ctx, path, watch.DefaultDebounce, func(p string) {
		proj, err := project.Load(p)
		if err != nil {
			log.Error("failed to reload project", zap.Error(err))
			return
		}

		in := report.NewInput(proj.Entries, proj.Tray)
		fmt.Printf("--- %s (%s)\n", p, in.GeneratedAt.Format("15:04:05"))
		if err := report.WriteText(os.Stdout, in); err != nil {
			log.Error("failed to print summary", zap.Error(err))
		}
		fmt.Println()
	})

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("watch failed", zap.Error(err))
	}
}
