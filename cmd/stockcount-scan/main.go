// Command stockcount-scan runs one counting session on a terminal
// Each stdin line is one decode event, as typed by a keyboard wedge scanner
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"stockcount/internal/core/feedback"
	"stockcount/internal/core/manifest"
	"stockcount/internal/core/scanner"
	"stockcount/internal/platform/config"
	"stockcount/internal/platform/logger"
	"stockcount/internal/services/counting/domain"
	countingmod "stockcount/internal/services/counting/module"
)

func main() {
	var (
		fManifest = flag.String("manifest", "", "JSON file with the order lines")
		fKind     = flag.String("kind", "", "fetch lines from the warehouse backend: import | export")
		fOrder    = flag.String("order", "", "order or export request id for -kind")
		fCooldown = flag.Duration("cooldown", 2*time.Second, "pause after each accepted scan")
		fBell     = flag.Bool("bell", true, "ring the terminal bell on each accepted scan")
	)
	flag.Parse()

	logger.Init(logger.FromEnv())
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seeds, err := loadSeeds(ctx, config.New(), *fManifest, *fKind, *fOrder)
	if err != nil {
		l.Fatal().Err(err).Msg("load manifest")
	}

	var player feedback.Player
	if *fBell {
		player = bell(os.Stderr)
	}
	m, err := run(ctx, os.Stdin, os.Stdout, seeds, scanner.Options{Cooldown: *fCooldown, Player: player, Logger: l})
	if err != nil {
		l.Fatal().Err(err).Msg("scan session")
	}
	if !m.Complete() {
		os.Exit(2)
	}
}

// loadSeeds reads a manifest file or, with kind and order, asks the warehouse backend
func loadSeeds(ctx context.Context, cfg config.Conf, path, kind, order string) ([]manifest.Seed, error) {
	var lines []domain.LineInput
	switch {
	case path != "":
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &lines); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	case kind != "" && order != "":
		o := countingmod.FromConfig(cfg)
		if o.WMS.BaseURL == "" {
			return nil, errors.New("WMS_BASE_URL is required with -kind")
		}
		var err error
		if lines, err = countingmod.NewWMSOrders(o.WMS).Lines(ctx, domain.Kind(kind), order); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("either -manifest or -kind with -order is required")
	}

	seeds := make([]manifest.Seed, 0, len(lines))
	for _, in := range lines {
		seeds = append(seeds, manifest.Seed{
			ItemID:           in.ItemID,
			ExpectedQuantity: in.Expected,
			ActualQuantity:   in.Actual,
			DisplayName:      in.DisplayName,
		})
	}
	return seeds, nil
}

// run feeds every input line to a session and prints the final table at EOF
func run(ctx context.Context, in io.Reader, out io.Writer, seeds []manifest.Seed, opts scanner.Options) (manifest.Manifest, error) {
	m, err := manifest.Build(seeds)
	if err != nil {
		return manifest.Manifest{}, err
	}

	opts.Listener = scanner.Listener{
		OnAccepted: func(id string, actual, expected int, name string) {
			fmt.Fprintf(out, "+ %s %s %d/%d\n", id, name, actual, expected)
		},
		OnRejected: func(kind feedback.AlertKind, detail string) {
			fmt.Fprintf(out, "! %s %s\n", kind, detail)
		},
	}
	s := scanner.New(m, opts)
	defer s.Teardown()

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 4096), 64*1024)
	for sc.Scan() {
		if ctx.Err() != nil {
			break
		}
		if r := s.SubmitScan(sc.Text()); r.Dropped {
			fmt.Fprintf(out, "- dropped (%s)\n", r.Gate.State)
		}
	}
	if err := sc.Err(); err != nil {
		return manifest.Manifest{}, err
	}
	s.WaitFeedback()

	final := s.Manifest()
	printTable(out, final, s.Stats())
	return final, nil
}

func printTable(out io.Writer, m manifest.Manifest, st scanner.Stats) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tNAME\tEXPECTED\tACTUAL\tSTATUS")
	for _, l := range m.Lines() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", l.ItemID, l.DisplayName, l.ExpectedQuantity, l.ActualQuantity, l.Status())
	}
	_ = tw.Flush()

	counted, total := m.Progress()
	fmt.Fprintf(out, "%d/%d lines counted, %d scans (%d accepted, %d rejected, %d dropped, %d discarded)\n",
		counted, total, st.Submitted, st.Accepted, st.Rejected, st.Dropped, st.Discarded)
}

// bell writes BEL to w, most terminals turn it into a beep
func bell(w io.Writer) feedback.Player {
	return feedback.PlayerFunc(func(context.Context) error {
		_, err := io.WriteString(w, "\a")
		return err
	})
}
