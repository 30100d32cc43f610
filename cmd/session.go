package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/foundationlab/gofla/internal/config"
	"github.com/foundationlab/gofla/internal/diagram"
	"github.com/foundationlab/gofla/internal/estimate"
	"github.com/foundationlab/gofla/internal/layout"
	"github.com/foundationlab/gofla/internal/rules"
	"github.com/spf13/cobra"
)

var sessionConfigFile string

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Interactive layout design session",
	Long: `Start an interactive session for placing components and managing
named layout snapshots.

Each mutation is followed by a re-run of the validator and estimator, so
constraint problems surface immediately. Type 'help' inside the session for
the command list.`,
	RunE: runSession,
}

func init() {
	rootCmd.AddCommand(sessionCmd)

	sessionCmd.Flags().StringVar(&sessionConfigFile, "config", "", "Path to TOML config with defaults and input ranges")
}

const sessionHelp = `  Commands:
    foundation <diameter> <wall>      set foundation parameters (m)
    generate <count> <radius> <dmm>   replace tendons with circular pattern
    add tendon <x> <y> <dmm>          add a tendon (diameter in mm)
    add grout <x> <y> <dmm>           add a grout connection (diameter in mm)
    add shaft <x> <y> <dm>            add an access shaft (diameter in m)
    clear                             remove all components
    name <name>                       rename the current layout
    save [name]                       save a snapshot of the current layout
    load <index>                      load a saved snapshot (as a copy)
    layouts                           list saved snapshots
    report                            full validation and estimate report
    plan                              ASCII plan view
    csv [file]                        tendon schedule as CSV
    quit                              leave the session`

// session bundles the store with the glue it needs: the configured input
// ranges and a logger.
type session struct {
	store  *layout.Store
	cfg    config.Config
	logger *log.Logger
}

func runSession(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg := config.Default()
	if sessionConfigFile != "" {
		var err error
		cfg, err = config.Load(sessionConfigFile)
		if err != nil {
			return err
		}
	}

	s := &session{
		store: layout.NewStore(layout.FoundationSpec{
			Diameter:      cfg.Foundation.Diameter,
			WallThickness: cfg.Foundation.WallThickness,
		}),
		cfg:    cfg,
		logger: logger,
	}

	fmt.Println()
	fmt.Println("  gofla interactive session - type 'help' for commands")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("gofla> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		s.dispatch(line)
	}

	return scanner.Err()
}

func (s *session) dispatch(line string) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	var err error
	switch cmd {
	case "help":
		fmt.Println(sessionHelp)
		return
	case "foundation":
		err = s.setFoundation(args)
	case "generate":
		err = s.generate(args)
	case "add":
		err = s.add(args)
	case "clear":
		s.store.ClearAll()
		s.logger.Info("cleared all components")
	case "name":
		if len(args) == 0 {
			err = fmt.Errorf("usage: name <name>")
		} else {
			s.store.SetName(strings.Join(args, " "))
		}
	case "save":
		name := s.store.Current().Name
		if len(args) > 0 {
			name = strings.Join(args, " ")
		}
		snap := s.store.Save(name, time.Now())
		s.logger.Info("layout saved", "name", snap.Name, "at", snap.SavedAt.Format("2006-01-02 15:04"))
	case "load":
		err = s.load(args)
	case "layouts":
		s.listSnapshots()
		return
	case "report":
		l := s.store.Current()
		printLayoutReport(l, rules.Validate(l), estimate.Estimate(l))
		return
	case "plan":
		fmt.Println(diagram.DrawPlanView(s.store.Current()))
		return
	case "csv":
		err = s.exportCSV(args)
		if err == nil {
			return
		}
	default:
		err = fmt.Errorf("unknown command %q, type 'help'", cmd)
	}

	if err != nil {
		s.logger.Error(err.Error())
		return
	}
	s.recheck()
}

// recheck re-runs validation and estimation after a mutation and prints a
// one-line status. Both are cheap pure functions, so running them on every
// interaction is the intended model.
func (s *session) recheck() {
	l := s.store.Current()
	result := rules.Validate(l)
	metrics := estimate.Estimate(l)

	status := "✓ all constraints satisfied"
	if !result.OK() {
		status = fmt.Sprintf("✗ %d violation(s), ⚠ %d warning(s)",
			len(result.Violations), len(result.Warnings))
	}
	fmt.Printf("  [%d tendons, %d grouts, %d shafts] %s | steel %.0f kg, score %.1f/10\n",
		len(l.Tendons), len(l.GroutConnections), len(l.AccessShafts),
		status, metrics.TotalSteelKg, metrics.ComplexityScore)
}

func (s *session) setFoundation(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: foundation <diameter> <wall>")
	}
	dia, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("bad diameter: %v", err)
	}
	wall, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("bad wall thickness: %v", err)
	}
	s.store.SetFoundation(layout.FoundationSpec{
		Diameter:      s.cfg.Inputs.FoundationDiameter.Clamp(dia),
		WallThickness: s.cfg.Inputs.WallThickness.Clamp(wall),
	})
	return nil
}

func (s *session) generate(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: generate <count> <radius> <diameter_mm>")
	}
	count, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad count: %v", err)
	}
	radius, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("bad radius: %v", err)
	}
	dmm, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("bad diameter: %v", err)
	}

	tendons := s.store.GeneratePattern(
		s.cfg.Inputs.TendonCount.Clamp(count),
		s.cfg.Inputs.PatternRadius.Clamp(radius),
		s.cfg.Inputs.TendonDiameter.Clamp(dmm),
	)
	s.logger.Info("generated circular pattern", "tendons", len(tendons))
	return nil
}

func (s *session) add(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: add <tendon|grout|shaft> <x> <y> <diameter>")
	}
	x, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("bad x: %v", err)
	}
	y, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("bad y: %v", err)
	}
	d, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return fmt.Errorf("bad diameter: %v", err)
	}

	switch args[0] {
	case "tendon":
		t := s.store.AddTendon(x, y, s.cfg.Inputs.TendonDiameter.Clamp(d))
		s.logger.Info("tendon added", "id", t.ID)
	case "grout":
		g := s.store.AddGroutConnection(x, y, s.cfg.Inputs.GroutDiameter.Clamp(d))
		s.logger.Info("grout connection added", "id", g.ID)
	case "shaft":
		a := s.store.AddAccessShaft(x, y, s.cfg.Inputs.ShaftDiameter.Clamp(d))
		s.logger.Info("access shaft added", "id", a.ID)
	default:
		return fmt.Errorf("unknown component %q, expected tendon, grout or shaft", args[0])
	}
	return nil
}

func (s *session) load(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: load <index>")
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad index: %v", err)
	}
	if err := s.store.Load(i); err != nil {
		return fmt.Errorf("loading snapshot %d: %w", i, err)
	}
	s.logger.Info("snapshot loaded", "index", i, "name", s.store.Current().Name)
	return nil
}

func (s *session) listSnapshots() {
	snaps := s.store.Snapshots()
	if len(snaps) == 0 {
		fmt.Println("  no saved layouts")
		return
	}
	for i, snap := range snaps {
		fmt.Printf("  [%d] %s - %s (%d tendons, %d grouts, %d shafts)\n",
			i, snap.Name, snap.SavedAt.Format("2006-01-02 15:04"),
			len(snap.Tendons), len(snap.GroutConnections), len(snap.AccessShafts))
	}
}

func (s *session) exportCSV(args []string) error {
	csvText := layout.TendonsCSV(s.store.Current().Tendons)
	if len(args) == 0 {
		fmt.Print(csvText)
		return nil
	}
	if err := os.WriteFile(args[0], []byte(csvText), 0644); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	s.logger.Info("tendon schedule exported", "path", args[0])
	return nil
}
