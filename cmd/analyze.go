// Package cmd defines all the commands for the cli.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alazlabs/alaz/disassembler"
	"github.com/alazlabs/alaz/instructiondb"
	"github.com/alazlabs/alaz/objdump"
	"github.com/alazlabs/alaz/profile"
	"github.com/alazlabs/alaz/renderer"
	"github.com/alazlabs/alaz/semantic"
	"github.com/urfave/cli/v2"
)

var (
	ProfileFlag = &cli.PathFlag{
		Name:     "profile",
		Usage:    "Path to the analysis profile config file",
		Required: false,
	}
	FormatFlag = &cli.StringFlag{
		Name:        "format",
		Usage:       "format of the output. Options: markdown, json",
		Required:    false,
		DefaultText: "markdown",
	}
	ReportOutputPathFlag = &cli.PathFlag{
		Name:     "report-output-path",
		Usage:    "output file path for the report. Default: stdout",
		Required: false,
	}
	SingleFlag = &cli.BoolFlag{
		Name:     "single",
		Usage:    "single-file mode: analyze one dump file instead of one per optimization level",
		Required: false,
		Value:    false,
	}
	DisassembleFlag = &cli.BoolFlag{
		Name:     "disassemble",
		Usage:    "treat inputs as binaries and run objdump on them first",
		Required: false,
		Value:    false,
	}
)

func CreateAnalyzeCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "analyze",
		Usage:       "Explains the assembly generated for a function",
		Description: "Extracts a function from dump files and renders a source/assembly/meaning report",
		ArgsUsage:   "FUNCTION PREFIX_OR_FILE",
		Action:      action,
		Flags: []cli.Flag{
			ProfileFlag,
			FormatFlag,
			ReportOutputPathFlag,
			SingleFlag,
			DisassembleFlag,
		},
	}
}

var AnalyzeCommand = CreateAnalyzeCommand(AnalyzeFunction)

func AnalyzeFunction(ctx *cli.Context) error {
	function := ctx.Args().Get(0)
	target := ctx.Args().Get(1)
	if function == "" || target == "" {
		return errors.New("expected arguments: FUNCTION PREFIX_OR_FILE")
	}

	prof, err := loadProfile(ctx.Path(ProfileFlag.Name))
	if err != nil {
		return fmt.Errorf("error loading profile: %w", err)
	}

	db, err := instructiondb.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("error loading instruction database: %w", err)
	}

	report := &renderer.FunctionReport{Function: function}
	for _, level := range levels(ctx, prof) {
		path := target
		if level != "" {
			path = prof.DumpFile(target, level)
		}
		rows, err := analyzeDump(path, function, db, ctx.Bool(DisassembleFlag.Name))
		if err != nil {
			return fmt.Errorf("analysis of %s failed: %w", path, err)
		}
		report.Levels = append(report.Levels, renderer.LevelReport{Level: levelName(level, path), Rows: rows})
	}

	if err := writeReport(report, ctx.String(FormatFlag.Name), ctx.Path(ReportOutputPathFlag.Name), prof); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}
	return nil
}

func loadProfile(path string) (*profile.AnalysisProfile, error) {
	if path == "" {
		return profile.Default(), nil
	}
	return profile.LoadProfile(path)
}

// levels returns the optimization-level suffixes to analyze; single-file mode
// uses one unsuffixed level.
func levels(ctx *cli.Context, prof *profile.AnalysisProfile) []string {
	if ctx.Bool(SingleFlag.Name) {
		return []string{""}
	}
	return prof.OptLevels
}

func levelName(level, path string) string {
	if level != "" {
		return level
	}
	return filepath.Base(path)
}

// analyzeDump extracts the function from one dump file and glosses every
// entry.
func analyzeDump(path, function string, db *instructiondb.Database, fromBinary bool) ([]renderer.Row, error) {
	parser, err := loadListing(path, fromBinary)
	if err != nil {
		return nil, err
	}

	entries, err := parser.ExtractFunction(function)
	if err != nil {
		return nil, err
	}

	rows := make([]renderer.Row, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, renderer.Row{Entry: entry, Gloss: gloss(entry, db)})
	}
	return rows, nil
}

func loadListing(path string, fromBinary bool) (*objdump.DumpParser, error) {
	if !fromBinary {
		return objdump.LoadDumpFile(path)
	}
	dis, err := disassembler.New(disassembler.TypeObjdump)
	if err != nil {
		return nil, err
	}
	listing, err := dis.Disassemble(path, "")
	if err != nil {
		return nil, fmt.Errorf("error disassembling the file: %w", err)
	}
	return objdump.NewDumpParser(listing), nil
}

// gloss renders the semantic description of a parsed entry. Entries the
// classifier could not parse fall back to the reference database description
// of their mnemonic.
func gloss(entry objdump.DumpEntry, db *instructiondb.Database) string {
	if entry.Parsed != nil {
		return semantic.Describe(entry.Parsed)
	}
	if entry.AsmInstruction == "" {
		return ""
	}
	mnemonic := strings.Fields(entry.AsmInstruction)[0]
	if def, ok := db.Find(mnemonic); ok {
		return def.Description
	}
	return ""
}

// writeReport outputs the report in the requested format.
func writeReport(report *renderer.FunctionReport, format, outputPath string, prof *profile.AnalysisProfile) error {
	var output *os.File
	if outputPath == "" {
		output = os.Stdout
	} else {
		absPath, err := filepath.Abs(outputPath)
		if err != nil {
			return fmt.Errorf("unable to determine absolute path: %w", err)
		}
		output, err = os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("unable to open output file: %w", err)
		}
		defer func() {
			_ = output.Close()
		}()
	}

	var rendererInstance renderer.Renderer
	switch format {
	case "markdown", "":
		rendererInstance = renderer.NewMarkdownRenderer(prof)
	case "json":
		rendererInstance = renderer.NewJSONRenderer()
	default:
		return fmt.Errorf("invalid format: %s", format)
	}

	return rendererInstance.Render(report, output)
}
