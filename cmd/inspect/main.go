// Command inspect prints spine state and study data without rendering.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"spine-flexion-renderer/internal/scene"
	"spine-flexion-renderer/internal/spine"
	"spine-flexion-renderer/internal/study"
)

const (
	Version = "0.1.0"
	appName = "inspect"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Inspect spine poses and the study dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&format, "format", "f", "table", "Output format (table, json, yaml)")

	cmd.AddCommand(stateCmd(&format), datasetCmd(&format), methodsCmd(&format))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func stateCmd(format *string) *cobra.Command {
	var (
		sceneName string
		flexion   float64
		elapsed   float64
	)

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Print the assembled spine state for a flexion value or time",
		Long: `State assembles the spine for one frame. With --flexion the value is
used directly (clamped to [0,1]); otherwise the scene is ticked at
--elapsed seconds exactly as the renderer would.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			preset, err := scene.PresetByName(sceneName)
			if err != nil {
				return err
			}

			var s spine.SpineState
			if cmd.Flags().Changed("flexion") {
				s = spine.Assemble(preset.Config, flexion)
			} else {
				s, err = scene.New(preset, nil).Tick(elapsed)
				if err != nil {
					return err
				}
			}

			out := struct {
				Scene string           `json:"scene" yaml:"scene"`
				State spine.SpineState `json:"state" yaml:"state"`
			}{preset.Config.Name, s}

			return write(cmd.OutOrStdout(), *format, out, func(w io.Writer) error {
				return stateTable(w, preset.Config.Name, s)
			})
		},
	}

	cmd.Flags().StringVarP(&sceneName, "scene", "s", spine.HeroScene, "Scene: hero or anatomy")
	cmd.Flags().Float64Var(&flexion, "flexion", 0, "Flexion in [0,1] (overrides --elapsed)")
	cmd.Flags().Float64VarP(&elapsed, "elapsed", "t", 0, "Elapsed seconds")
	return cmd
}

func datasetCmd(format *string) *cobra.Command {
	var posture string

	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Print the neutral vs texting alignment measurements",
		RunE: func(cmd *cobra.Command, args []string) error {
			postures := study.Postures()
			if posture != "" {
				p, err := study.ParsePosture(posture)
				if err != nil {
					return err
				}
				postures = []study.Posture{p}
			}

			out := make(map[study.Posture][]study.Row, len(postures))
			for _, p := range postures {
				rows, err := study.Rows(p)
				if err != nil {
					return err
				}
				out[p] = rows
			}

			return write(cmd.OutOrStdout(), *format, out, func(w io.Writer) error {
				return datasetTable(w, postures, out)
			})
		},
	}

	cmd.Flags().StringVarP(&posture, "posture", "p", "", "standing or sitting (default: both)")
	return cmd
}

func methodsCmd(format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "Print the study protocol summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			facts := study.Methods()
			return write(cmd.OutOrStdout(), *format, facts, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				for _, f := range facts {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Label, f.Value, f.Detail)
				}
				return tw.Flush()
			})
		},
	}
}

func write(w io.Writer, format string, v any, table func(io.Writer) error) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "table", "":
		return table(w)
	}
	return fmt.Errorf("unknown format %q", format)
}

func stateTable(w io.Writer, name string, s spine.SpineState) error {
	fmt.Fprintf(w, "scene %s  flexion %.3f\n", name, s.Flexion)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "IDX\tLABEL\tX\tY\tZ\tRX\tRY\tRZ\tHIGHLIGHT")
	for _, v := range s.Vertebrae {
		p, r := v.Pose.Position, v.Pose.Rotation
		mark := ""
		if v.Highlighted {
			mark = "*"
		}
		fmt.Fprintf(tw, "%d\t%s\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%s\n",
			v.Spec.Index, v.Spec.Label, p[0], p[1], p[2], r[0], r[1], r[2], mark)
	}
	return tw.Flush()
}

func datasetTable(w io.Writer, postures []study.Posture, rows map[study.Posture][]study.Row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POSTURE\tSEGMENT\tNEUTRAL\tTEXTING\tDELTA\tDESCRIPTION")
	for _, p := range postures {
		for _, r := range rows[p] {
			m := r.Measurement
			fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%+.2f\t%s\n",
				p, r.Segment, m.Neutral, m.Texting, m.Delta(), r.Description)
		}
	}
	return tw.Flush()
}
