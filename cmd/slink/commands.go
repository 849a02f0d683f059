package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/slink/arff"
	"github.com/katalvlaran/slink/config"
	"github.com/katalvlaran/slink/core"
	"github.com/katalvlaran/slink/report"
	"github.com/katalvlaran/slink/singlelink"
)

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Cluster the dataset into k groups and report purity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k := a.cfg.K
			if k == 0 {
				if !a.terminal() {
					return fmt.Errorf("no cluster count: pass --k or set k in the configuration")
				}
				var err error
				if k, err = a.prompter().clusterCount(); err != nil {
					return err
				}
			}
			p, err := a.pipeline(cmd)
			if err != nil {
				return err
			}
			res, err := p.Run(cmd.Context(), k)
			if err != nil {
				return err
			}
			if a.cfg.Output == config.OutputJSON {
				return report.JSON(a.out, res)
			}

			return report.Text(a.out, res)
		},
	}
	cmd.Flags().IntVarP(&a.flags.k, "k", "k", 0, "number of clusters")

	return cmd
}

func (a *app) sweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Cluster the dataset for several k and compare purity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(a.cfg.Sweep) == 0 {
				return fmt.Errorf("no cluster counts: pass --ks or set sweep in the configuration")
			}
			p, err := a.pipeline(cmd)
			if err != nil {
				return err
			}
			results, err := p.Sweep(cmd.Context(), a.cfg.Sweep)
			if err != nil {
				return err
			}
			if a.cfg.Output == config.OutputJSON {
				return report.JSON(a.out, results)
			}

			return report.SweepText(a.out, results)
		},
	}
	cmd.Flags().IntSliceVar(&a.flags.ks, "ks", nil, "comma-separated cluster counts")

	return cmd
}

// mstOutput is the JSON shape of the mst command.
type mstOutput struct {
	RunID string      `json:"run_id"`
	Nodes int         `json:"nodes"`
	Edges int         `json:"edges"`
	MST   []core.Edge `json:"mst"`
}

func (a *app) mstCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mst",
		Short: "Print the minimum spanning tree of the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.pipeline(cmd)
			if err != nil {
				return err
			}
			if a.cfg.Output == config.OutputJSON {
				return report.JSON(a.out, mstOutput{
					RunID: p.RunID(),
					Nodes: p.NodeCount(),
					Edges: p.EdgeCount(),
					MST:   p.MST(),
				})
			}

			return report.MSTText(a.out, p.NodeCount(), p.MST())
		},
	}
}

// pipeline reads the dataset and builds its MST.
func (a *app) pipeline(cmd *cobra.Command) (*singlelink.Pipeline, error) {
	path, err := a.requireInput()
	if err != nil {
		return nil, err
	}
	records, err := arff.ReadFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Info("dataset loaded", "path", path, "records", len(records))

	return singlelink.New(cmd.Context(), records, a.cfg.PipelineOptions(a.logger)...)
}
