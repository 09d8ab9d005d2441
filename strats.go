package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/usnistgov/giab-stratifications-pipeline/strats_api"
	cli "github.com/urfave/cli/v2"
)

func main() {
	configFlag := &cli.StringFlag{
		Name:     "config",
		Aliases:  []string{"c"},
		Usage:    "Configuration file (YAML) describing the references, builds and inputs",
		Required: true,
		Category: "Required",
	}
	referenceFlag := &cli.StringFlag{
		Name:     "reference",
		Aliases:  []string{"r"},
		Usage:    "The reference to normalize against",
		Required: true,
		Category: "Required",
	}
	buildFlag := &cli.StringFlag{
		Name:     "build",
		Aliases:  []string{"b"},
		Usage:    "The build of the reference",
		Value:    strats_api.DefaultBuildKey,
		Category: "Optional",
	}

	app := &cli.App{
		Name:            "strats",
		Usage:           "A tool to normalize chromosome names and order of stratification BED files",
		HideHelpCommand: true,
		Version:         "0.1.0dev",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:     "verbose",
				Aliases:  []string{"v"},
				Usage:    "Log debugging information, like the number of dropped rows",
				Category: "Optional",
			},
		},
		Before: func(Cctx *cli.Context) error {
			strats_api.SetVerbose(Cctx.Bool("verbose"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "normalize",
				Usage: "Rename, filter and sort the input BED file(s) to match a reference build",
				Flags: []cli.Flag{
					configFlag,
					referenceFlag,
					buildFlag,
					&cli.StringFlag{
						Name:     "source",
						Aliases:  []string{"s"},
						Usage:    "The input of the reference in the config file that describes the input files",
						Required: true,
						Category: "Required",
					},
					&cli.StringSliceFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "The input BED file, given twice for inputs split by haplotype (first haplotype first)",
						Required: true,
						Category: "Required",
					},
					&cli.StringSliceFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "The output BED file(s), defaults to stdout. A single path for two haplotype outputs gets the haplotype inserted before its extensions",
						Category: "Optional",
					},
				},
				Action: func(Cctx *cli.Context) error {
					config, err := strats_api.ReadConfig(Cctx.String("config"))
					if err != nil {
						return cli.Exit(err, 1)
					}
					if err := strats_api.Execute(Cctx, config); err != nil {
						return cli.Exit(err, 1)
					}
					return nil
				},
			},
			{
				Name:      "check",
				Usage:     "Check that final stratification files are bgzipped, sorted and use the reference's chromosome names",
				ArgsUsage: "FILE...",
				Flags: []cli.Flag{
					configFlag,
					referenceFlag,
					buildFlag,
					&cli.StringFlag{
						Name:     "haplotype",
						Usage:    "The haplotype of the files for references split by haplotype. Must be one of: hap1, hap2",
						Category: "Optional",
					},
				},
				Action: func(Cctx *cli.Context) error {
					reverse, err := checkMapper(Cctx)
					if err != nil {
						return cli.Exit(err, 1)
					}
					var failures []string
					for _, path := range Cctx.Args().Slice() {
						failures = append(failures, strats_api.CheckFile(path, reverse)...)
					}
					for _, failure := range failures {
						fmt.Println(failure)
					}
					if len(failures) > 0 {
						return cli.Exit(fmt.Sprintf("%d check(s) failed", len(failures)), 1)
					}
					return nil
				},
			},
			{
				Name:  "names",
				Usage: "List the chromosome names of each output file of a reference build",
				Flags: []cli.Flag{
					configFlag,
					referenceFlag,
					buildFlag,
				},
				Action: func(Cctx *cli.Context) error {
					config, err := strats_api.ReadConfig(Cctx.String("config"))
					if err != nil {
						return cli.Exit(err, 1)
					}
					job, err := config.NewRefBuild(Cctx.String("reference"), Cctx.String("build"))
					if err != nil {
						return cli.Exit(err, 1)
					}
					fms := strats_api.RefFinalMappers(job.Ref, job.Chrs)
					for i, fm := range fms {
						names := make([]string, 0, len(fm))
						for _, index := range fm.Indices() {
							names = append(names, fm[index])
						}
						out := strats_api.Output{Split: len(fms) > 1, Haplotype: strats_api.Haplotypes[i]}
						fmt.Printf("%s\t%s\n", out.Key(job.RefKey), strings.Join(names, ","))
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New(os.Stderr, "", 0).Fatal(err)
	}
}

// checkMapper builds the name to sort key mapping the checked files must
// follow.
func checkMapper(Cctx *cli.Context) (strats_api.InitMapper, error) {
	config, err := strats_api.ReadConfig(Cctx.String("config"))
	if err != nil {
		return nil, err
	}
	job, err := config.NewRefBuild(Cctx.String("reference"), Cctx.String("build"))
	if err != nil {
		return nil, err
	}
	hap := strats_api.Hap1
	if job.Ref.Layout() == strats_api.LayoutDiploidSplit {
		if hap, err = strats_api.HaplotypeFromName(Cctx.String("haplotype")); err != nil {
			return nil, err
		}
	}
	return strats_api.ReverseMapper(job.Ref, job.Chrs, hap), nil
}
