package strats_api

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
)

// A Job is the normalization of one input of one reference build.
type Job struct {
	RefKey   string
	BuildKey string
	InputKey string
	Ref      ChrSource
	Chrs     []ChrIndex
	Input    BedFileConfig
}

// NewRefBuild looks up a reference build. The returned job has no input and
// can only be used to inspect the reference.
func (config *Config) NewRefBuild(refKey string, buildKey string) (*Job, error) {
	ref, err := config.Reference(refKey)
	if err != nil {
		return nil, err
	}
	build, err := ref.Build(buildKey)
	if err != nil {
		return nil, errors.Wrapf(err, "reference %s", refKey)
	}
	return &Job{
		RefKey:   refKey,
		BuildKey: buildKey,
		Ref:      ref.Ref.Source,
		Chrs:     build.Chrs(),
	}, nil
}

// NewJob looks up everything needed to normalize an input.
func (config *Config) NewJob(refKey string, buildKey string, inputKey string) (*Job, error) {
	job, err := config.NewRefBuild(refKey, buildKey)
	if err != nil {
		return nil, err
	}
	input, err := config.References[refKey].Input(inputKey)
	if err != nil {
		return nil, errors.Wrapf(err, "reference %s", refKey)
	}
	job.InputKey = inputKey
	job.Input = input
	return job, nil
}

// Run reads the input files, one per haplotype for split inputs, and
// returns the normalized outputs.
func (job *Job) Run(inputPaths []string) ([]Output, error) {
	plan, err := Dispatch(job.Ref, job.Input.Source, job.Chrs, len(inputPaths))
	if err != nil {
		return nil, err
	}

	inputs := make([]BedTable, len(inputPaths))
	for i, path := range inputPaths {
		if inputs[i], err = ReadBedFile(path, job.Input.Params); err != nil {
			return nil, err
		}
	}
	return plan.Run(inputs)
}

// Normalize runs the job and writes its outputs. Without output paths a
// single output goes to stdout.
func (job *Job) Normalize(inputPaths []string, outputPaths []string) error {
	outputs, err := job.Run(inputPaths)
	if err != nil {
		return err
	}

	if len(outputPaths) == 0 {
		if len(outputs) != 1 {
			return errors.Errorf("%d outputs cannot all be written to stdout", len(outputs))
		}
		return WriteBed(os.Stdout, outputs[0].Bed)
	}
	paths, err := OutputPaths(outputs, outputPaths)
	if err != nil {
		return err
	}
	return WriteOutputs(outputs, paths)
}

// Execute normalizes the input files given on the command line
func Execute(Cctx *cli.Context, config *Config) error {
	job, err := config.NewJob(Cctx.String("reference"), Cctx.String("build"), Cctx.String("source"))
	if err != nil {
		return err
	}
	Logger.WithFields(logrus.Fields{
		"reference": job.RefKey,
		"build":     job.BuildKey,
		"input":     job.InputKey,
	}).Info("Normalizing")
	return job.Normalize(Cctx.StringSlice("input"), Cctx.StringSlice("output"))
}
