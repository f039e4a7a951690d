package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "vector",
			Aliases: []string{"v"},
			Usage:   "Inline vector, components separated by commas (repeatable, accepts negative leading components)",
		},
		&cli.StringSliceFlag{
			Name:    "dataset",
			Aliases: []string{"d"},
			Usage:   "Load vectors from a dataset in the store (repeatable)",
		},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "vecmath",
		Usage:     "Vector arithmetic on inline vectors and stored datasets",
		ArgsUsage: "[VECTOR...]  (components separated by commas, e.g. 1,2,3)",
		// Commas separate vector components, not flag values.
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:    "store",
				Aliases: []string{"s"},
				Usage:   "Dataset store: DIR, file://DIR, s3://BUCKET/PREFIX or minio://ENDPOINT/BUCKET/PREFIX",
				EnvVars: []string{"VECMATH_STORE"},
			},
			&cli.StringFlag{
				Name:    "minio-access-key",
				Usage:   "MinIO access key",
				EnvVars: []string{"MINIO_ACCESS_KEY"},
			},
			&cli.StringFlag{
				Name:    "minio-secret-key",
				Usage:   "MinIO secret key",
				EnvVars: []string{"MINIO_SECRET_KEY"},
			},
			&cli.BoolFlag{
				Name:    "minio-secure",
				Usage:   "Use HTTPS for MinIO",
				EnvVars: []string{"MINIO_SECURE"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Elementwise sum of two vectors",
				ArgsUsage: "V W",
				Flags:     inputFlags(),
				Action:    addCommand,
			},
			{
				Name:      "subtract",
				Aliases:   []string{"sub"},
				Usage:     "Elementwise difference of two vectors",
				ArgsUsage: "V W",
				Flags:     inputFlags(),
				Action:    subtractCommand,
			},
			{
				Name:      "sum",
				Usage:     "Elementwise sum of all vectors",
				ArgsUsage: "[VECTOR...]",
				Flags:     inputFlags(),
				Action:    sumCommand,
			},
			{
				Name:      "scale",
				Usage:     "Multiply a vector by a scalar",
				ArgsUsage: "V",
				Flags: append(inputFlags(), &cli.Float64Flag{
					Name:     "by",
					Aliases:  []string{"c"},
					Usage:    "Scalar factor",
					Required: true,
				}),
				Action: scaleCommand,
			},
			{
				Name:      "mean",
				Usage:     "Elementwise mean of all vectors",
				ArgsUsage: "[VECTOR...]",
				Flags:     inputFlags(),
				Action:    meanCommand,
			},
			{
				Name:      "dot",
				Usage:     "Dot product of two vectors",
				ArgsUsage: "V W",
				Flags:     inputFlags(),
				Action:    dotCommand,
			},
			{
				Name:      "magnitude",
				Aliases:   []string{"norm"},
				Usage:     "Euclidean length of a vector",
				ArgsUsage: "V",
				Flags:     inputFlags(),
				Action:    magnitudeCommand,
			},
			{
				Name:      "distance",
				Aliases:   []string{"dist"},
				Usage:     "Euclidean distance between two vectors",
				ArgsUsage: "V W",
				Flags:     inputFlags(),
				Action:    distanceCommand,
			},
			{
				Name:      "metric",
				Usage:     "Compare two vectors with a named metric",
				ArgsUsage: "V W",
				Flags: append(inputFlags(), &cli.StringFlag{
					Name:    "metric",
					Aliases: []string{"m"},
					Usage:   "Metric (euclidean, squared-euclidean, dot, cosine)",
					Value:   "euclidean",
				}),
				Action: metricCommand,
			},
			{
				Name:      "normalize",
				Usage:     "Scale a vector to unit length",
				ArgsUsage: "V",
				Flags:     inputFlags(),
				Action:    normalizeCommand,
			},
			{
				Name:      "convert",
				Usage:     "Write vectors to a dataset in the store",
				ArgsUsage: "[VECTOR...]",
				Flags: append(inputFlags(),
					&cli.StringFlag{
						Name:     "out",
						Aliases:  []string{"o"},
						Usage:    "Name of the dataset to write",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "codec",
						Usage: "Payload codec (json, go-json)",
						Value: "go-json",
					},
					&cli.StringFlag{
						Name:  "compression",
						Usage: "Payload compression (none, lz4, zstd)",
						Value: "zstd",
					},
				),
				Action: convertCommand,
			},
		},
	}
}

func setupLogger(c *cli.Context) error {
	level, err := ParseLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	if c.App.Metadata == nil {
		c.App.Metadata = map[string]any{}
	}
	c.App.Metadata[loggerKey] = NewLogger(c.App.ErrWriter, level)
	return nil
}
