package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/blobstore"
	"github.com/hupe1980/vecmath/codec"
	"github.com/hupe1980/vecmath/compress"
	"github.com/hupe1980/vecmath/dataset"
	"github.com/hupe1980/vecmath/distance"
	"github.com/urfave/cli/v2"
)

const loggerKey = "logger"

func loggerFrom(c *cli.Context) *Logger {
	if l, ok := c.App.Metadata[loggerKey].(*Logger); ok {
		return l.WithOperation(c.Command.Name)
	}
	return NoopLogger()
}

// parseVector parses comma-separated components. "" and "[]" yield an
// empty vector; surrounding brackets are optional.
func parseVector(s string) (vecmath.Vector, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	if strings.TrimSpace(s) == "" {
		return vecmath.Vector{}, nil
	}
	parts := strings.Split(s, ",")
	v := make(vecmath.Vector, len(parts))
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid component %d of %q: %w", i, s, err)
		}
		v[i] = x
	}
	return v, nil
}

func storeFrom(c *cli.Context) (blobstore.BlobStore, error) {
	return openStore(c.Context, storeConfig{
		URI:            c.String("store"),
		MinioAccessKey: c.String("minio-access-key"),
		MinioSecretKey: c.String("minio-secret-key"),
		MinioSecure:    c.Bool("minio-secure"),
	})
}

// readInputs collects --vector values, then positional vectors, then the
// vectors of every --dataset, in order.
func readInputs(c *cli.Context) ([]vecmath.Vector, error) {
	var vectors []vecmath.Vector
	var inline []string
	inline = append(inline, c.StringSlice("vector")...)
	inline = append(inline, c.Args().Slice()...)
	for _, arg := range inline {
		v, err := parseVector(arg)
		if err != nil {
			return nil, err
		}
		vectors = append(vectors, v)
	}

	names := c.StringSlice("dataset")
	if len(names) == 0 {
		return vectors, nil
	}

	logger := loggerFrom(c)
	store, err := storeFrom(c)
	if err != nil {
		return nil, err
	}
	sets, err := dataset.LoadAll(c.Context, store, names)
	if err != nil {
		logger.LogLoad(c.Context, strings.Join(names, ","), 0, err)
		return nil, err
	}
	for i, set := range sets {
		logger.LogLoad(c.Context, names[i], len(set), nil)
		vectors = append(vectors, set...)
	}
	return vectors, nil
}

func readExactly(c *cli.Context, n int) ([]vecmath.Vector, error) {
	vectors, err := readInputs(c)
	if err != nil {
		return nil, err
	}
	if len(vectors) != n {
		return nil, fmt.Errorf("%s expects %d vectors, got %d", c.Command.Name, n, len(vectors))
	}
	return vectors, nil
}

func writeResult(c *cli.Context, result any) error {
	data, err := codec.Default.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(c.App.Writer, string(data))
	return err
}

func finish(c *cli.Context, inputs []vecmath.Vector, result any, err error) error {
	dim := 0
	if len(inputs) > 0 {
		dim = len(inputs[0])
	}
	loggerFrom(c).LogCompute(c.Context, len(inputs), dim, err)
	if err != nil {
		return err
	}
	return writeResult(c, result)
}

func binaryVector(c *cli.Context, fn func(v, w vecmath.Vector) (vecmath.Vector, error)) error {
	vs, err := readExactly(c, 2)
	if err != nil {
		return err
	}
	out, err := fn(vs[0], vs[1])
	return finish(c, vs, out, err)
}

func binaryScalar(c *cli.Context, fn func(v, w vecmath.Vector) (float64, error)) error {
	vs, err := readExactly(c, 2)
	if err != nil {
		return err
	}
	out, err := fn(vs[0], vs[1])
	return finish(c, vs, out, err)
}

func addCommand(c *cli.Context) error {
	return binaryVector(c, vecmath.Add)
}

func subtractCommand(c *cli.Context) error {
	return binaryVector(c, vecmath.Subtract)
}

func dotCommand(c *cli.Context) error {
	return binaryScalar(c, vecmath.Dot)
}

func distanceCommand(c *cli.Context) error {
	return binaryScalar(c, vecmath.Distance)
}

func metricCommand(c *cli.Context) error {
	m, err := distance.ParseMetric(c.String("metric"))
	if err != nil {
		return err
	}
	fn, err := distance.Provider(m)
	if err != nil {
		return err
	}
	return binaryScalar(c, fn)
}

func sumCommand(c *cli.Context) error {
	vs, err := readInputs(c)
	if err != nil {
		return err
	}
	out, err := vecmath.Sum(vs)
	return finish(c, vs, out, err)
}

func meanCommand(c *cli.Context) error {
	vs, err := readInputs(c)
	if err != nil {
		return err
	}
	out, err := vecmath.Mean(vs)
	return finish(c, vs, out, err)
}

func scaleCommand(c *cli.Context) error {
	vs, err := readExactly(c, 1)
	if err != nil {
		return err
	}
	return finish(c, vs, vecmath.ScalarMultiply(c.Float64("by"), vs[0]), nil)
}

func magnitudeCommand(c *cli.Context) error {
	vs, err := readExactly(c, 1)
	if err != nil {
		return err
	}
	return finish(c, vs, vecmath.Magnitude(vs[0]), nil)
}

func normalizeCommand(c *cli.Context) error {
	vs, err := readExactly(c, 1)
	if err != nil {
		return err
	}
	out, ok := distance.NormalizeL2(vs[0])
	if !ok {
		err = distance.ErrZeroMagnitude
	}
	return finish(c, vs, out, err)
}

func convertCommand(c *cli.Context) error {
	cd, ok := codec.ByName(c.String("codec"))
	if !ok {
		return fmt.Errorf("unknown codec %q", c.String("codec"))
	}
	comp, err := compress.ParseType(c.String("compression"))
	if err != nil {
		return err
	}
	vs, err := readInputs(c)
	if err != nil {
		return err
	}
	store, err := storeFrom(c)
	if err != nil {
		return err
	}

	name := c.String("out")
	err = dataset.Save(c.Context, store, name, vs, dataset.WithCodec(cd), dataset.WithCompression(comp))
	loggerFrom(c).LogSave(c.Context, name, len(vs), err)
	if err != nil {
		return err
	}
	return writeResult(c, map[string]any{"dataset": name, "vectors": len(vs)})
}
