package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Tables loads optional overrides of table names and header labels.
//
//	timing:
//	  table: Chrono
//	  labels:
//	    quantity: Pieces
//	blank:
//	  table: Blanks
type Tables struct {
	path string
}

type tableOverride struct {
	Table  string            `yaml:"table"`
	Labels map[string]string `yaml:"labels"`
}

type tablesFile struct {
	Timing *tableOverride `yaml:"timing"`
	Blank  *tableOverride `yaml:"blank"`
	Other  *tableOverride `yaml:"other"`
}

func (x *Tables) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "tables-file",
			Usage:       "YAML file overriding table names and header labels",
			Category:    "Tables",
			Destination: &x.path,
			Sources:     cli.EnvVars("PRODBOT_TABLES_FILE"),
		},
	}
}

func (x Tables) LogValue() slog.Value {
	return slog.GroupValue(slog.String("path", x.path))
}

// Configure returns the default schemas with the file's overrides applied.
func (x *Tables) Configure() (record.Schemas, error) {
	schemas := record.DefaultSchemas()
	if x.path == "" {
		return schemas, nil
	}

	raw, err := os.ReadFile(filepath.Clean(x.path))
	if err != nil {
		return schemas, goerr.Wrap(err, "failed to read tables file", goerr.TV(errutil.FilePathKey, x.path))
	}

	return parseTables(raw, schemas)
}

func parseTables(raw []byte, schemas record.Schemas) (record.Schemas, error) {
	var file tablesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return schemas, goerr.Wrap(err, "failed to parse tables file", goerr.T(errs.TagValidation))
	}

	var err error
	if schemas.Timing, err = file.Timing.apply(schemas.Timing); err != nil {
		return schemas, err
	}
	if schemas.Blank, err = file.Blank.apply(schemas.Blank); err != nil {
		return schemas, err
	}
	if schemas.Other, err = file.Other.apply(schemas.Other); err != nil {
		return schemas, err
	}

	if err := schemas.Validate(); err != nil {
		return schemas, goerr.Wrap(err, "invalid tables file", goerr.T(errs.TagValidation))
	}
	return schemas, nil
}

func (x *tableOverride) apply(s record.Schema) (record.Schema, error) {
	if x == nil {
		return s, nil
	}
	if x.Table != "" {
		s.Table = x.Table
	}

	columns := make([]record.Column, len(s.Columns))
	copy(columns, s.Columns)
	for key, label := range x.Labels {
		found := false
		for i := range columns {
			if columns[i].Key == key {
				columns[i].Label = label
				found = true
			}
		}
		if !found {
			return s, goerr.New("unknown column in tables file",
				goerr.T(errs.TagValidation),
				goerr.TV(errutil.KindKey, s.Kind.String()),
				goerr.V("column", key))
		}
	}
	s.Columns = columns
	return s, nil
}
