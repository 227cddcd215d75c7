// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package config loads the HCL configuration file that supplies default
// values for the aclcheck CLI: parser and writer selection, I/O paths,
// and logging/metrics settings.
package config

import (
	"os"

	"dario.cat/mergo"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"

	aclerrors "grimm.is/aclcheck/internal/errors"
)

// Config is the root HCL configuration schema.
type Config struct {
	Format     string         `hcl:"format,optional" json:"format,omitempty"`
	Detail     int            `hcl:"detail,optional" json:"detail,omitempty"`
	InputPath  string         `hcl:"input_path,optional" json:"input_path,omitempty"`
	OutputPath string         `hcl:"output_path,optional" json:"output_path,omitempty"`
	LogLevel   string         `hcl:"log_level,optional" json:"log_level,omitempty"`
	LogFile    string         `hcl:"log_file,optional" json:"log_file,omitempty"`
	Metrics    *MetricsConfig `hcl:"metrics,block" json:"metrics,omitempty"`

	// Remain captures any attribute not named above, so static_labels (an
	// object whose keys are not known ahead of time) can be decoded
	// separately below rather than rejected as an unexpected argument.
	Remain hcl.Body `hcl:",remain" json:"-"`

	// StaticLabels holds extra labels to attach to every exported metric,
	// e.g. `static_labels = { site = "dc1" }`. Populated from Remain by
	// resolveStaticLabels after decode and before mergo.Merge runs, with
	// Remain then cleared, so the merge below only sees a plain string map:
	// a go-cty value carries unexported internal state a generic
	// reflection-based merge should not be asked to walk.
	StaticLabels map[string]string `json:"-"`
}

// MetricsConfig controls the Prometheus HTTP exposition endpoint.
type MetricsConfig struct {
	Enabled bool   `hcl:"enabled,optional" json:"enabled,omitempty"`
	Listen  string `hcl:"listen,optional" json:"listen,omitempty"`
}

// resolveStaticLabels looks for a `static_labels = {...}` attribute in
// body and evaluates it to a plain string map, skipping any value that
// isn't itself a string. Returns nil if the attribute is absent.
func resolveStaticLabels(body hcl.Body) (map[string]string, error) {
	if body == nil {
		return nil, nil
	}
	content, _, diags := body.PartialContent(&hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{{Name: "static_labels"}},
	})
	if diags.HasErrors() {
		return nil, aclerrors.Errorf(aclerrors.KindValidation, "config: %s", diags.Error())
	}

	attr, ok := content.Attributes["static_labels"]
	if !ok {
		return nil, nil
	}
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, aclerrors.Errorf(aclerrors.KindValidation, "config: static_labels: %s", diags.Error())
	}
	if val.IsNull() || !val.IsKnown() {
		return nil, nil
	}

	out := make(map[string]string)
	it := val.ElementIterator()
	for it.Next() {
		k, v := it.Element()
		if v.Type() == cty.String {
			out[k.AsString()] = v.AsString()
		}
	}
	return out, nil
}

// Default returns the built-in defaults, applied before any file or flag
// overrides.
func Default() *Config {
	return &Config{
		Format:     "yaml",
		Detail:     2,
		OutputPath: "result.txt",
		LogLevel:   "info",
		Metrics: &MetricsConfig{
			Enabled: false,
			Listen:  "127.0.0.1:9109",
		},
	}
}

// Load reads an HCL configuration file at path and merges it over the
// built-in defaults; explicit fields in the file win, absent ones fall
// back to Default().
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, aclerrors.Wrapf(err, aclerrors.KindNotFound, "config: cannot read %q", path)
	}

	var fileCfg Config
	if err := hclsimple.DecodeFile(path, nil, &fileCfg); err != nil {
		return nil, aclerrors.Wrapf(err, aclerrors.KindValidation, "config: failed to decode %q", path)
	}

	labels, err := resolveStaticLabels(fileCfg.Remain)
	if err != nil {
		return nil, err
	}
	fileCfg.StaticLabels = labels
	fileCfg.Remain = nil

	if err := mergo.Merge(&fileCfg, cfg); err != nil {
		return nil, aclerrors.Wrapf(err, aclerrors.KindInternal, "config: failed to merge defaults")
	}

	return &fileCfg, nil
}
