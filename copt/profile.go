package copt

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Profile is a reusable set of environment settings and parameter values,
// usually loaded from YAML:
//
//	license_dir: /opt/copt/license
//	params:
//	  TimeLimit: 60
//	  Threads: 4
//	  RelGap: 0.001
//
// Parameter types are resolved from their names.
type Profile struct {
	LicenseDir string             `yaml:"license_dir,omitempty"`
	Settings   map[string]string  `yaml:"settings,omitempty"`
	Params     map[string]float64 `yaml:"params,omitempty"`
}

// LoadProfile decodes and validates a YAML profile.
func LoadProfile(r io.Reader) (*Profile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil && err != io.EOF {
		return nil, fmt.Errorf("could not decode profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadProfileFile loads a YAML profile from path.
func LoadProfileFile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open profile: %w", err)
	}
	defer f.Close()

	p, err := LoadProfile(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Validate checks that every parameter name is known and that integer
// parameters hold integral values.
func (p *Profile) Validate() error {
	if p.LicenseDir != "" && len(p.Settings) > 0 {
		return errors.New("license_dir and settings are mutually exclusive")
	}
	for name, v := range p.Params {
		if _, ok := LookupIntParam(name); ok {
			if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
				return fmt.Errorf("parameter %s: %v is not a 32-bit integer", name, v)
			}
			continue
		}
		if _, ok := LookupDoubleParam(name); !ok {
			return fmt.Errorf("unknown parameter %q", name)
		}
	}
	return nil
}

// EnvConfig returns an environment configuration with the profile's license
// directory and settings.
func (p *Profile) EnvConfig() EnvConfig {
	return EnvConfig{
		LicenseDir: p.LicenseDir,
		Settings:   p.Settings,
	}
}

// Apply sets the profile's parameters on m, in name order.
func (p *Profile) Apply(m *Model) error {
	names := make([]string, 0, len(p.Params))
	for name := range p.Params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v := p.Params[name]
		if ip, ok := LookupIntParam(name); ok {
			if err := m.SetIntParam(ip, int(v)); err != nil {
				return fmt.Errorf("profile: %w", err)
			}
			continue
		}
		dp, ok := LookupDoubleParam(name)
		if !ok {
			return fmt.Errorf("profile: unknown parameter %q", name)
		}
		if err := m.SetDoubleParam(dp, v); err != nil {
			return fmt.Errorf("profile: %w", err)
		}
	}
	return nil
}
