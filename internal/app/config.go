package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	StructurePath string // graph description file

	Flat        bool   // reject fragment definitions
	Layers      bool   // preload the layer-level fragment library
	CheckBinary bool   // cross-check variable tensors against data files
	AtomicsSpec string // {+|-}opName override tokens, whitespace-separated

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.StructurePath == "" {
		return nil, errors.New("StructurePath is a required configuration field and cannot be empty")
	}
	if cfg.Flat && cfg.Layers {
		return nil, errors.New("the flat dialect cannot load the layer fragment library")
	}

	return &cfg, nil
}
