package config

import (
	"github.com/spf13/pflag"
)

// Flags holds the command-line view of a Config.
//
// Only flags the user actually set override values from the config file.
type Flags struct {
	Path string

	values Config
	flags  *pflag.FlagSet
}

// Bind registers the shared render flags on fs.
func Bind(fs *pflag.FlagSet) *Flags {
	f := &Flags{
		values: Default(),
		flags:  fs,
	}
	v := &f.values

	fs.StringVarP(&f.Path, "config", "c", "", "TOML or YAML file with render settings")
	fs.IntVar(&v.Width, "width", v.Width, "surface width in pixels")
	fs.IntVar(&v.Height, "height", v.Height, "surface height in pixels")
	fs.IntVarP(&v.MaxIterations, "max-iterations", "n", v.MaxIterations, "escape-time budget per pixel")
	fs.Float64Var(&v.Viewport.ReMin, "re-min", v.Viewport.ReMin, "smallest real part in view")
	fs.Float64Var(&v.Viewport.ReMax, "re-max", v.Viewport.ReMax, "largest real part in view")
	fs.Float64Var(&v.Viewport.ImMin, "im-min", v.Viewport.ImMin, "smallest imaginary part in view")
	fs.Float64Var(&v.Viewport.ImMax, "im-max", v.Viewport.ImMax, "largest imaginary part in view")
	fs.IntVar(&v.Border.X, "border-x", v.Border.X, "left and right window border in pixels")
	fs.IntVar(&v.Border.Y, "border-y", v.Border.Y, "top and bottom window border in pixels")

	return f
}

// Resolve loads the config file, if any, applies changed flags on top and
// validates the result.
func (f *Flags) Resolve() (Config, error) {
	cfg := Default()
	if f.Path != "" {
		var err error
		cfg, err = Load(f.Path)
		if err != nil {
			return Config{}, err
		}
	}

	f.flags.Visit(func(flag *pflag.Flag) {
		switch flag.Name {
		case "width":
			cfg.Width = f.values.Width
		case "height":
			cfg.Height = f.values.Height
		case "max-iterations":
			cfg.MaxIterations = f.values.MaxIterations
		case "re-min":
			cfg.Viewport.ReMin = f.values.Viewport.ReMin
		case "re-max":
			cfg.Viewport.ReMax = f.values.Viewport.ReMax
		case "im-min":
			cfg.Viewport.ImMin = f.values.Viewport.ImMin
		case "im-max":
			cfg.Viewport.ImMax = f.values.Viewport.ImMax
		case "border-x":
			cfg.Border.X = f.values.Border.X
		case "border-y":
			cfg.Border.Y = f.values.Border.Y
		}
	})

	err := cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}
