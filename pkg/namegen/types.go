package namegen

// Options configures a Generator.
type Options struct {
	// Templates is the structural catalog, e.g. "prefix-root-suffix".
	// Default: DefaultTemplates
	Templates []string

	// Picker drives every random choice.
	// Default: a RandPicker seeded with Seed, or with the current time when Seed is 0.
	Picker Picker

	// Seed for the default picker. Ignored when Picker is set.
	Seed uint64
}

func defaultOptions() *Options {
	return &Options{
		Templates: DefaultTemplates,
	}
}

// merge combines user options with defaults.
func (o *Options) merge(defaults *Options) *Options {
	if o == nil {
		return defaults
	}

	result := *o

	if len(result.Templates) == 0 {
		result.Templates = defaults.Templates
	}

	return &result
}

// Name is a generated name with its gloss and the template that shaped it.
type Name struct {
	Text     string   `json:"name"`
	Meaning  string   `json:"meaning"`
	Template Template `json:"template"`
}
