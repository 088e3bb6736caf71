package md2html

// ConvertOptions holds options for markdown conversion.
type ConvertOptions struct {
	Config *RenderConfig
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config
	}
}

// WithSymbol sets a custom HTML tag symbol table on a copy of the
// default configuration.
func WithSymbol(symbol *Symbol) Option {
	return func(opts *ConvertOptions) {
		config := *DefaultConfig()
		config.HTMLSymbol = symbol
		opts.Config = &config
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
