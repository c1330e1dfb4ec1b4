package configloader

import "github.com/yaklabco/blockwrap/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointer values: override overwrites base if non-nil, so 0 and false survive
//   - Slices: override replaces base entirely if override is non-nil
//   - Plain booleans can only be switched on by an override
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Output != "" {
		result.Output = override.Output
	}

	if override.LineBreaks != nil {
		lineBreaks := *override.LineBreaks
		result.LineBreaks = &lineBreaks
	}
	if override.BreakOnHyphens != nil {
		hyphens := *override.BreakOnHyphens
		result.BreakOnHyphens = &hyphens
	}

	// false is the zero value, so a file cannot switch these back off.
	if override.Justify {
		result.Justify = true
	}
	if override.Backup {
		result.Backup = true
	}

	if override.BreakCharacters != nil {
		result.BreakCharacters = make([]string, len(override.BreakCharacters))
		copy(result.BreakCharacters, override.BreakCharacters)
	}

	mergeInput(&result.Input, override.Input)
	mergeRender(&result.Render, override.Render)

	return result
}

func mergeInput(dst *config.InputConfig, override config.InputConfig) {
	if override.Format != "" {
		dst.Format = override.Format
	}
	if override.Flavor != "" {
		dst.Flavor = override.Flavor
	}
}

func mergeRender(dst *config.RenderConfig, override config.RenderConfig) {
	if override.FontSize != 0 {
		dst.FontSize = override.FontSize
	}
	if override.FontPath != "" {
		dst.FontPath = override.FontPath
	}
	if override.TextColor != "" {
		dst.TextColor = override.TextColor
	}
	if override.Background != "" {
		dst.Background = override.Background
	}
	if override.OutputDir != "" {
		dst.OutputDir = override.OutputDir
	}
	if override.Canvas.Width != 0 {
		dst.Canvas.Width = override.Canvas.Width
	}
	if override.Canvas.Height != 0 {
		dst.Canvas.Height = override.Canvas.Height
	}
	if override.Transparent {
		dst.Transparent = true
	}
	if override.SingleBlock {
		dst.SingleBlock = true
	}
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
