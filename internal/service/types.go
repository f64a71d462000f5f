package service

// ModelPreset represents the generation preset
type ModelPreset string

const (
	PresetCreative ModelPreset = "creative"
	PresetPrecise  ModelPreset = "precise"
	PresetBalanced ModelPreset = "balanced"
)

// ModelConfig holds per-call generation settings shared by both providers
type ModelConfig struct {
	Temperature float32
	TopP        float32
	MaxTokens   int
}

// GenerateMetadata contains metadata about the completed generation
type GenerateMetadata struct {
	Provider     string
	Model        string
	UsedFallback bool
}

// GetPresetConfig returns the configuration for a preset
func GetPresetConfig(preset ModelPreset) ModelConfig {
	switch preset {
	case PresetCreative:
		return ModelConfig{
			Temperature: 0.7,
			TopP:        0.95,
			MaxTokens:   2048,
		}
	case PresetPrecise:
		return ModelConfig{
			Temperature: 0.1,
			TopP:        0.9,
			MaxTokens:   2048,
		}
	case PresetBalanced:
		return ModelConfig{
			Temperature: 0.4,
			TopP:        0.95,
			MaxTokens:   2048,
		}
	default:
		return GetPresetConfig(PresetBalanced)
	}
}
