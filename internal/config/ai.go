package config

type Model string

const (
	ModelGemini3FlashPreview Model = "gemini-3-flash-preview"
	ModelGeminiV25Pro        Model = "gemini-2.5-pro"
	ModelGeminiV25Flash      Model = "gemini-2.5-flash"
	ModelGeminiV25FlashLite  Model = "gemini-2.5-flash-lite"
)

// SupportedModels lists the Gemini models the generator is tested against.
func SupportedModels() []Model {
	return []Model{
		ModelGemini3FlashPreview,
		ModelGeminiV25Pro,
		ModelGeminiV25Flash,
		ModelGeminiV25FlashLite,
	}
}

func IsSupportedModel(m Model) bool {
	for _, model := range SupportedModels() {
		if model == m {
			return true
		}
	}
	return false
}

func DefaultModel() Model {
	return SupportedModels()[0]
}
