package llm

// Parameters contains the optional configuration parameters for LLM
// services. Not all parameters are supported by all providers; unsupported
// ones are ignored.
type Parameters struct {
	Temperature *float32 `yaml:"temperature"`
	TopP        *float32 `yaml:"topP"`
	TopK        *int     `yaml:"topK"`
	Seed        *int     `yaml:"seed"`
	MaxTokens   *int     `yaml:"maxTokens"`
	Stop        []string `yaml:"stop"`
}
