package prompt

// PersonaPromptVars provides the dynamic values for the persona analysis prompt.
type PersonaPromptVars struct {
	Username     string
	ItemCount    int
	ContentBlock string
}
