package types

const (
	// ModuleName is the name of the SDK, used as the error codespace and metrics prefix
	ModuleName = "polypulse"
)
