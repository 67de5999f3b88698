package vanilla

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassForm     ChromeClass = "palette-form"
	ClassSection  ChromeClass = "module"
	ClassRow      ChromeClass = "form-row"
	ClassMessages ChromeClass = "messagelist"
	ClassPreview  ChromeClass = "palette-preview"
	ClassActions  ChromeClass = "submit-row"
	ClassCollapse ChromeClass = "collapse"
)
