package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconConfig = "\ue615" // config
	IconCheck  = "\uf00c" // check
	IconX      = "\uf00d" // x
	IconInfo   = "\uf05a" // info
	IconFolder = "\uf07b" // folder
	IconLayout = "\uf0db" // columns
	IconTarget = "\uf05b" // crosshairs
)
