package app

// Screen represents the current view in the application
type Screen int

const (
	ScreenScanning Screen = iota
	ScreenList
	ScreenDetail
)

func (s Screen) String() string {
	names := []string{
		"Scanning",
		"List",
		"Detail",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}
