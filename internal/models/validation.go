package models

// Validation is the per-repo validation outcome
type Validation int

const (
	NotChecked Validation = iota // Repo missing or not under git
	Passed                       // Files found
	Warning                      // Repo present but empty
	ValidationError              // Probe failed
)

// Display returns the label used in reports
func (v Validation) Display() string {
	switch v {
	case Passed:
		return "Passed"
	case Warning:
		return "Warning"
	case ValidationError:
		return "Error"
	default:
		return "Not Checked"
	}
}

// Icon returns the report icon for this validation
func (v Validation) Icon() string {
	switch v {
	case Passed:
		return "✅"
	case Warning:
		return "⚠️"
	default:
		return "❌"
	}
}

func (v Validation) String() string {
	return v.Display()
}

// Health is the per-repo health classification
type Health int

const (
	HealthUnknown Health = iota
	Healthy
	Empty
	HealthError
)

// Display returns the label used in reports
func (h Health) Display() string {
	switch h {
	case Healthy:
		return "Healthy"
	case Empty:
		return "Empty"
	case HealthError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Icon returns the report icon for this health
func (h Health) Icon() string {
	switch h {
	case Healthy:
		return "🟢"
	case Empty:
		return "🟡"
	default:
		return "🔴"
	}
}

func (h Health) String() string {
	return h.Display()
}
