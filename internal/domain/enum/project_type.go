package enum

import "encoding/json"

// ProjectType is used only in invoice-number formatting
type ProjectType string

const (
	// ProjectTypeOvP marks an overseas project.
	ProjectTypeOvP ProjectType = "OvP"
	// ProjectTypeCwP marks a country-wise project.
	ProjectTypeCwP ProjectType = "CwP"
)

// ParseProjectType maps a wire value to a known project type. Unknown values
// fall back to ProjectTypeOvP, the form default.
func ParseProjectType(s string) ProjectType {
	switch ProjectType(s) {
	case ProjectTypeOvP:
		return ProjectTypeOvP
	case ProjectTypeCwP:
		return ProjectTypeCwP
	}
	return ProjectTypeOvP
}

func (t ProjectType) String() string {
	return string(t)
}

func (t ProjectType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *ProjectType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = ParseProjectType(str)
	return nil
}
