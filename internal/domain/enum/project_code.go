package enum

import "encoding/json"

// ProjectCode selects the company header and logo on the rendered invoice
type ProjectCode string

const (
	ProjectCodeLD  ProjectCode = "LD"
	ProjectCodeLTC ProjectCode = "LTC"
)

// ParseProjectCode maps a wire value to a known project code. Unknown values
// fall back to ProjectCodeLD, the default company.
func ParseProjectCode(s string) ProjectCode {
	switch ProjectCode(s) {
	case ProjectCodeLD:
		return ProjectCodeLD
	case ProjectCodeLTC:
		return ProjectCodeLTC
	}
	return ProjectCodeLD
}

func (c ProjectCode) String() string {
	return string(c)
}

func (c ProjectCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

func (c *ProjectCode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*c = ParseProjectCode(str)
	return nil
}
