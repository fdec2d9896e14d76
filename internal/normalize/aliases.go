package normalize

// Catalog records do not follow a single schema: the same semantic attribute may be
// stored under several field names depending on which base revision a record came
// from. Each attribute has an ordered list of accepted source keys; the first key
// present in the record wins.

// Attribute identifies a semantic program attribute resolved through the alias table.
type Attribute string

// Attributes consumed by scoring and display.
const (
	AttrProgramName     Attribute = "program_name"
	AttrFunder          Attribute = "funder"
	AttrRegions         Attribute = "regions"
	AttrApplicants      Attribute = "applicants"
	AttrProjectTypes    Attribute = "project_types"
	AttrThemes          Attribute = "themes"
	AttrMaxGrant        Attribute = "max_grant"
	AttrMinGrant        Attribute = "min_grant"
	AttrStages          Attribute = "stages"
	AttrDeadline        Attribute = "deadline"
	AttrDescription     Attribute = "description"
	AttrCompetitiveness Attribute = "competitiveness"
)

// fieldAliases maps each attribute to its accepted source keys in priority order.
var fieldAliases = map[Attribute][]string{
	AttrProgramName:     {"Program_Name", "Program"},
	AttrFunder:          {"Funder_Organization", "Funder"},
	AttrRegions:         {"Eligible_Regions", "Region", "Regions"},
	AttrApplicants:      {"Eligible_Applicants"},
	AttrProjectTypes:    {"Eligible_Project_Types", "Focus_Area"},
	AttrThemes:          {"Themes", "Eligible_Themes", "Focus_Themes", "Focus_Area_Themes"},
	AttrMaxGrant:        {"Max_Grant_Amount", "Max_Amount", "Maximum_Grant"},
	AttrMinGrant:        {"Min_Grant_Amount", "Minimum_Grant", "Min_Amount"},
	AttrStages:          {"Project_Stages", "Stage_Preference", "Stages"},
	AttrDeadline:        {"Application_Deadline", "Next_Deadline", "Deadline"},
	AttrDescription:     {"Program_Description", "Description"},
	AttrCompetitiveness: {"Competitiveness_Level", "Competitive_Level", "Competition_Level"},
}

// Aliases returns the accepted source keys for an attribute, in priority order.
// Unknown attributes have no aliases.
func Aliases(attr Attribute) []string {
	keys := fieldAliases[attr]
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Resolve returns the first present, non-empty value for an attribute in a record.
// A field is considered absent when missing, nil, an empty string, or an empty list.
func Resolve(fields map[string]any, attr Attribute) (any, bool) {
	for _, key := range fieldAliases[attr] {
		value, ok := fields[key]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case string:
			if v == "" {
				continue
			}
		case []any:
			if len(v) == 0 {
				continue
			}
		case []string:
			if len(v) == 0 {
				continue
			}
		}
		return value, true
	}
	return nil, false
}

// ResolveStringList resolves an attribute and normalizes it to a string list.
func ResolveStringList(fields map[string]any, attr Attribute) []string {
	value, ok := Resolve(fields, attr)
	if !ok {
		return []string{}
	}
	return AsStringList(value)
}

// ResolveString resolves an attribute to its scalar string form, or "" if absent.
// List values resolve to their first element.
func ResolveString(fields map[string]any, attr Attribute) string {
	value, ok := Resolve(fields, attr)
	if !ok {
		return ""
	}
	if s, isString := value.(string); isString {
		return s
	}
	list := AsStringList(value)
	if len(list) > 0 {
		return list[0]
	}
	return ""
}
