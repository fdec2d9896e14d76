package templates

// programTemplateMap maps catalog program names to template document ids.
// Templates are built out program by program; add a mapping when a new template
// document lands.
var programTemplateMap = map[string]string{
	"SFI Climate Smart Forestry - Indigenous-Led (ECCC Grant)": "sfi-climate-smart-forestry",
	"SFI Indigenous-Led Climate Smart Forestry - Round 2":      "sfi-climate-smart-forestry",
}

// TemplateID returns the template document id for a catalog program name, or ""
// when no template has been built for that program yet.
func TemplateID(programName string) string {
	return programTemplateMap[programName]
}

// HasTemplate reports whether a template document exists for a program name.
func HasTemplate(programName string) bool {
	_, ok := programTemplateMap[programName]
	return ok
}
