package catalog

// GenEd is a general education requirement satisfied by a course. A value is
// one of Category, PE or PR.
type GenEd interface {
	// Code is the catalog spelling of the requirement, e.g. "MF" or "PE-H".
	Code() string
	// Name is the human readable requirement name.
	Name() string
	isGenEd()
}

// Category is a general education requirement without sub areas.
type Category string

const (
	MF Category = "MF"
	CC Category = "CC"
	ER Category = "ER"
	IM Category = "IM"
	SI Category = "SI"
	SR Category = "SR"
	TA Category = "TA"
	C1 Category = "C1"
	C2 Category = "C2"
)

var categoryNames = map[Category]string{
	MF: "Mathematical and Formal Reasoning",
	CC: "Cross-Cultural Analysis",
	ER: "Ethnicity and Race",
	IM: "Interpreting Arts and Media",
	SI: "Scientific Inquiry",
	SR: "Statistical Reasoning",
	TA: "Textual Analysis",
	C1: "Composition 1",
	C2: "Composition 2",
}

func (c Category) Code() string { return string(c) }
func (c Category) Name() string { return categoryNames[c] }
func (Category) isGenEd()       {}

// PEArea is the sub area of a Perspectives requirement.
type PEArea byte

const (
	PEEnvironment PEArea = 'E'
	PEHuman       PEArea = 'H'
	PETechnology  PEArea = 'T'
)

// PE is the Perspectives family (PE-E, PE-H, PE-T).
type PE struct {
	Area PEArea
}

func (p PE) Code() string { return "PE-" + string(rune(p.Area)) }

func (p PE) Name() string {
	switch p.Area {
	case PEEnvironment:
		return "Perspectives: Environmental Awareness"
	case PEHuman:
		return "Perspectives: Human Behavior"
	case PETechnology:
		return "Perspectives: Technology and Society"
	}
	return "Perspectives"
}

func (PE) isGenEd() {}

// PRArea is the sub area of a Practice requirement.
type PRArea byte

const (
	PRCreative      PRArea = 'E'
	PRCollaborative PRArea = 'C'
	PRService       PRArea = 'S'
)

// PR is the Practice family (PR-E, PR-C, PR-S).
type PR struct {
	Area PRArea
}

func (p PR) Code() string { return "PR-" + string(rune(p.Area)) }

func (p PR) Name() string {
	switch p.Area {
	case PRCreative:
		return "Practice: Creative Process"
	case PRCollaborative:
		return "Practice: Collaborative Endeavor"
	case PRService:
		return "Practice: Service Learning"
	}
	return "Practice"
}

func (PR) isGenEd() {}

var genEdCodes = map[string]GenEd{
	"MF":   MF,
	"CC":   CC,
	"ER":   ER,
	"IM":   IM,
	"SI":   SI,
	"SR":   SR,
	"TA":   TA,
	"C1":   C1,
	"C2":   C2,
	"PE-E": PE{Area: PEEnvironment},
	"PE-H": PE{Area: PEHuman},
	"PE-T": PE{Area: PETechnology},
	"PR-E": PR{Area: PRCreative},
	"PR-C": PR{Area: PRCollaborative},
	"PR-S": PR{Area: PRService},
}

// ParseGenEd maps a catalog code onto the vocabulary. Codes are matched
// exactly; anything outside the vocabulary reports false.
func ParseGenEd(code string) (GenEd, bool) {
	g, ok := genEdCodes[code]
	return g, ok
}

// GenEdCodes lists every recognized code in catalog order.
func GenEdCodes() []string {
	return []string{
		"MF", "CC", "ER", "IM", "SI", "SR", "TA",
		"PE-E", "PE-H", "PE-T",
		"PR-E", "PR-C", "PR-S",
		"C1", "C2",
	}
}
